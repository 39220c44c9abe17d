package domain

import (
	"context"
	"time"
)

type RecruiterProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	WorkEmail       string    `json:"work_email"`
	CompanyIndustry string    `json:"company_industry"`
	RolesLookingFor []string  `json:"roles_looking_for"`
	HiringFor       string    `json:"hiring_for"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RecruiterRepository interface {
	// GetByUserID returns nil when the user has no recruiter profile.
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
}
