package domain

import (
	"context"
	"time"
)

const (
	RoleTalent    = "talent"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Avatar           string    `json:"avatar,omitempty"`
	Role             string    `json:"role"`
	ProfileCompleted bool      `json:"profile_completed"`
	State            string    `json:"state,omitempty"`
	Country          string    `json:"country,omitempty"`
	LinkedinProfile  string    `json:"linkedin_profile,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FullName is used when composing notification messages.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// GetWithTalentProfile loads a user together with their talent profile.
	// Returns (nil, nil, nil) when the user does not exist; the profile is
	// nil when the user has none.
	GetWithTalentProfile(ctx context.Context, id string) (*User, *TalentProfile, error)
}
