package postgres

import (
	"context"
	"errors"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type recruiterRepository struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepository{db: db}
}

func (r *recruiterRepository) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `
		SELECT id, user_id, COALESCE(work_email, ''), COALESCE(company_industry, ''),
			roles_looking_for, COALESCE(hiring_for, ''), created_at, updated_at
		FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	var roles []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.WorkEmail, &p.CompanyIndustry,
		pq.Array(&roles), &p.HiringFor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.RolesLookingFor = roles
	return &p, nil
}
