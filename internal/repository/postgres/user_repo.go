package postgres

import (
	"context"
	"errors"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, COALESCE(avatar, ''),
			COALESCE(role, ''), profile_completed,
			COALESCE(state, ''), COALESCE(country, ''), COALESCE(linkedin_profile, ''),
			created_at, updated_at
		FROM users WHERE id = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Avatar,
		&u.Role, &u.ProfileCompleted,
		&u.State, &u.Country, &u.LinkedinProfile,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetWithTalentProfile(ctx context.Context, id string) (*domain.User, *domain.TalentProfile, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil || user == nil {
		return user, nil, err
	}

	query := `
		SELECT id, user_id, COALESCE(job_title, ''), COALESCE(bio, ''),
			skills, COALESCE(skills_text, ''), experience_level, profile_status,
			COALESCE(resume_path, ''), COALESCE(portfolio_url, ''),
			created_at, updated_at
		FROM talent_profiles
		WHERE user_id = $1 AND deleted_at IS NULL`

	var p domain.TalentProfile
	var profileSkills []string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.JobTitle, &p.Bio,
		pq.Array(&profileSkills), &p.SkillsText, &p.ExperienceLevel, &p.ProfileStatus,
		&p.ResumePath, &p.PortfolioURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, nil, nil
		}
		return nil, nil, err
	}
	p.Skills = profileSkills
	return user, &p, nil
}
