package postgres

import (
	"context"
	"errors"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interactionRepository struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) GetSave(ctx context.Context, recruiterID, talentID string) (*domain.SavedTalent, error) {
	query := `SELECT id, recruiter_id, talent_id, saved_at FROM saved_talents WHERE recruiter_id = $1 AND talent_id = $2`

	var s domain.SavedTalent
	err := r.db.QueryRow(ctx, query, recruiterID, talentID).Scan(&s.ID, &s.RecruiterID, &s.TalentID, &s.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *interactionRepository) CreateSave(ctx context.Context, save *domain.SavedTalent) error {
	// ON CONFLICT DO NOTHING: a concurrent duplicate save must fail
	// closed instead of double-counting; the unique constraint on
	// (recruiter_id, talent_id) is the arbiter.
	query := `
		INSERT INTO saved_talents (id, recruiter_id, talent_id, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (recruiter_id, talent_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, save.ID, save.RecruiterID, save.TalentID, save.SavedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *interactionRepository) ListSavedTalentIDs(ctx context.Context, recruiterID string) ([]string, error) {
	return r.listIDs(ctx, `SELECT talent_id FROM saved_talents WHERE recruiter_id = $1`, recruiterID)
}

func (r *interactionRepository) GetUpvote(ctx context.Context, recruiterID, talentID string) (*domain.TalentUpvote, error) {
	query := `SELECT id, recruiter_id, talent_id, created_at FROM talent_upvotes WHERE recruiter_id = $1 AND talent_id = $2`

	var u domain.TalentUpvote
	err := r.db.QueryRow(ctx, query, recruiterID, talentID).Scan(&u.ID, &u.RecruiterID, &u.TalentID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *interactionRepository) CreateUpvote(ctx context.Context, upvote *domain.TalentUpvote) error {
	query := `
		INSERT INTO talent_upvotes (id, recruiter_id, talent_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (recruiter_id, talent_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, upvote.ID, upvote.RecruiterID, upvote.TalentID, upvote.CreatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *interactionRepository) DeleteUpvote(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM talent_upvotes WHERE id = $1`, id)
	return err
}

func (r *interactionRepository) ListUpvotedTalentIDs(ctx context.Context, recruiterID string) ([]string, error) {
	return r.listIDs(ctx, `SELECT talent_id FROM talent_upvotes WHERE recruiter_id = $1`, recruiterID)
}

func (r *interactionRepository) listIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
