package postgres

import (
	"context"
	"errors"
	"fmt"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// counterColumns whitelists the metric fields; field names reach SQL
// text, so anything else is rejected.
var counterColumns = map[string]bool{
	domain.MetricUpvotes:           true,
	domain.MetricProfileViews:      true,
	domain.MetricRecruiterSaves:    true,
	domain.MetricSearchAppearances: true,
}

type metricsRepository struct {
	db *pgxpool.Pool
}

func NewMetricsRepository(db *pgxpool.Pool) domain.MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) Get(ctx context.Context, userID string) (*domain.Metrics, error) {
	query := `
		SELECT user_id, upvotes, profile_views, recruiter_saves, weekly_search_appearances
		FROM user_metrics WHERE user_id = $1`

	var m domain.Metrics
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.Upvotes, &m.ProfileViews, &m.RecruiterSaves, &m.SearchAppearances,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *metricsRepository) Increment(ctx context.Context, userID, field string) error {
	if !counterColumns[field] {
		return fmt.Errorf("metrics: unknown counter %q", field)
	}

	// Single atomic statement: seeds the row at 1 when absent, adds 1
	// otherwise. Correct under concurrent toggles on the same talent.
	query := fmt.Sprintf(`
		INSERT INTO user_metrics (user_id, %s) VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET %s = user_metrics.%s + 1`,
		field, field, field)
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *metricsRepository) Decrement(ctx context.Context, userID, field string) error {
	if !counterColumns[field] {
		return fmt.Errorf("metrics: unknown counter %q", field)
	}

	// GREATEST keeps the counter non-negative; a missing row is a no-op.
	query := fmt.Sprintf(`
		UPDATE user_metrics SET %s = GREATEST(%s - 1, 0) WHERE user_id = $1`,
		field, field)
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
