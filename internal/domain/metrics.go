package domain

import "context"

// Metrics counter columns. Repositories must reject any other field
// name; these values are interpolated into SQL.
const (
	MetricUpvotes           = "upvotes"
	MetricProfileViews      = "profile_views"
	MetricRecruiterSaves    = "recruiter_saves"
	MetricSearchAppearances = "weekly_search_appearances"
)

// Metrics is a denormalized cache of per-talent engagement counts. The
// interaction rows stay authoritative for existence; these counters are
// authoritative only for "how many".
type Metrics struct {
	UserID            string `json:"user_id"`
	Upvotes           int    `json:"upvotes"`
	ProfileViews      int    `json:"profile_views"`
	RecruiterSaves    int    `json:"recruiter_saves"`
	SearchAppearances int    `json:"weekly_search_appearances"`
}

type MetricsRepository interface {
	// Get returns nil when no metrics row exists yet for the user.
	Get(ctx context.Context, userID string) (*Metrics, error)
	// Increment adds 1 to the field, creating the row seeded at 1 when
	// absent. The adjustment is a single atomic statement.
	Increment(ctx context.Context, userID, field string) error
	// Decrement subtracts 1 from the field but never below zero; a
	// missing row is a no-op.
	Decrement(ctx context.Context, userID, field string) error
}
