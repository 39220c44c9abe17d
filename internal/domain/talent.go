package domain

import (
	"context"
	"time"
)

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Weight orders experience levels for sorting and recommendation scoring.
// Unknown levels weigh zero.
func (e ExperienceLevel) Weight() int {
	switch e {
	case ExperienceEntry:
		return 1
	case ExperienceIntermediate:
		return 2
	case ExperienceExpert:
		return 3
	default:
		return 0
	}
}

type ProfileStatus string

const (
	StatusPending     ProfileStatus = "pending"
	StatusUnderReview ProfileStatus = "under_review"
	StatusApproved    ProfileStatus = "approved"
	StatusRejected    ProfileStatus = "rejected"
)

type TalentProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	JobTitle        string          `json:"job_title"`
	Bio             string          `json:"bio"`
	Skills          []string        `json:"skills"`
	SkillsText      string          `json:"-"` // lowercase space-joined blob, kept for trigram search
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	ProfileStatus   ProfileStatus   `json:"profile_status"`
	ResumePath      string          `json:"resume_path,omitempty"`
	PortfolioURL    string          `json:"portfolio_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TalentCard is the flattened user+profile(+metrics) row returned by
// discovery queries. CreatedAt is the owning user's creation time and,
// together with ID, anchors keyset pagination.
type TalentCard struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Avatar          string          `json:"avatar,omitempty"`
	State           string          `json:"state,omitempty"`
	Country         string          `json:"country,omitempty"`
	LinkedinProfile string          `json:"linkedin_profile,omitempty"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	PortfolioURL    string          `json:"portfolio_url,omitempty"`
	ResumePath      string          `json:"resume_path,omitempty"`
	Upvotes         int             `json:"upvotes"`
	IsSaved         bool            `json:"is_saved"`
	IsUpvoted       bool            `json:"is_upvoted"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TalentDetail is the single-talent view with its public counters.
type TalentDetail struct {
	TalentCard
	Metrics TalentMetricsSummary `json:"metrics"`
}

type TalentMetricsSummary struct {
	Upvotes        int `json:"upvotes"`
	RecruiterSaves int `json:"recruiter_saves"`
}

type TalentRepository interface {
	// Search returns approved, profile-complete talents matching the
	// filter, at most filter.Limit rows, in the filter's total order.
	Search(ctx context.Context, filter *TalentFilter) ([]TalentCard, error)
	// SearchSaved is Search restricted to talents the recruiter saved.
	SearchSaved(ctx context.Context, recruiterID string, filter *TalentFilter) ([]TalentCard, error)
	// GetDiscoverable returns the card for an approved, profile-complete
	// talent user, or nil when no such talent exists.
	GetDiscoverable(ctx context.Context, userID string) (*TalentCard, error)
	// ListApproved returns every approved, profile-complete talent.
	// Feeds the recommendation scorer.
	ListApproved(ctx context.Context) ([]TalentCard, error)
	// ListTop ranks talents by engagement counters and returns the first
	// limit rows.
	ListTop(ctx context.Context, limit int) ([]TalentCard, error)
}

type TalentUsecase interface {
	Search(ctx context.Context, query *SearchQuery, recruiterID string) (*TalentPage, error)
	GetSaved(ctx context.Context, recruiterID string, query *SearchQuery) (*TalentPage, error)
	GetByID(ctx context.Context, talentID, recruiterID string) (*TalentDetail, error)
	GetTop(ctx context.Context, limit int) ([]TalentCard, error)
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, recruiterID string) ([]TalentCard, error)
}
