package domain

import (
	"context"
	"time"
)

// Upvote toggle outcomes. The handler maps "upvoted" to 201 and
// "unupvoted" to 200.
const (
	UpvoteApplied = "upvoted"
	UpvoteRemoved = "unupvoted"
)

// SavedTalent links a recruiter to a talent they bookmarked. One row
// per (recruiter, talent); enforced by a unique constraint.
type SavedTalent struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	TalentID    string    `json:"talent_id"`
	SavedAt     time.Time `json:"saved_at"`
}

// TalentUpvote is a toggleable like. The row's existence is the sole
// source of truth for upvoted state; it is deleted on unupvote.
type TalentUpvote struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	TalentID    string    `json:"talent_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type InteractionRepository interface {
	GetSave(ctx context.Context, recruiterID, talentID string) (*SavedTalent, error)
	CreateSave(ctx context.Context, save *SavedTalent) error
	ListSavedTalentIDs(ctx context.Context, recruiterID string) ([]string, error)

	GetUpvote(ctx context.Context, recruiterID, talentID string) (*TalentUpvote, error)
	CreateUpvote(ctx context.Context, upvote *TalentUpvote) error
	DeleteUpvote(ctx context.Context, id string) error
	ListUpvotedTalentIDs(ctx context.Context, recruiterID string) ([]string, error)
}

type InteractionUsecase interface {
	// SaveTalent bookmarks a talent for a recruiter. Saving a talent
	// twice is a silent no-op.
	SaveTalent(ctx context.Context, talentID, recruiterID string) error
	// ToggleUpvote flips the upvote for the pair and reports which way
	// it went: UpvoteApplied or UpvoteRemoved.
	ToggleUpvote(ctx context.Context, talentID, recruiterID string) (string, error)
}
