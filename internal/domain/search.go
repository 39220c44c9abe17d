package domain

import "time"

const (
	SortRecent     = "recent"
	SortUpvotes    = "upvotes"
	SortExperience = "experience"

	DirectionNext = "next"
	DirectionPrev = "prev"

	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// SearchQuery carries the raw, caller-supplied search parameters.
// Limit of 0 means "use the default"; anything else is validated.
type SearchQuery struct {
	Q          string   `json:"q" form:"q"`
	Skills     []string `json:"skills" form:"skills"`
	Experience string   `json:"experience" form:"experience" validate:"omitempty,oneof=entry intermediate expert"`
	State      string   `json:"state" form:"state"`
	Country    string   `json:"country" form:"country"`
	Sort       string   `json:"sort" form:"sort"`
	Limit      int      `json:"limit" form:"limit" validate:"omitempty,min=1,max=100"`
	Cursor     string   `json:"cursor" form:"cursor"`
	Direction  string   `json:"direction" form:"direction"`
}

// SearchCursor is a decoded pagination anchor: the (created_at, id)
// position of a row in the stable total order.
type SearchCursor struct {
	CreatedAt time.Time
	ID        string
}

// TalentFilter is the validated, normalized form of a SearchQuery that
// repositories execute. Sort is always one of the Sort* constants and
// Limit is within bounds by the time a filter reaches a repository.
type TalentFilter struct {
	Q          string
	Skills     []string
	Experience string
	State      string
	Country    string
	Sort       string
	Limit      int
	Cursor     *SearchCursor
	Direction  string
}

type TalentPage struct {
	Results         []TalentCard `json:"results"`
	Count           int          `json:"count"`
	NextCursor      *string      `json:"nextCursor"`
	PreviousCursor  *string      `json:"previousCursor"`
	HasNextPage     bool         `json:"hasNextPage"`
	HasPreviousPage bool         `json:"hasPreviousPage"`
}
