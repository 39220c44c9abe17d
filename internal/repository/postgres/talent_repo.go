package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Free-text conditions pair pg_trgm similarity (floor 0.3) with an
// ILIKE substring fallback, on both names and the skills blob.
type talentRepository struct {
	db *pgxpool.Pool
}

func NewTalentRepository(db *pgxpool.Pool) domain.TalentRepository {
	return &talentRepository{db: db}
}

const talentCardColumns = `
	u.id, u.first_name, u.last_name, COALESCE(u.avatar, ''),
	COALESCE(u.state, ''), COALESCE(u.country, ''), COALESCE(u.linkedin_profile, ''),
	t.skills, t.experience_level, COALESCE(t.portfolio_url, ''), COALESCE(t.resume_path, ''),
	COALESCE(m.upvotes, 0), u.created_at`

// searchBuilder accumulates WHERE clauses and positional args for the
// discovery queries. Both the all-talents and saved-talents searches
// share the same filter, cursor and ordering logic.
type searchBuilder struct {
	conds []string
	args  []any
}

// where appends a condition, rewriting each ?-placeholder to the next
// positional argument.
func (b *searchBuilder) where(cond string, args ...any) {
	for _, a := range args {
		b.args = append(b.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.conds = append(b.conds, cond)
}

func (b *searchBuilder) applyFilter(f *domain.TalentFilter) {
	if f.Q != "" {
		b.where(`(similarity(u.first_name || ' ' || u.last_name, ?) > 0.3
			OR u.first_name ILIKE '%' || ? || '%'
			OR u.last_name ILIKE '%' || ? || '%'
			OR similarity(t.skills_text, ?) > 0.3
			OR t.skills_text ILIKE '%' || ? || '%')`,
			f.Q, f.Q, f.Q, f.Q, f.Q)
	}

	if len(f.Skills) > 0 {
		ors := make([]string, len(f.Skills))
		for i := range f.Skills {
			ors[i] = "similarity(t.skills_text, ?) > 0.3 OR t.skills_text ILIKE '%' || ? || '%'"
		}
		b.where("("+strings.Join(ors, " OR ")+")", skillArgs(f.Skills)...)
	}

	if f.Experience != "" {
		b.where("t.experience_level = ?", f.Experience)
	}
	if f.State != "" {
		b.where("u.state ILIKE '%' || ? || '%'", f.State)
	}
	if f.Country != "" {
		b.where("u.country ILIKE '%' || ? || '%'", f.Country)
	}

	if f.Cursor != nil {
		op := ">"
		if f.Direction == domain.DirectionPrev {
			op = "<"
		}
		// Composite tuple comparison keeps ties on created_at ordered by id.
		b.where(fmt.Sprintf("(u.created_at, u.id) %s (?, ?)", op),
			f.Cursor.CreatedAt, f.Cursor.ID)
	}
}

func skillArgs(skillList []string) []any {
	args := make([]any, 0, len(skillList)*2)
	for _, s := range skillList {
		args = append(args, s, s)
	}
	return args
}

// orderBy returns the ORDER BY clause for the sort. Every order ends in
// (created_at ASC, id ASC) so the result order is total and pagination
// never skips or duplicates rows.
func orderBy(sort string) string {
	switch sort {
	case domain.SortUpvotes:
		return "ORDER BY COALESCE(m.upvotes, 0) DESC, u.created_at ASC, u.id ASC"
	case domain.SortExperience:
		return `ORDER BY CASE t.experience_level
			WHEN 'expert' THEN 3
			WHEN 'intermediate' THEN 2
			WHEN 'entry' THEN 1
			ELSE 0 END DESC, u.created_at ASC, u.id ASC`
	default:
		return "ORDER BY u.created_at ASC, u.id ASC"
	}
}

func (r *talentRepository) Search(ctx context.Context, filter *domain.TalentFilter) ([]domain.TalentCard, error) {
	b := &searchBuilder{}
	b.conds = append(b.conds,
		"u.profile_completed = true",
		"t.profile_status = 'approved'",
		"t.deleted_at IS NULL",
	)
	b.applyFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN user_metrics m ON m.user_id = u.id
		WHERE %s
		%s
		LIMIT $%d`,
		talentCardColumns, strings.Join(b.conds, " AND "), orderBy(filter.Sort), len(b.args)+1)
	b.args = append(b.args, filter.Limit)

	return r.queryCards(ctx, query, b.args...)
}

func (r *talentRepository) SearchSaved(ctx context.Context, recruiterID string, filter *domain.TalentFilter) ([]domain.TalentCard, error) {
	b := &searchBuilder{}
	b.where("s.recruiter_id = ?", recruiterID)
	b.conds = append(b.conds,
		"u.profile_completed = true",
		"t.profile_status = 'approved'",
		"t.deleted_at IS NULL",
	)
	b.applyFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM saved_talents s
		JOIN users u ON u.id = s.talent_id
		JOIN talent_profiles t ON t.user_id = u.id
		LEFT JOIN user_metrics m ON m.user_id = u.id
		WHERE %s
		%s
		LIMIT $%d`,
		talentCardColumns, strings.Join(b.conds, " AND "), orderBy(filter.Sort), len(b.args)+1)
	b.args = append(b.args, filter.Limit)

	return r.queryCards(ctx, query, b.args...)
}

func (r *talentRepository) GetDiscoverable(ctx context.Context, userID string) (*domain.TalentCard, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN user_metrics m ON m.user_id = u.id
		WHERE u.id = $1
		  AND u.role = 'talent'
		  AND u.profile_completed = true
		  AND t.profile_status = 'approved'
		  AND t.deleted_at IS NULL`, talentCardColumns)

	card, err := r.scanCard(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return card, nil
}

func (r *talentRepository) ListApproved(ctx context.Context) ([]domain.TalentCard, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN user_metrics m ON m.user_id = u.id
		WHERE u.profile_completed = true
		  AND t.profile_status = 'approved'
		  AND t.deleted_at IS NULL`, talentCardColumns)

	return r.queryCards(ctx, query)
}

func (r *talentRepository) ListTop(ctx context.Context, limit int) ([]domain.TalentCard, error) {
	// Engagement score: upvotes weigh 3, saves 2, views 1.
	query := fmt.Sprintf(`
		SELECT %s
		FROM talent_profiles t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN user_metrics m ON m.user_id = u.id
		WHERE u.profile_completed = true
		  AND t.profile_status = 'approved'
		  AND t.deleted_at IS NULL
		ORDER BY COALESCE(m.upvotes, 0) * 3 + COALESCE(m.recruiter_saves, 0) * 2 + COALESCE(m.profile_views, 0) DESC,
			u.created_at ASC, u.id ASC
		LIMIT $1`, talentCardColumns)

	return r.queryCards(ctx, query, limit)
}

func (r *talentRepository) queryCards(ctx context.Context, query string, args ...any) ([]domain.TalentCard, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []domain.TalentCard{}
	for rows.Next() {
		card, err := r.scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (r *talentRepository) scanCard(row pgx.Row) (*domain.TalentCard, error) {
	var card domain.TalentCard
	var cardSkills []string
	err := row.Scan(
		&card.ID, &card.FirstName, &card.LastName, &card.Avatar,
		&card.State, &card.Country, &card.LinkedinProfile,
		pq.Array(&cardSkills), &card.ExperienceLevel, &card.PortfolioURL, &card.ResumePath,
		&card.Upvotes, &card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	card.Skills = cardSkills
	return &card, nil
}
