package usecase

import (
	"context"
	"strings"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/apperror"
	"talent-marketplace-backend/pkg/cursor"

	"github.com/go-playground/validator/v10"
)

type talentUsecase struct {
	talentRepo      domain.TalentRepository
	interactionRepo domain.InteractionRepository
	metricsRepo     domain.MetricsRepository
	validate        *validator.Validate
}

func NewTalentUsecase(
	talentRepo domain.TalentRepository,
	interactionRepo domain.InteractionRepository,
	metricsRepo domain.MetricsRepository,
	validate *validator.Validate,
) domain.TalentUsecase {
	return &talentUsecase{
		talentRepo:      talentRepo,
		interactionRepo: interactionRepo,
		metricsRepo:     metricsRepo,
		validate:        validate,
	}
}

// buildFilter validates the raw query and normalizes it into the form
// repositories execute. Validation failures surface before any store
// access; a bad cursor or unknown sort degrade silently instead.
func (u *talentUsecase) buildFilter(query *domain.SearchQuery) (*domain.TalentFilter, error) {
	if err := u.validate.Struct(query); err != nil {
		return nil, apperror.UnprocessableEntity(err.Error())
	}

	limit := query.Limit
	if limit == 0 {
		limit = domain.DefaultSearchLimit
	}

	sort := query.Sort
	switch sort {
	case domain.SortRecent, domain.SortUpvotes, domain.SortExperience:
	default:
		sort = domain.SortRecent
	}

	direction := domain.DirectionNext
	if strings.EqualFold(query.Direction, domain.DirectionPrev) {
		direction = domain.DirectionPrev
	}

	var anchor *domain.SearchCursor
	if p := cursor.Decode(query.Cursor); p != nil {
		anchor = &domain.SearchCursor{CreatedAt: p.CreatedAt, ID: p.ID}
	}

	var skillTerms []string
	for _, s := range query.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skillTerms = append(skillTerms, s)
		}
	}

	return &domain.TalentFilter{
		Q:          strings.TrimSpace(query.Q),
		Skills:     skillTerms,
		Experience: query.Experience,
		State:      strings.TrimSpace(query.State),
		Country:    strings.TrimSpace(query.Country),
		Sort:       sort,
		Limit:      limit,
		Cursor:     anchor,
		Direction:  direction,
	}, nil
}

func (u *talentUsecase) Search(ctx context.Context, query *domain.SearchQuery, recruiterID string) (*domain.TalentPage, error) {
	filter, err := u.buildFilter(query)
	if err != nil {
		return nil, err
	}

	cards, err := u.talentRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if recruiterID != "" {
		if err := u.decorate(ctx, cards, recruiterID, false); err != nil {
			return nil, err
		}
	}

	return buildPage(cards, filter.Limit, query.Cursor != ""), nil
}

func (u *talentUsecase) GetSaved(ctx context.Context, recruiterID string, query *domain.SearchQuery) (*domain.TalentPage, error) {
	filter, err := u.buildFilter(query)
	if err != nil {
		return nil, err
	}

	cards, err := u.talentRepo.SearchSaved(ctx, recruiterID, filter)
	if err != nil {
		return nil, err
	}

	// Every row came through the recruiter's saved-talent links.
	if err := u.decorate(ctx, cards, recruiterID, true); err != nil {
		return nil, err
	}

	return buildPage(cards, filter.Limit, query.Cursor != ""), nil
}

func (u *talentUsecase) GetByID(ctx context.Context, talentID, recruiterID string) (*domain.TalentDetail, error) {
	card, err := u.talentRepo.GetDiscoverable(ctx, talentID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperror.NotFound("Talent profile not found")
	}

	detail := &domain.TalentDetail{TalentCard: *card}

	metrics, err := u.metricsRepo.Get(ctx, talentID)
	if err != nil {
		return nil, err
	}
	if metrics != nil {
		detail.Metrics = domain.TalentMetricsSummary{
			Upvotes:        metrics.Upvotes,
			RecruiterSaves: metrics.RecruiterSaves,
		}
	}

	if recruiterID != "" {
		save, err := u.interactionRepo.GetSave(ctx, recruiterID, talentID)
		if err != nil {
			return nil, err
		}
		upvote, err := u.interactionRepo.GetUpvote(ctx, recruiterID, talentID)
		if err != nil {
			return nil, err
		}
		detail.IsSaved = save != nil
		detail.IsUpvoted = upvote != nil
	}

	return detail, nil
}

func (u *talentUsecase) GetTop(ctx context.Context, limit int) ([]domain.TalentCard, error) {
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	return u.talentRepo.ListTop(ctx, limit)
}

// decorate stamps is_saved / is_upvoted from the recruiter's
// interaction rows onto the result cards.
func (u *talentUsecase) decorate(ctx context.Context, cards []domain.TalentCard, recruiterID string, allSaved bool) error {
	upvoted, err := u.interactionRepo.ListUpvotedTalentIDs(ctx, recruiterID)
	if err != nil {
		return err
	}
	upvotedSet := toSet(upvoted)

	savedSet := map[string]bool{}
	if !allSaved {
		saved, err := u.interactionRepo.ListSavedTalentIDs(ctx, recruiterID)
		if err != nil {
			return err
		}
		savedSet = toSet(saved)
	}

	for i := range cards {
		cards[i].IsSaved = allSaved || savedSet[cards[i].ID]
		cards[i].IsUpvoted = upvotedSet[cards[i].ID]
	}
	return nil
}

// buildPage derives the cursors from the first and last rows of the
// returned page. hasNextPage is an approximation: a full page means a
// next page was not ruled out.
func buildPage(cards []domain.TalentCard, limit int, hadCursor bool) *domain.TalentPage {
	page := &domain.TalentPage{
		Results:         cards,
		Count:           len(cards),
		HasNextPage:     len(cards) == limit,
		HasPreviousPage: hadCursor,
	}

	if len(cards) > 0 {
		first, last := cards[0], cards[len(cards)-1]
		next := cursor.Encode(cursor.Payload{CreatedAt: last.CreatedAt, ID: last.ID})
		prev := cursor.Encode(cursor.Payload{CreatedAt: first.CreatedAt, ID: first.ID})
		page.NextCursor = &next
		page.PreviousCursor = &prev
	}

	return page
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
