package usecase

import (
	"context"
	"sort"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/skills"
)

// recommendationSize is how many ranked talents a recruiter receives.
const recommendationSize = 10

type recommendationUsecase struct {
	userRepo        domain.UserRepository
	recruiterRepo   domain.RecruiterRepository
	talentRepo      domain.TalentRepository
	interactionRepo domain.InteractionRepository
	cache           domain.Cache
	cacheTTL        time.Duration
}

func NewRecommendationUsecase(
	userRepo domain.UserRepository,
	recruiterRepo domain.RecruiterRepository,
	talentRepo domain.TalentRepository,
	interactionRepo domain.InteractionRepository,
	cache domain.Cache,
	cacheTTL time.Duration,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		userRepo:        userRepo,
		recruiterRepo:   recruiterRepo,
		talentRepo:      talentRepo,
		interactionRepo: interactionRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

func (u *recommendationUsecase) Recommend(ctx context.Context, recruiterID string) ([]domain.TalentCard, error) {
	cacheKey := domain.RecommendationCacheKey(recruiterID)
	var cached []domain.TalentCard
	if u.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	recruiter, err := u.userRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return []domain.TalentCard{}, nil
	}

	profile, err := u.recruiterRepo.GetByUserID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// No stated needs to score against; an empty list, not an error.
		return []domain.TalentCard{}, nil
	}

	savedIDs, err := u.interactionRepo.ListSavedTalentIDs(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	saved := toSet(savedIDs)

	candidates, err := u.talentRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	recruiterSkills := toSet(skills.NormalizeAll(profile.RolesLookingFor))

	type scoredTalent struct {
		card  domain.TalentCard
		score int
	}
	scored := make([]scoredTalent, 0, len(candidates))
	for _, card := range candidates {
		if saved[card.ID] {
			continue
		}
		scored = append(scored, scoredTalent{
			card:  card,
			score: scoreTalentMatch(&card, recruiter.State, recruiterSkills),
		})
	}

	// Stable sort: ties keep the store-returned order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > recommendationSize {
		scored = scored[:recommendationSize]
	}
	result := make([]domain.TalentCard, len(scored))
	for i, s := range scored {
		result[i] = s.card
	}

	u.cache.Set(ctx, cacheKey, result, u.cacheTTL)
	return result, nil
}

// scoreTalentMatch ranks a talent against a recruiter's stated needs:
// two points per overlapping normalized skill, the experience weight,
// and one point for a matching state.
func scoreTalentMatch(card *domain.TalentCard, recruiterState string, recruiterSkills map[string]bool) int {
	matches := 0
	for _, skill := range skills.NormalizeAll(card.Skills) {
		if recruiterSkills[skill] {
			matches++
		}
	}

	score := matches*2 + card.ExperienceLevel.Weight()
	if card.State == recruiterState {
		score++
	}
	return score
}
