package usecase_test

import (
	"context"
	"testing"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecommendationFixture() (*MockUserRepo, *MockRecruiterRepo, *MockTalentRepo, *MockInteractionRepo, *fakeCache, domain.RecommendationUsecase) {
	userRepo := new(MockUserRepo)
	recruiterRepo := new(MockRecruiterRepo)
	talentRepo := new(MockTalentRepo)
	interactionRepo := new(MockInteractionRepo)
	cache := newFakeCache()
	uc := usecase.NewRecommendationUsecase(userRepo, recruiterRepo, talentRepo, interactionRepo, cache, 5*time.Minute)
	return userRepo, recruiterRepo, talentRepo, interactionRepo, cache, uc
}

func candidate(id, state string, level domain.ExperienceLevel, skillList ...string) domain.TalentCard {
	return domain.TalentCard{
		ID:              id,
		FirstName:       "Talent",
		LastName:        id,
		State:           state,
		Skills:          skillList,
		ExperienceLevel: level,
	}
}

func TestRecommendWithoutRecruiterProfile(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, _, _, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "r1").Return(recruiterUser("r1"), nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(nil, nil)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	assert.Empty(t, result)
	talentRepo.AssertNotCalled(t, "ListApproved", mock.Anything)
}

func TestRecommendUnknownUser(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, _, _, _, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	result, err := uc.Recommend(ctx, "ghost")

	require.NoError(t, err)
	assert.Empty(t, result)
	recruiterRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestRecommendRanksBySkillExperienceAndState(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, interactionRepo, _, uc := newRecommendationFixture()

	recruiter := recruiterUser("r1")
	recruiter.State = "Lagos"
	userRepo.On("GetByID", ctx, "r1").Return(recruiter, nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(&domain.RecruiterProfile{
		UserID:          "r1",
		RolesLookingFor: []string{"react", "node.js"},
	}, nil)
	interactionRepo.On("ListSavedTalentIDs", ctx, "r1").Return([]string{}, nil)

	// A: 2 skill matches (4) + expert (3) + state (1) = 8
	// B: 0 matches + entry (1) + no state = 1
	talentRepo.On("ListApproved", ctx).Return([]domain.TalentCard{
		candidate("talent-b", "Abuja", domain.ExperienceEntry, "HTML", "CSS"),
		candidate("talent-a", "Lagos", domain.ExperienceExpert, "React", "Node.js"),
	}, nil)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "talent-a", result[0].ID)
	assert.Equal(t, "talent-b", result[1].ID)
}

func TestRecommendNormalizesSkillVariants(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, interactionRepo, _, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "r1").Return(recruiterUser("r1"), nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(&domain.RecruiterProfile{
		UserID:          "r1",
		RolesLookingFor: []string{"typescripts"}, // snaps to TypeScript
	}, nil)
	interactionRepo.On("ListSavedTalentIDs", ctx, "r1").Return([]string{}, nil)
	talentRepo.On("ListApproved", ctx).Return([]domain.TalentCard{
		candidate("talent-ts", "", domain.ExperienceEntry, "typescript"),
		candidate("talent-php", "", domain.ExperienceEntry, "PHP"),
	}, nil)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "talent-ts", result[0].ID, "variant spellings meet on the canonical name")
}

func TestRecommendExcludesSavedTalents(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, interactionRepo, _, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "r1").Return(recruiterUser("r1"), nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(&domain.RecruiterProfile{
		UserID:          "r1",
		RolesLookingFor: []string{"React"},
	}, nil)
	interactionRepo.On("ListSavedTalentIDs", ctx, "r1").Return([]string{"talent-saved"}, nil)
	talentRepo.On("ListApproved", ctx).Return([]domain.TalentCard{
		candidate("talent-saved", "", domain.ExperienceExpert, "React"),
		candidate("talent-new", "", domain.ExperienceEntry, "React"),
	}, nil)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "talent-new", result[0].ID)
}

func TestRecommendCapsAtTen(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, interactionRepo, _, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "r1").Return(recruiterUser("r1"), nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(&domain.RecruiterProfile{
		UserID:          "r1",
		RolesLookingFor: []string{"Go"},
	}, nil)
	interactionRepo.On("ListSavedTalentIDs", ctx, "r1").Return([]string{}, nil)

	candidates := make([]domain.TalentCard, 15)
	for i := range candidates {
		candidates[i] = candidate(string(rune('a'+i)), "", domain.ExperienceEntry, "Go")
	}
	talentRepo.On("ListApproved", ctx).Return(candidates, nil)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	assert.Len(t, result, 10)
}

func TestRecommendServesFromCache(t *testing.T) {
	ctx := context.Background()
	userRepo, _, talentRepo, _, cache, uc := newRecommendationFixture()

	cached := []domain.TalentCard{candidate("talent-cached", "", domain.ExperienceExpert, "Go")}
	cache.Set(ctx, domain.RecommendationCacheKey("r1"), cached, time.Minute)

	result, err := uc.Recommend(ctx, "r1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "talent-cached", result[0].ID)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	talentRepo.AssertNotCalled(t, "ListApproved", mock.Anything)
}

func TestRecommendStoresResultInCache(t *testing.T) {
	ctx := context.Background()
	userRepo, recruiterRepo, talentRepo, interactionRepo, cache, uc := newRecommendationFixture()

	userRepo.On("GetByID", ctx, "r1").Return(recruiterUser("r1"), nil)
	recruiterRepo.On("GetByUserID", ctx, "r1").Return(&domain.RecruiterProfile{
		UserID:          "r1",
		RolesLookingFor: []string{"Go"},
	}, nil)
	interactionRepo.On("ListSavedTalentIDs", ctx, "r1").Return([]string{}, nil)
	talentRepo.On("ListApproved", ctx).Return([]domain.TalentCard{
		candidate("talent-go", "", domain.ExperienceIntermediate, "Go"),
	}, nil)

	_, err := uc.Recommend(ctx, "r1")
	require.NoError(t, err)

	var stored []domain.TalentCard
	require.True(t, cache.Get(ctx, domain.RecommendationCacheKey("r1"), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "talent-go", stored[0].ID)
}
