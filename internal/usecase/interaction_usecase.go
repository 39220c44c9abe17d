package usecase

import (
	"context"
	"errors"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/apperror"
	"talent-marketplace-backend/pkg/logger"

	"github.com/google/uuid"
)

type interactionUsecase struct {
	userRepo        domain.UserRepository
	interactionRepo domain.InteractionRepository
	metricsRepo     domain.MetricsRepository
	notifier        domain.NotificationSender
	cache           domain.Cache
}

func NewInteractionUsecase(
	userRepo domain.UserRepository,
	interactionRepo domain.InteractionRepository,
	metricsRepo domain.MetricsRepository,
	notifier domain.NotificationSender,
	cache domain.Cache,
) domain.InteractionUsecase {
	return &interactionUsecase{
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		metricsRepo:     metricsRepo,
		notifier:        notifier,
		cache:           cache,
	}
}

func (u *interactionUsecase) SaveTalent(ctx context.Context, talentID, recruiterID string) error {
	if recruiterID == talentID {
		return apperror.BadRequest("You cannot save yourself")
	}

	recruiter, err := u.userRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return err
	}
	if recruiter == nil || recruiter.Role != domain.RoleRecruiter {
		return apperror.NotFound("Recruiter not found or unauthorized")
	}

	// Profile existence, not approval, is the bar for saving: recruiters
	// may bookmark a talent whose profile is still under review.
	talent, profile, err := u.userRepo.GetWithTalentProfile(ctx, talentID)
	if err != nil {
		return err
	}
	if talent == nil || profile == nil {
		return apperror.NotFound("Talent not found")
	}

	existing, err := u.interactionRepo.GetSave(ctx, recruiterID, talentID)
	if err != nil {
		return err
	}
	if existing != nil {
		// Repeating a save is a normal user action, not a conflict.
		return nil
	}

	save := &domain.SavedTalent{
		ID:          uuid.NewString(),
		RecruiterID: recruiterID,
		TalentID:    talentID,
		SavedAt:     time.Now().UTC(),
	}
	if err := u.interactionRepo.CreateSave(ctx, save); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent request won the insert race; the unique
			// constraint prevented a double count. Nothing left to do.
			return nil
		}
		return err
	}

	if _, err := u.notifier.Send(ctx, domain.NotificationSave, recruiterID, talentID); err != nil {
		return err
	}

	if err := u.metricsRepo.Increment(ctx, talentID, domain.MetricRecruiterSaves); err != nil {
		return err
	}

	u.invalidate(ctx, recruiterID)
	logger.Log.Info("talent saved", "recruiter_id", recruiterID, "talent_id", talentID)
	return nil
}

func (u *interactionUsecase) ToggleUpvote(ctx context.Context, talentID, recruiterID string) (string, error) {
	if talentID == recruiterID {
		return "", apperror.BadRequest("You cannot upvote yourself")
	}

	recruiter, err := u.userRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return "", err
	}
	if recruiter == nil || recruiter.Role != domain.RoleRecruiter {
		return "", apperror.NotFound("Recruiter not found or unauthorized")
	}

	talent, profile, err := u.userRepo.GetWithTalentProfile(ctx, talentID)
	if err != nil {
		return "", err
	}
	if talent == nil || talent.Role != domain.RoleTalent || !talent.ProfileCompleted ||
		profile == nil || profile.ProfileStatus != domain.StatusApproved {
		return "", apperror.NotFound("Talent not found or not approved")
	}

	existing, err := u.interactionRepo.GetUpvote(ctx, recruiterID, talentID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if err := u.interactionRepo.DeleteUpvote(ctx, existing.ID); err != nil {
			return "", err
		}
		if err := u.metricsRepo.Decrement(ctx, talentID, domain.MetricUpvotes); err != nil {
			return "", err
		}
		u.invalidate(ctx, recruiterID)
		return domain.UpvoteRemoved, nil
	}

	upvote := &domain.TalentUpvote{
		ID:          uuid.NewString(),
		RecruiterID: recruiterID,
		TalentID:    talentID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.interactionRepo.CreateUpvote(ctx, upvote); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost the race to a concurrent upvote: the pair is upvoted
			// and the winner already adjusted the counter.
			u.invalidate(ctx, recruiterID)
			return domain.UpvoteApplied, nil
		}
		return "", err
	}

	if err := u.metricsRepo.Increment(ctx, talentID, domain.MetricUpvotes); err != nil {
		return "", err
	}
	if _, err := u.notifier.Send(ctx, domain.NotificationUpvote, recruiterID, talentID); err != nil {
		return "", err
	}

	u.invalidate(ctx, recruiterID)
	return domain.UpvoteApplied, nil
}

// invalidate drops every cached view a recruiter interaction can
// affect. Stale reads until the TTL expires are acceptable.
func (u *interactionUsecase) invalidate(ctx context.Context, recruiterID string) {
	u.cache.Del(ctx,
		domain.DashboardCacheKey(recruiterID),
		domain.RecommendationCacheKey(recruiterID),
	)
}
