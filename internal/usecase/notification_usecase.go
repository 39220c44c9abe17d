package usecase

import (
	"context"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
)

type notificationUsecase struct {
	repo     domain.NotificationRepository
	userRepo domain.UserRepository
}

func NewNotificationSender(repo domain.NotificationRepository, userRepo domain.UserRepository) domain.NotificationSender {
	return &notificationUsecase{repo: repo, userRepo: userRepo}
}

func (u *notificationUsecase) Send(ctx context.Context, typ domain.NotificationType, senderID, recipientID string) (*domain.Notification, error) {
	sender, err := u.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	recipient, err := u.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if sender == nil || recipient == nil {
		return nil, apperror.NotFound("Sender or recipient not found")
	}

	n := &domain.Notification{
		ID:          uuid.NewString(),
		Type:        typ,
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     notificationMessage(typ, sender.FullName()),
		Read:        false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := u.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func notificationMessage(typ domain.NotificationType, senderName string) string {
	switch typ {
	case domain.NotificationSave:
		return senderName + " just saved your profile for future opportunities. 🤝"
	case domain.NotificationView:
		return senderName + " viewed your profile"
	case domain.NotificationUpvote:
		return senderName + " just upvoted your profile. Keep shining! 👍"
	default:
		return senderName + " interacted with your profile"
	}
}
