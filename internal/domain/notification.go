package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotificationSave   NotificationType = "save"
	NotificationView   NotificationType = "view"
	NotificationUpvote NotificationType = "upvote"
)

type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	SenderID    string           `json:"-"`
	RecipientID string           `json:"-"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
}

// NotificationSender persists an in-app notification for the recipient.
// Asynchronous delivery (email, push) is handled elsewhere off the
// stored rows.
type NotificationSender interface {
	Send(ctx context.Context, typ NotificationType, senderID, recipientID string) (*Notification, error)
}
