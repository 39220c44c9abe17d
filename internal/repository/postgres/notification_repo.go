package postgres

import (
	"context"

	"talent-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, type, sender_id, recipient_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, n.ID, n.Type, n.SenderID, n.RecipientID, n.Message, n.Read, n.CreatedAt)
	return err
}
