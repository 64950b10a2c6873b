package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type bellRepositoryImpl struct {
	db *database.DB
}

func NewBellRepository(db *database.DB) bell.BellRepository {
	return &bellRepositoryImpl{db: db}
}

// Create implements bell.BellRepository.
func (r *bellRepositoryImpl) Create(ctx context.Context, n bell.Notification) (bell.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (id, company_id, recipient_id, title, body, read)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, n.ID, n.CompanyID, n.RecipientID, n.Title, n.Body).
		Scan(&n.CreatedAt)
	if err != nil {
		return bell.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByRecipient implements bell.BellRepository.
func (r *bellRepositoryImpl) ListByRecipient(ctx context.Context, recipientID, companyID string) ([]bell.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, recipient_id, title, body, read, created_at
		FROM notifications
		WHERE recipient_id = $1 AND company_id = $2
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, recipientID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []bell.Notification
	for rows.Next() {
		var n bell.Notification
		err := rows.Scan(&n.ID, &n.CompanyID, &n.RecipientID, &n.Title, &n.Body, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements bell.BellRepository.
func (r *bellRepositoryImpl) MarkRead(ctx context.Context, id, recipientID, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read = true
		WHERE id = $1 AND recipient_id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, id, recipientID, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bell.ErrNotificationNotFound
	}
	return nil
}
