package bell

import (
	"context"
	"time"

	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
)

type BellServiceImpl struct {
	bell.BellRepository
}

func NewBellService(bellRepository bell.BellRepository) bell.BellService {
	return &BellServiceImpl{BellRepository: bellRepository}
}

// Notify implements bell.BellService.
func (b *BellServiceImpl) Notify(ctx context.Context, companyID, recipientID, title, body string) error {
	_, err := b.BellRepository.Create(ctx, bell.Notification{
		CompanyID:   companyID,
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
	})
	return err
}

// My implements bell.BellService.
func (b *BellServiceImpl) My(ctx context.Context) ([]bell.NotificationResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := b.BellRepository.ListByRecipient(ctx, identity.UserID, identity.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]bell.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, bell.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// MarkRead implements bell.BellService.
func (b *BellServiceImpl) MarkRead(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	return b.BellRepository.MarkRead(ctx, id, identity.UserID, identity.CompanyID)
}
