package bell

import "context"

type BellRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByRecipient(ctx context.Context, recipientID, companyID string) ([]Notification, error)
	MarkRead(ctx context.Context, id, recipientID, companyID string) error
}
