package bell

import "context"

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type BellService interface {
	// Notify persists a bell message for a recipient. Callers treat
	// failures as recoverable: a lost notification never aborts the
	// triggering operation.
	Notify(ctx context.Context, companyID, recipientID, title, body string) error

	My(ctx context.Context) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
}
