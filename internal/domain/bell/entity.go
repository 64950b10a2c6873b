package bell

import "time"

// Notification is a persisted "bell" message for one recipient.
// Delivery is pull-only: clients poll the list endpoint. There is no
// realtime transport.
type Notification struct {
	ID          string
	CompanyID   string
	RecipientID string
	Title       string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
