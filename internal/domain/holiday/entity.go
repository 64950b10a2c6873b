package holiday

import "time"

type Holiday struct {
	ID          string
	CompanyID   string
	Date        string // YYYY-MM-DD, unique per tenant
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
