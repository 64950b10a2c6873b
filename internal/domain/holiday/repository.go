package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	ListByMonth(ctx context.Context, companyID, month string) ([]Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}
