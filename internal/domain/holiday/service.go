package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByMonth(ctx context.Context, month string) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
