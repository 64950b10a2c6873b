package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string, companyID string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]Request, error)
	ListPending(ctx context.Context, companyID string) ([]Request, error)

	// ListApprovedOverlappingMonth returns approved requests whose
	// [from_date, to_date] range intersects the given month.
	ListApprovedOverlappingMonth(ctx context.Context, employeeID, month, companyID string) ([]Request, error)

	UpdateStatus(ctx context.Context, r Request) error
}
