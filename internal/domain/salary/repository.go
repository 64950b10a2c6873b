package salary

import "context"

type SalaryRepository interface {
	// GetForUpdate loads the record for (employee, month) with a row
	// lock so the PAID check and the following upsert are atomic.
	// Returns ErrSalaryNotFound when no record exists yet.
	GetForUpdate(ctx context.Context, employeeID, month, companyID string) (Record, error)

	// GetByIDForUpdate loads a record by ID with a row lock.
	GetByIDForUpdate(ctx context.Context, id string, companyID string) (Record, error)

	Upsert(ctx context.Context, r Record) (Record, error)
	MarkPaid(ctx context.Context, id string, companyID string) error

	GetByEmployeeAndMonth(ctx context.Context, employeeID, month, companyID string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]Record, error)
	List(ctx context.Context, companyID string, employeeID *string) ([]Record, error)
	Delete(ctx context.Context, id string, companyID string) error
}
