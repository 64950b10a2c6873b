package salary

import "context"

type SalaryService interface {
	// Compute derives the month's salary from the attendance resolver
	// and upserts a PENDING record. Fails with ErrSalaryLocked when the
	// existing record is PAID.
	Compute(ctx context.Context, req ComputeSalaryRequest) (SalaryResponse, error)

	// MarkPaid transitions PENDING -> PAID irreversibly.
	MarkPaid(ctx context.Context, id string) error

	My(ctx context.Context, month string) (*SalaryResponse, error)
	History(ctx context.Context) ([]SalaryResponse, error)
	List(ctx context.Context, employeeID *string) ([]SalaryResponse, error)
	Delete(ctx context.Context, id string) error
}
