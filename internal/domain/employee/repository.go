package employee

import "context"

// EmployeeRepository defines data access for the tenant employee
// directory. Every method carries companyID to keep lookups scoped to
// the owning tenant.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string, companyID string) error
}
