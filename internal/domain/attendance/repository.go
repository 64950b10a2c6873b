package attendance

import "context"

// PunchRepository defines data access for raw punch records. The store
// enforces a unique (employee_id, company_id, date) key; PunchIn and
// PunchOut rely on that key for atomic, race-free state transitions.
type PunchRepository interface {
	// PunchIn inserts today's record with the clock-in set, or reports
	// ErrAlreadyPunchedIn when a clock-in already exists for the date.
	PunchIn(ctx context.Context, p Punch) (Punch, error)

	// PunchOut completes today's record. Fails with ErrNotPunchedIn when
	// no clock-in exists and ErrAlreadyPunchedOut when the clock-out is
	// already recorded.
	PunchOut(ctx context.Context, p Punch) (Punch, error)

	GetByID(ctx context.Context, id string, companyID string) (Punch, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date, companyID string) (*Punch, error)
	ListByMonth(ctx context.Context, employeeID, month, companyID string) ([]Punch, error)

	// Update overwrites the mutable fields of a record (clocks, total
	// hours and the cached status) after a manual correction.
	Update(ctx context.Context, p Punch) error

	Delete(ctx context.Context, id string, companyID string) error
}

// PolicyRepository stores the per-tenant office-hour policy.
type PolicyRepository interface {
	Get(ctx context.Context, companyID string) (Policy, error)
	Upsert(ctx context.Context, p Policy) (Policy, error)
}
