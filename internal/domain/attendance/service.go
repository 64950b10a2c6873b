package attendance

import "context"

// AttendanceService defines business logic for punching, the monthly
// resolver and tenant attendance settings.
type AttendanceService interface {
	// MarkPunch validates a single IN/OUT event against the geofence and
	// the same-day punch state machine, then writes the raw record.
	MarkPunch(ctx context.Context, req MarkPunchRequest) (PunchResponse, error)

	// Today returns the raw punch record for the current tenant-local day.
	Today(ctx context.Context) (*PunchResponse, error)

	// ResolveMyMonth resolves the authenticated employee's month.
	ResolveMyMonth(ctx context.Context, month string) (MonthResponse, error)

	// ResolveMonth resolves any employee's month (admin view).
	ResolveMonth(ctx context.Context, employeeID, month string) (MonthResponse, error)

	// UpdatePunch applies a manual admin correction to a raw record.
	UpdatePunch(ctx context.Context, req UpdatePunchRequest) error

	// DeletePunch removes a raw record.
	DeletePunch(ctx context.Context, id string) error

	GetPolicy(ctx context.Context) (PolicyResponse, error)
	SavePolicy(ctx context.Context, req SavePolicyRequest) (PolicyResponse, error)
}
