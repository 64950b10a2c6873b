package leave

import "context"

type LeaveService interface {
	// Request files a new leave request for the authenticated employee.
	Request(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	MyLeaves(ctx context.Context) ([]LeaveResponse, error)
	Pending(ctx context.Context) ([]LeaveResponse, error)

	// UpdateStatus approves or rejects a pending request (admin).
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}
