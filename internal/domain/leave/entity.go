package leave

import "time"

// Type enum. CL = casual leave, SL = sick leave.
type Type string

const (
	TypeCasual Type = "CL"
	TypeSick   Type = "SL"
)

// Status enum
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is a leave request. Only APPROVED requests feed the monthly
// attendance resolver; a request expands to one calendar-day membership
// per date in [FromDate, ToDate] inclusive.
type Request struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Type            Type
	FromDate        string // YYYY-MM-DD
	ToDate          string // YYYY-MM-DD
	Days            int
	IsPaid          bool
	Reason          string
	Status          Status
	RejectionReason *string
	ApprovedBy      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
