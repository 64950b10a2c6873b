package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Record is the persisted payroll result for one (employee, month).
// Once Status is PAID the record is immutable; every write path checks
// the lock before touching it.
type Record struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	Month            string // YYYY-MM
	BaseSalary       decimal.Decimal
	TotalWorkingDays int
	AbsentDays       decimal.Decimal // fractional: half days count 0.5
	Deduction        decimal.Decimal
	FinalSalary      decimal.Decimal
	Status           Status
	PaidAt           *time.Time
	GeneratedBy      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
