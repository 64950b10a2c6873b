package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendancePolicy controls geofence enforcement for punches.
type AttendancePolicy string

const (
	AttendancePolicyGeofenced AttendancePolicy = "GEOFENCED"
	AttendancePolicyAnywhere  AttendancePolicy = "ANYWHERE"
)

type Employee struct {
	ID               string
	UserID           string
	CompanyID        string
	EmployeeCode     string
	Name             string
	Department       *string
	OfficialPhone    *string
	PersonalPhone    *string
	DateOfJoining    *time.Time
	BaseSalary       *decimal.Decimal
	AttendancePolicy AttendancePolicy
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	Email *string
}
