package attendance

import "time"

// Day statuses produced by the monthly resolver. A calendar day always
// resolves to exactly one of these.
const (
	StatusPresent            = "Present"
	StatusLate               = "Late"
	StatusAbsent             = "Absent"
	StatusSunday             = "Sunday"
	StatusSaturdayOff        = "Saturday Off"
	StatusHoliday            = "Holiday"
	StatusPaidLeave          = "Paid Leave"
	StatusHalfDayFirstHalf   = "Half Day (First Half)"
	StatusHalfDaySecondHalf  = "Half Day (Second Half)"
	StatusHalfDayAutoLate    = "Half Day (Auto Late)"
)

// Source identifies which upstream fact decided a day's status.
type Source string

const (
	SourceSystem  Source = "SYSTEM"
	SourceHoliday Source = "HOLIDAY"
	SourceLeave   Source = "LEAVE"
	SourcePunch   Source = "PUNCH"
)

// Zone is a circular geofence an admin configures for punching.
type Zone struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Policy is the per-tenant office-hour configuration. All clock fields
// are tenant-local "HH:MM" strings.
type Policy struct {
	ID                 string
	CompanyID          string
	OfficeStart        string
	OfficeEnd          string
	HalfDayTime        string
	HalfDayDeduction   bool
	SaturdayWorking    bool
	LateMarginMinutes  int
	GraceLateDays      int
	LateToHalfDayAfter int
	Zones              []Zone
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Punch is the raw attendance record: one row per (employee, date),
// created by the first IN punch and completed by the OUT punch. The
// stored Status is a denormalized cache only; the resolver recomputes
// classifications from raw fields on every read.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       string // YYYY-MM-DD, tenant-local
	ClockIn    *string
	ClockOut   *string
	LatIn      *float64
	LngIn      *float64
	LatOut     *float64
	LngOut     *float64
	TotalHours *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayRecord is the resolver output for one calendar day. It is derived
// fresh on every request and never persisted.
type DayRecord struct {
	Date         string
	Status       string
	IsWorkingDay bool
	HalfDay      bool
	Source       Source

	// Raw punch fields, set only when Source == SourcePunch.
	ClockIn    *string
	ClockOut   *string
	TotalHours *string
}
