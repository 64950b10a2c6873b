package attendance

import (
	"github.com/nexhr/hrms-backend-go/internal/pkg/timeutil"
	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

// PunchDirection is the "status" field of POST /attendance/mark.
type PunchDirection string

const (
	DirectionIn  PunchDirection = "IN"
	DirectionOut PunchDirection = "OUT"
)

type MarkPunchRequest struct {
	Direction PunchDirection `json:"status"`
	Latitude  *float64       `json:"lat"`
	Longitude *float64       `json:"lng"`
}

func (r *MarkPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Direction != DirectionIn && r.Direction != DirectionOut {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be IN or OUT",
		})
	}

	if r.Latitude == nil || r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat and lng are required",
		})
	} else {
		if *r.Latitude < -90 || *r.Latitude > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "lat",
				Message: "lat must be between -90 and 90",
			})
		}
		if *r.Longitude < -180 || *r.Longitude > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "lng",
				Message: "lng must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePunchRequest is the admin correction surface. Only a fixed set
// of statuses may be written by hand.
type UpdatePunchRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Status   *string `json:"status"`
}

var allowedManualStatuses = []string{
	StatusPresent,
	StatusLate,
	StatusAbsent,
	StatusHalfDayFirstHalf,
	StatusHalfDaySecondHalf,
}

func (r *UpdatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != nil && !validator.IsValidClock(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be HH:MM"})
	}
	if r.ClockOut != nil && !validator.IsValidClock(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be HH:MM"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, allowedManualStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is not an allowed value"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// POLICY DTOs
// ========================================

type SavePolicyRequest struct {
	OfficeStart        string `json:"office_start"`
	OfficeEnd          string `json:"office_end"`
	HalfDayTime        string `json:"half_day_time"`
	HalfDayDeduction   bool   `json:"half_day_deduction"`
	SaturdayWorking    bool   `json:"saturday_working"`
	LateMarginMinutes  int    `json:"late_margin_minutes"`
	GraceLateDays      int    `json:"grace_late_days"`
	LateToHalfDayAfter int    `json:"late_to_half_day_after"`
	Zones              []Zone `json:"zones"`
}

// Validate enforces the policy invariants at write time. A malformed
// policy (for example halfDayTime outside office hours) would otherwise
// classify every punched day as a half day.
func (r *SavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, clock := range map[string]string{
		"office_start":  r.OfficeStart,
		"office_end":    r.OfficeEnd,
		"half_day_time": r.HalfDayTime,
	} {
		if !validator.IsValidClock(clock) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be HH:MM"})
		}
	}

	if len(errs) == 0 {
		start, _ := timeutil.ClockMinutes(r.OfficeStart)
		half, _ := timeutil.ClockMinutes(r.HalfDayTime)
		end, _ := timeutil.ClockMinutes(r.OfficeEnd)
		if !(start < half && half < end) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_time",
				Message: "office_start, half_day_time and office_end must be strictly increasing",
			})
		}
	}

	if r.LateMarginMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_margin_minutes", Message: "late_margin_minutes must be >= 0"})
	}
	if r.GraceLateDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_late_days", Message: "grace_late_days must be >= 0"})
	}
	if r.LateToHalfDayAfter < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_to_half_day_after", Message: "late_to_half_day_after must be >= 0"})
	}

	for _, z := range r.Zones {
		if z.Latitude < -90 || z.Latitude > 90 || z.Longitude < -180 || z.Longitude > 180 {
			errs = append(errs, validator.ValidationError{Field: "zones", Message: "zone coordinates out of range"})
			break
		}
		if z.RadiusMeters <= 0 {
			errs = append(errs, validator.ValidationError{Field: "zones", Message: "zone radius_meters must be > 0"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type PunchResponse struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	ClockIn    *string  `json:"clock_in"`
	ClockOut   *string  `json:"clock_out"`
	TotalHours *string  `json:"total_hours"`
	Status     string   `json:"status"`
	LatIn      *float64 `json:"lat_in,omitempty"`
	LngIn      *float64 `json:"lng_in,omitempty"`
	LatOut     *float64 `json:"lat_out,omitempty"`
	LngOut     *float64 `json:"lng_out,omitempty"`
}

type DayRecordResponse struct {
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	IsWorkingDay bool    `json:"is_working_day"`
	HalfDay      bool    `json:"half_day"`
	Source       Source  `json:"source"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	TotalHours   *string `json:"total_hours,omitempty"`
}

type MonthResponse struct {
	Month string              `json:"month"`
	Rows  []DayRecordResponse `json:"rows"`
}

type PolicyResponse struct {
	OfficeStart        string `json:"office_start"`
	OfficeEnd          string `json:"office_end"`
	HalfDayTime        string `json:"half_day_time"`
	HalfDayDeduction   bool   `json:"half_day_deduction"`
	SaturdayWorking    bool   `json:"saturday_working"`
	LateMarginMinutes  int    `json:"late_margin_minutes"`
	GraceLateDays      int    `json:"grace_late_days"`
	LateToHalfDayAfter int    `json:"late_to_half_day_after"`
	Zones              []Zone `json:"zones"`
}
