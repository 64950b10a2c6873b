package fixtures

import "github.com/nexhr/hrms-backend-go/internal/domain/attendance"

// DefaultAttendancePolicy is the policy a fresh tenant starts from:
// 09:30 to 18:00 office hours, 13:30 half-day cutoff, Saturdays off and
// a three-strike late escalation.
func DefaultAttendancePolicy(companyID string) attendance.Policy {
	return attendance.Policy{
		CompanyID:          companyID,
		OfficeStart:        "09:30",
		OfficeEnd:          "18:00",
		HalfDayTime:        "13:30",
		HalfDayDeduction:   true,
		SaturdayWorking:    false,
		LateMarginMinutes:  10,
		GraceLateDays:      0,
		LateToHalfDayAfter: 3,
	}
}

// DefaultZones is a single headquarters geofence.
func DefaultZones() []attendance.Zone {
	return []attendance.Zone{
		{Name: "Head Office", Latitude: 28.6139, Longitude: 77.2090, RadiusMeters: 200},
	}
}
