package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/fixtures"
)

func strPtr(s string) *string { return &s }

func testPolicy() *attendance.Policy {
	p := fixtures.DefaultAttendancePolicy("company-1")
	return &p
}

func punchAt(date, clockIn string, clockOut *string) attendance.Punch {
	return attendance.Punch{
		ID:         "punch-" + date,
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Date:       date,
		ClockIn:    strPtr(clockIn),
		ClockOut:   clockOut,
		Status:     attendance.StatusPresent,
	}
}

func factsFor(month string) MonthFacts {
	return MonthFacts{
		Month:       month,
		Policy:      testPolicy(),
		Holidays:    map[string]string{},
		PaidLeave:   map[string]bool{},
		UnpaidLeave: map[string]bool{},
		Punches:     map[string]attendance.Punch{},
	}
}

// July 2025: the 6th, 13th, 20th and 27th are Sundays; the 5th, 12th,
// 19th and 26th are Saturdays.
func TestResolveMonthCoversEveryDay(t *testing.T) {
	records, err := ResolveMonth(factsFor("2025-07"))
	require.NoError(t, err)
	require.Len(t, records, 31)

	assert.Equal(t, "2025-07-01", records[0].Date)
	assert.Equal(t, "2025-07-31", records[30].Date)
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].Date, records[i].Date)
	}

	sunday := records[5]
	assert.Equal(t, attendance.StatusSunday, sunday.Status)
	assert.False(t, sunday.IsWorkingDay)

	saturday := records[4]
	assert.Equal(t, attendance.StatusSaturdayOff, saturday.Status)
	assert.False(t, saturday.IsWorkingDay)

	weekday := records[0]
	assert.Equal(t, attendance.StatusAbsent, weekday.Status)
	assert.True(t, weekday.IsWorkingDay)
	assert.Equal(t, attendance.SourceSystem, weekday.Source)
}

func TestResolveMonthSundayBeatsEverything(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Holidays["2025-07-06"] = "Some Festival"
	facts.PaidLeave["2025-07-06"] = true
	facts.Punches["2025-07-06"] = punchAt("2025-07-06", "09:00", strPtr("18:00"))

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	sunday := records[5]
	assert.Equal(t, attendance.StatusSunday, sunday.Status)
	assert.False(t, sunday.IsWorkingDay)
	assert.Nil(t, sunday.ClockIn)
}

func TestResolveMonthSaturdayWorking(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Policy.SaturdayWorking = true

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	saturday := records[4]
	assert.Equal(t, attendance.StatusAbsent, saturday.Status)
	assert.True(t, saturday.IsWorkingDay)
}

func TestResolveMonthHolidayBeatsLeaveAndPunch(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Holidays["2025-07-07"] = "Founders Day"
	facts.PaidLeave["2025-07-07"] = true
	facts.Punches["2025-07-07"] = punchAt("2025-07-07", "09:00", nil)

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	day := records[6]
	assert.Equal(t, attendance.StatusHoliday, day.Status)
	assert.Equal(t, attendance.SourceHoliday, day.Source)
	assert.False(t, day.IsWorkingDay)
}

func TestResolveMonthLeaveDays(t *testing.T) {
	facts := factsFor("2025-07")
	facts.PaidLeave["2025-07-08"] = true
	facts.UnpaidLeave["2025-07-09"] = true
	// Leave wins even when a punch slipped in on the same day.
	facts.Punches["2025-07-08"] = punchAt("2025-07-08", "09:00", nil)

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	paid := records[7]
	assert.Equal(t, attendance.StatusPaidLeave, paid.Status)
	assert.True(t, paid.IsWorkingDay)
	assert.Equal(t, attendance.SourceLeave, paid.Source)

	unpaid := records[8]
	assert.Equal(t, attendance.StatusAbsent, unpaid.Status)
	assert.True(t, unpaid.IsWorkingDay)
	assert.Equal(t, attendance.SourceLeave, unpaid.Source)
}

func TestResolveMonthLateEscalation(t *testing.T) {
	// Grace 0, escalation after 3: two Lates, then automatic half days.
	facts := factsFor("2025-07")
	for _, date := range []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04", "2025-07-07"} {
		facts.Punches[date] = punchAt(date, "09:45", strPtr("18:00"))
	}

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, records[0].Status)
	assert.Equal(t, attendance.StatusLate, records[1].Status)
	assert.Equal(t, attendance.StatusHalfDayAutoLate, records[2].Status)
	assert.Equal(t, attendance.StatusHalfDayAutoLate, records[3].Status)
	assert.Equal(t, attendance.StatusHalfDayAutoLate, records[6].Status)
	assert.True(t, records[2].HalfDay)
	assert.False(t, records[0].HalfDay)
}

func TestResolveMonthGraceLatesStillCount(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Policy.GraceLateDays = 1
	for _, date := range []string{"2025-07-01", "2025-07-02", "2025-07-03"} {
		facts.Punches[date] = punchAt(date, "09:45", strPtr("18:00"))
	}

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	// The grace day is still marked late but never escalates; it does
	// advance the counter, so day three crosses the threshold.
	assert.Equal(t, attendance.StatusLate, records[0].Status)
	assert.Equal(t, attendance.StatusLate, records[1].Status)
	assert.Equal(t, attendance.StatusHalfDayAutoLate, records[2].Status)
}

func TestResolveMonthLateMargin(t *testing.T) {
	facts := factsFor("2025-07")
	// 09:40 is exactly on the 10 minute margin, 09:41 is past it.
	facts.Punches["2025-07-01"] = punchAt("2025-07-01", "09:40", strPtr("18:00"))
	facts.Punches["2025-07-02"] = punchAt("2025-07-02", "09:41", strPtr("18:00"))

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.Equal(t, attendance.StatusLate, records[1].Status)
}

func TestResolveMonthHalfDayFromEarlyClockOut(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Punches["2025-07-01"] = punchAt("2025-07-01", "09:00", strPtr("13:00"))
	facts.Punches["2025-07-02"] = punchAt("2025-07-02", "09:00", strPtr("17:00"))
	facts.Punches["2025-07-03"] = punchAt("2025-07-03", "09:00", strPtr("18:00"))

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHalfDayFirstHalf, records[0].Status)
	assert.True(t, records[0].HalfDay)
	assert.Equal(t, attendance.StatusHalfDaySecondHalf, records[1].Status)
	assert.True(t, records[1].HalfDay)
	assert.Equal(t, attendance.StatusPresent, records[2].Status)
	assert.False(t, records[2].HalfDay)
}

func TestResolveMonthHalfDayDisabled(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Policy.HalfDayDeduction = false
	facts.Punches["2025-07-01"] = punchAt("2025-07-01", "09:00", strPtr("13:00"))

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.False(t, records[0].HalfDay)
}

// An early clock-out wins over a late clock-in on the same record.
func TestResolveMonthEarlyOutBeatsLateIn(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Punches["2025-07-01"] = punchAt("2025-07-01", "10:30", strPtr("12:00"))

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHalfDayFirstHalf, records[0].Status)
}

func TestResolveMonthIgnoresStoredStatus(t *testing.T) {
	facts := factsFor("2025-07")
	p := punchAt("2025-07-01", "09:00", strPtr("18:00"))
	p.Status = "garbage"
	facts.Punches["2025-07-01"] = p

	records, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

func TestResolveMonthDeterministic(t *testing.T) {
	facts := factsFor("2025-07")
	for _, date := range []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04"} {
		facts.Punches[date] = punchAt(date, "09:45", strPtr("18:00"))
	}

	first, err := ResolveMonth(facts)
	require.NoError(t, err)
	second, err := ResolveMonth(facts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveMonthMissingPolicy(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Policy = nil
	facts.Punches["2025-07-01"] = punchAt("2025-07-01", "09:00", nil)

	_, err := ResolveMonth(facts)
	assert.ErrorIs(t, err, attendance.ErrPolicyNotFound)
}

func TestResolveMonthMissingPolicyWithoutPunches(t *testing.T) {
	facts := factsFor("2025-07")
	facts.Policy = nil

	records, err := ResolveMonth(facts)
	require.NoError(t, err)
	require.Len(t, records, 31)

	// Without a policy Saturdays count as working days.
	saturday := records[4]
	assert.Equal(t, attendance.StatusAbsent, saturday.Status)
	assert.True(t, saturday.IsWorkingDay)
}

func TestResolveMonthInvalidMonth(t *testing.T) {
	_, err := ResolveMonth(MonthFacts{Month: "2025-13"})
	assert.Error(t, err)
}

func TestResolveMonthFebruary(t *testing.T) {
	records, err := ResolveMonth(factsFor("2024-02"))
	require.NoError(t, err)
	assert.Len(t, records, 29)

	records, err = ResolveMonth(factsFor("2025-02"))
	require.NoError(t, err)
	assert.Len(t, records, 28)
}
