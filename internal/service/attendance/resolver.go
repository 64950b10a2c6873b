package attendance

import (
	"fmt"
	"time"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/pkg/timeutil"
)

// MonthFacts is everything the resolver needs to classify one employee's
// month. All dates are local wall-clock "YYYY-MM-DD" strings inside Month.
type MonthFacts struct {
	Month       string
	Policy      *attendance.Policy
	Holidays    map[string]string
	PaidLeave   map[string]bool
	UnpaidLeave map[string]bool
	Punches     map[string]attendance.Punch
}

// ResolveMonth classifies every day of the month in ascending order.
// Rules apply by priority: Sunday, Saturday off, holiday, approved leave,
// punch record, then absent. Stored punch statuses are ignored; the late
// counter restarts at zero on every call so the outcome only depends on
// the facts passed in.
func ResolveMonth(f MonthFacts) ([]attendance.DayRecord, error) {
	dates, err := timeutil.DatesOfMonth(f.Month)
	if err != nil {
		return nil, err
	}

	if f.Policy == nil && len(f.Punches) > 0 {
		return nil, attendance.ErrPolicyNotFound
	}

	var pol policyClocks
	if f.Policy != nil {
		pol, err = parsePolicyClocks(*f.Policy)
		if err != nil {
			return nil, err
		}
	}

	records := make([]attendance.DayRecord, 0, len(dates))
	lateCount := 0

	for _, date := range dates {
		rec := attendance.DayRecord{Date: date, Source: attendance.SourceSystem}

		weekday, err := timeutil.Weekday(date)
		if err != nil {
			return nil, err
		}

		switch {
		case weekday == time.Sunday:
			rec.Status = attendance.StatusSunday

		case weekday == time.Saturday && f.Policy != nil && !f.Policy.SaturdayWorking:
			rec.Status = attendance.StatusSaturdayOff

		case f.Holidays[date] != "":
			rec.Status = attendance.StatusHoliday
			rec.Source = attendance.SourceHoliday

		case f.PaidLeave[date]:
			rec.Status = attendance.StatusPaidLeave
			rec.IsWorkingDay = true
			rec.Source = attendance.SourceLeave

		case f.UnpaidLeave[date]:
			rec.Status = attendance.StatusAbsent
			rec.IsWorkingDay = true
			rec.Source = attendance.SourceLeave

		default:
			rec.IsWorkingDay = true
			punch, ok := f.Punches[date]
			if !ok {
				rec.Status = attendance.StatusAbsent
				break
			}
			rec.Source = attendance.SourcePunch
			rec.ClockIn = punch.ClockIn
			rec.ClockOut = punch.ClockOut
			rec.TotalHours = punch.TotalHours
			rec.Status, rec.HalfDay, lateCount, err = classifyPunch(punch, *f.Policy, pol, lateCount)
			if err != nil {
				return nil, err
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

type policyClocks struct {
	start, end, halfDay int
}

func parsePolicyClocks(p attendance.Policy) (policyClocks, error) {
	var pc policyClocks
	var err error
	if pc.start, err = timeutil.ClockMinutes(p.OfficeStart); err != nil {
		return pc, fmt.Errorf("invalid office start %q: %w", p.OfficeStart, err)
	}
	if pc.end, err = timeutil.ClockMinutes(p.OfficeEnd); err != nil {
		return pc, fmt.Errorf("invalid office end %q: %w", p.OfficeEnd, err)
	}
	if pc.halfDay, err = timeutil.ClockMinutes(p.HalfDayTime); err != nil {
		return pc, fmt.Errorf("invalid half day time %q: %w", p.HalfDayTime, err)
	}
	return pc, nil
}

// classifyPunch turns one punch record into a status. Early clock-out wins
// over lateness; a late arrival past the grace allowance counts toward the
// running late counter, which escalates to an automatic half day once it
// reaches the policy threshold.
func classifyPunch(p attendance.Punch, policy attendance.Policy, pc policyClocks, lateCount int) (string, bool, int, error) {
	if p.ClockOut != nil && policy.HalfDayDeduction {
		outMin, err := timeutil.ClockMinutes(*p.ClockOut)
		if err != nil {
			return "", false, lateCount, fmt.Errorf("invalid clock out on %s: %w", p.Date, err)
		}
		if outMin < pc.halfDay {
			return attendance.StatusHalfDayFirstHalf, true, lateCount, nil
		}
		if outMin < pc.end {
			return attendance.StatusHalfDaySecondHalf, true, lateCount, nil
		}
	}

	if p.ClockIn != nil {
		inMin, err := timeutil.ClockMinutes(*p.ClockIn)
		if err != nil {
			return "", false, lateCount, fmt.Errorf("invalid clock in on %s: %w", p.Date, err)
		}
		if inMin > pc.start+policy.LateMarginMinutes {
			lateCount++
			// Lates inside the grace allowance still advance the counter
			// but never escalate.
			if lateCount <= policy.GraceLateDays {
				return attendance.StatusLate, false, lateCount, nil
			}
			if policy.LateToHalfDayAfter > 0 && lateCount >= policy.LateToHalfDayAfter {
				return attendance.StatusHalfDayAutoLate, true, lateCount, nil
			}
			return attendance.StatusLate, false, lateCount, nil
		}
	}

	return attendance.StatusPresent, false, lateCount, nil
}
