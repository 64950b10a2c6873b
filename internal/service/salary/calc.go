package salary

import (
	"github.com/shopspring/decimal"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
)

var (
	half = decimal.NewFromFloat(0.5)
	one  = decimal.NewFromInt(1)
)

// Breakdown is the arithmetic result of one month's salary computation.
type Breakdown struct {
	TotalWorkingDays int
	AbsentDays       decimal.Decimal
	PerDay           decimal.Decimal
	Deduction        decimal.Decimal
	FinalSalary      decimal.Decimal
}

// ComputeBreakdown derives the month's pay from resolved attendance rows.
// Only working days count toward the divisor. A fully absent day deducts
// one day's pay; a half day deducts half a day when the tenant enables
// half-day deduction. Deduction and final salary round to whole units,
// and the final salary never goes below zero.
func ComputeBreakdown(base decimal.Decimal, rows []attendance.DayRecordResponse, halfDayDeduction bool) Breakdown {
	var b Breakdown

	for _, row := range rows {
		if !row.IsWorkingDay {
			continue
		}
		b.TotalWorkingDays++
		switch {
		case row.Status == attendance.StatusAbsent:
			b.AbsentDays = b.AbsentDays.Add(one)
		case row.HalfDay && halfDayDeduction:
			b.AbsentDays = b.AbsentDays.Add(half)
		}
	}

	if b.TotalWorkingDays == 0 {
		b.Deduction = decimal.Zero
		b.FinalSalary = base.Round(0)
		return b
	}

	b.PerDay = base.Div(decimal.NewFromInt(int64(b.TotalWorkingDays)))
	b.Deduction = b.AbsentDays.Mul(b.PerDay).Round(0)
	b.FinalSalary = base.Sub(b.Deduction).Round(0)
	if b.FinalSalary.IsNegative() {
		b.FinalSalary = decimal.Zero
	}
	return b
}
