package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
)

func workingRows(present, absent, halfDays int) []attendance.DayRecordResponse {
	var rows []attendance.DayRecordResponse
	for i := 0; i < present; i++ {
		rows = append(rows, attendance.DayRecordResponse{Status: attendance.StatusPresent, IsWorkingDay: true})
	}
	for i := 0; i < absent; i++ {
		rows = append(rows, attendance.DayRecordResponse{Status: attendance.StatusAbsent, IsWorkingDay: true})
	}
	for i := 0; i < halfDays; i++ {
		rows = append(rows, attendance.DayRecordResponse{Status: attendance.StatusHalfDayFirstHalf, IsWorkingDay: true, HalfDay: true})
	}
	// Off days never count toward the divisor.
	rows = append(rows, attendance.DayRecordResponse{Status: attendance.StatusSunday})
	rows = append(rows, attendance.DayRecordResponse{Status: attendance.StatusHoliday})
	return rows
}

func TestComputeBreakdownBasic(t *testing.T) {
	base := decimal.NewFromInt(30000)
	b := ComputeBreakdown(base, workingRows(23, 2, 0), true)

	assert.Equal(t, 25, b.TotalWorkingDays)
	assert.True(t, b.AbsentDays.Equal(decimal.NewFromInt(2)), "absent days %s", b.AbsentDays)
	assert.True(t, b.PerDay.Equal(decimal.NewFromInt(1200)), "per day %s", b.PerDay)
	assert.True(t, b.Deduction.Equal(decimal.NewFromInt(2400)), "deduction %s", b.Deduction)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(27600)), "final %s", b.FinalSalary)
}

func TestComputeBreakdownHalfDays(t *testing.T) {
	base := decimal.NewFromInt(30000)

	b := ComputeBreakdown(base, workingRows(24, 0, 1), true)
	assert.Equal(t, 25, b.TotalWorkingDays)
	assert.True(t, b.AbsentDays.Equal(decimal.NewFromFloat(0.5)), "absent days %s", b.AbsentDays)
	assert.True(t, b.Deduction.Equal(decimal.NewFromInt(600)), "deduction %s", b.Deduction)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(29400)), "final %s", b.FinalSalary)

	// With half-day deduction off, half days cost nothing.
	b = ComputeBreakdown(base, workingRows(24, 0, 1), false)
	assert.True(t, b.AbsentDays.IsZero(), "absent days %s", b.AbsentDays)
	assert.True(t, b.FinalSalary.Equal(base), "final %s", b.FinalSalary)
}

func TestComputeBreakdownRounding(t *testing.T) {
	base := decimal.NewFromInt(1000)
	b := ComputeBreakdown(base, workingRows(2, 1, 0), true)

	assert.Equal(t, 3, b.TotalWorkingDays)
	assert.True(t, b.Deduction.Equal(decimal.NewFromInt(333)), "deduction %s", b.Deduction)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(667)), "final %s", b.FinalSalary)
}

func TestComputeBreakdownFullyAbsent(t *testing.T) {
	base := decimal.NewFromInt(5000)
	b := ComputeBreakdown(base, workingRows(0, 20, 0), true)

	assert.True(t, b.Deduction.Equal(base), "deduction %s", b.Deduction)
	assert.True(t, b.FinalSalary.IsZero(), "final %s", b.FinalSalary)
}

func TestComputeBreakdownNoWorkingDays(t *testing.T) {
	base := decimal.NewFromInt(5000)
	b := ComputeBreakdown(base, workingRows(0, 0, 0), true)

	assert.Equal(t, 0, b.TotalWorkingDays)
	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.FinalSalary.Equal(base))
}

func TestComputeBreakdownZeroBase(t *testing.T) {
	b := ComputeBreakdown(decimal.Zero, workingRows(10, 5, 0), true)

	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.FinalSalary.IsZero())
}
