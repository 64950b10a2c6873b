package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ClockMinutes(tt.clock)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.clock)
	}

	_, err := ClockMinutes("25:00")
	assert.Error(t, err)
	_, err = ClockMinutes("9:30am")
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "08:30", FormatMinutes(510))
	assert.Equal(t, "00:00", FormatMinutes(-5))
}

func TestDatesOfMonth(t *testing.T) {
	dates, err := DatesOfMonth("2025-07")
	require.NoError(t, err)
	require.Len(t, dates, 31)
	assert.Equal(t, "2025-07-01", dates[0])
	assert.Equal(t, "2025-07-31", dates[30])

	dates, err = DatesOfMonth("2024-02")
	require.NoError(t, err)
	assert.Len(t, dates, 29)

	_, err = DatesOfMonth("2025-7")
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2025-07-06")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = Weekday("2025-07-05")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, wd)
}

func TestDatesBetween(t *testing.T) {
	dates, err := DatesBetween("2025-07-30", "2025-08-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-07-30", "2025-07-31", "2025-08-01", "2025-08-02"}, dates)

	// Single day range is inclusive on both ends.
	dates, err = DatesBetween("2025-07-01", "2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-07-01"}, dates)

	dates, err = DatesBetween("2025-07-02", "2025-07-01")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestLocalFormatting(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC is already the next day in IST.
	instant := time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-02", DateOf(instant, loc))
	assert.Equal(t, "01:30", ClockOf(instant, loc))
	assert.Equal(t, "2025-07", MonthOf(instant, loc))
}
