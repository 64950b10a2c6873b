// Package timeutil handles the tenant-local wall-clock formats the HR
// modules exchange: "YYYY-MM-DD" dates, "YYYY-MM" months and "HH:MM"
// clock strings. Dates are deliberately not instants; day boundaries
// follow the configured tenant timezone.
package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// DateOf formats t as a tenant-local date string.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ClockOf formats t as a tenant-local "HH:MM" string.
func ClockOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// MonthOf formats t as a tenant-local "YYYY-MM" string.
func MonthOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}

// ClockMinutes converts "HH:MM" to minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight (or a duration in
// minutes) as "HH:MM".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DatesOfMonth returns every calendar date of month ("YYYY-MM") in
// ascending order.
func DatesOfMonth(month string) ([]string, error) {
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	days := first.AddDate(0, 1, -1).Day()
	dates := make([]string, 0, days)
	for d := 1; d <= days; d++ {
		dates = append(dates, fmt.Sprintf("%s-%02d", month, d))
	}
	return dates, nil
}

// Weekday reports the weekday of a "YYYY-MM-DD" date.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Weekday(), nil
}

// DatesBetween expands [from, to] (both "YYYY-MM-DD", inclusive) to the
// individual dates it covers. Returns nil when to < from.
func DatesBetween(from, to string) ([]string, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", from, err)
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", to, err)
	}
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}
