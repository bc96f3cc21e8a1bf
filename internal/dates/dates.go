// Package dates centralizes calendar-day handling. All persisted dates are
// YYYY-MM-DD strings so day-boundary comparisons stay timezone-stable.
package dates

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Format renders t as a calendar-day string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse converts a calendar-day string back to a time at midnight UTC.
func Parse(day string) (time.Time, error) {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

// AddDays shifts a calendar-day string by n days. Invalid input is returned
// unchanged; callers validate dates at the storage boundary.
func AddDays(day string, n int) string {
	t, err := Parse(day)
	if err != nil {
		return day
	}
	return Format(t.AddDate(0, 0, n))
}

// DaysBetween returns b-a in whole days (positive when b is after a).
func DaysBetween(a, b string) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// StartOfWeek returns the Monday of t's calendar week.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
}

// EndOfWeek returns the Sunday closing the week that starts at weekStart.
func EndOfWeek(weekStart string) string {
	return AddDays(weekStart, 6)
}

// InRange reports whether day falls within [start, end] inclusive. Calendar
// strings compare correctly as plain strings.
func InRange(day, start, end string) bool {
	return day >= start && day <= end
}
