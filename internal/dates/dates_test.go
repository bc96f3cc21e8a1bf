package dates

import (
	"testing"
	"time"
)

func TestAddDays_CrossesMonthAndYearBoundaries(t *testing.T) {
	if got := AddDays("2025-01-31", 1); got != "2025-02-01" {
		t.Errorf("Expected 2025-02-01, got %s", got)
	}
	if got := AddDays("2024-12-31", 1); got != "2025-01-01" {
		t.Errorf("Expected 2025-01-01, got %s", got)
	}
	if got := AddDays("2025-03-01", -1); got != "2025-02-28" {
		t.Errorf("Expected 2025-02-28, got %s", got)
	}
	// 2024 is a leap year.
	if got := AddDays("2024-02-28", 1); got != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}
}

func TestAddDays_InvalidInputPassedThrough(t *testing.T) {
	if got := AddDays("not-a-date", 1); got != "not-a-date" {
		t.Errorf("Expected invalid input returned unchanged, got %s", got)
	}
}

func TestDaysBetween_SignedDistance(t *testing.T) {
	got, err := DaysBetween("2025-06-01", "2025-06-10")
	if err != nil {
		t.Fatalf("DaysBetween failed: %v", err)
	}
	if got != 9 {
		t.Errorf("Expected 9 days, got %d", got)
	}

	got, err = DaysBetween("2025-06-10", "2025-06-01")
	if err != nil {
		t.Fatalf("DaysBetween failed: %v", err)
	}
	if got != -9 {
		t.Errorf("Expected -9 days, got %d", got)
	}
}

func TestStartOfWeek_MondayBased(t *testing.T) {
	cases := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC), "2025-06-09"},  // Monday
		{time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC), "2025-06-09"}, // Wednesday
		{time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), "2025-06-09"}, // Sunday belongs to the preceding Monday
	}
	for _, c := range cases {
		if got := Format(StartOfWeek(c.day)); got != c.want {
			t.Errorf("StartOfWeek(%s) = %s, expected %s", Format(c.day), got, c.want)
		}
	}
}

func TestEndOfWeek_SundayOfSameWeek(t *testing.T) {
	if got := EndOfWeek("2025-06-09"); got != "2025-06-15" {
		t.Errorf("Expected 2025-06-15, got %s", got)
	}
}

func TestInRange_InclusiveBothEnds(t *testing.T) {
	if !InRange("2025-06-09", "2025-06-09", "2025-06-15") {
		t.Errorf("Expected start date in range")
	}
	if !InRange("2025-06-15", "2025-06-09", "2025-06-15") {
		t.Errorf("Expected end date in range")
	}
	if InRange("2025-06-16", "2025-06-09", "2025-06-15") {
		t.Errorf("Expected day after end out of range")
	}
}
