package curriculum

import (
	"testing"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

func TestMonthStats_PartialCompletion(t *testing.T) {
	month := Plan()[0] // 7 leaf tasks across weeks 1 and 2

	completed := map[string]bool{
		"m1w1-react-components": true,
		"m1w1-dsa-arrays":       true,
	}
	stats := MonthStats(month, completed)

	if stats.Total != 7 {
		t.Fatalf("Expected 7 tasks in month 1, got %d", stats.Total)
	}
	if stats.Completed != 2 {
		t.Errorf("Expected 2 completed, got %d", stats.Completed)
	}
	if stats.Percent != 29 { // 2/7 rounded
		t.Errorf("Expected 29%%, got %d%%", stats.Percent)
	}
}

func TestMonthStats_EmptyMonthIsZeroPercent(t *testing.T) {
	month := Month{Number: 9, Title: "Empty"}

	stats := MonthStats(month, nil)

	if stats.Total != 0 || stats.Percent != 0 {
		t.Errorf("Expected 0 tasks and 0%% for an empty month, got %d tasks %d%%", stats.Total, stats.Percent)
	}
}

func TestAllStats_OneEntryPerMonth(t *testing.T) {
	plan := Plan()
	stats := AllStats(plan, nil)

	if len(stats) != len(plan) {
		t.Fatalf("Expected %d entries, got %d", len(plan), len(stats))
	}
	for i, s := range stats {
		if s.Month != plan[i].Number {
			t.Errorf("Expected stats[%d] for month %d, got %d", i, plan[i].Number, s.Month)
		}
		if s.Completed != 0 {
			t.Errorf("Expected nothing completed, got %d in month %d", s.Completed, s.Month)
		}
	}
}

func TestFindWeek_LocatesAcrossMonths(t *testing.T) {
	week, err := FindWeek(Plan(), 5)
	if err != nil {
		t.Fatalf("FindWeek failed: %v", err)
	}
	if week.Number != 5 || week.Title != "Services & Binary Trees" {
		t.Errorf("Expected week 5, got %d (%s)", week.Number, week.Title)
	}
}

func TestFindWeek_UnknownNumberFails(t *testing.T) {
	if _, err := FindWeek(Plan(), 42); err == nil {
		t.Errorf("Expected error for unknown week number")
	}
}

func TestScheduleForWeek_AllWeekdaysPresentAndLinked(t *testing.T) {
	week, err := FindWeek(Plan(), 1)
	if err != nil {
		t.Fatalf("FindWeek failed: %v", err)
	}

	schedule := ScheduleForWeek(week)

	if len(schedule) != 7 {
		t.Fatalf("Expected all 7 weekdays present, got %d", len(schedule))
	}
	if schedule[0].Day != models.Monday || schedule[6].Day != models.Sunday {
		t.Errorf("Expected Monday-first ordering, got %s..%s", schedule[0].Day, schedule[6].Day)
	}

	monday := models.FindDay(schedule, models.Monday)
	if len(monday.Tasks) != 2 {
		t.Fatalf("Expected 2 Monday tasks in week 1, got %d", len(monday.Tasks))
	}
	for _, task := range monday.Tasks {
		if task.ExternalSourceID == "" {
			t.Errorf("Expected task %q linked to its plan task", task.Name)
		}
		if task.ID == task.ExternalSourceID {
			t.Errorf("Expected a fresh instance id distinct from the plan id %s", task.ExternalSourceID)
		}
		if task.IsCompleted {
			t.Errorf("Expected synced tasks to start uncompleted")
		}
	}

	tuesday := models.FindDay(schedule, models.Tuesday)
	if len(tuesday.Tasks) != 0 {
		t.Errorf("Expected Tuesday empty in week 1, got %d tasks", len(tuesday.Tasks))
	}
}

func TestScheduleForWeek_InstanceIDsAreUnique(t *testing.T) {
	week, _ := FindWeek(Plan(), 1)

	a := ScheduleForWeek(week)
	b := ScheduleForWeek(week)

	aMonday := models.FindDay(a, models.Monday)
	bMonday := models.FindDay(b, models.Monday)
	if aMonday.Tasks[0].ID == bMonday.Tasks[0].ID {
		t.Errorf("Expected each sync to mint fresh instance ids")
	}
}
