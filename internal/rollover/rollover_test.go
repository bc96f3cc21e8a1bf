package rollover

import (
	"testing"
	"time"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// June 2025: the 2nd, 9th and 16th are Mondays.
func snapshotForWeek(weekStart string, weekNumber int) models.Snapshot {
	snap := models.NewSnapshot("tester", weekStart)
	snap.CurrentWeekNumber = weekNumber
	return snap
}

func TestRun_SameWeekIsNoOp(t *testing.T) {
	snap := snapshotForWeek("2025-06-09", 3)
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC) // Wednesday of the same week

	got, rolled := Run(snap, now)

	if rolled {
		t.Errorf("Expected no rollover within the same week")
	}
	if got.CurrentWeekNumber != 3 {
		t.Errorf("Expected week number unchanged, got %d", got.CurrentWeekNumber)
	}
	if len(got.WeeklySummaries) != 0 {
		t.Errorf("Expected no summary within the same week, got %d", len(got.WeeklySummaries))
	}
}

func TestRun_WeekBoundaryFinalizesOutgoingWeek(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 3)
	// Complete one task so the summary has something to count.
	snap.WeeklySchedule[0].Tasks[0].IsCompleted = true
	total, _ := models.ScheduleTotals(snap.WeeklySchedule)

	now := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC) // next Monday

	got, rolled := Run(snap, now)

	if !rolled {
		t.Fatalf("Expected rollover across the week boundary")
	}
	if got.CurrentWeekNumber != 4 {
		t.Errorf("Expected week number advanced to 4, got %d", got.CurrentWeekNumber)
	}
	if got.CurrentWeekStartDate != "2025-06-09" {
		t.Errorf("Expected new week start 2025-06-09, got %s", got.CurrentWeekStartDate)
	}

	if len(got.WeeklySummaries) != 1 {
		t.Fatalf("Expected one summary, got %d", len(got.WeeklySummaries))
	}
	summary := got.WeeklySummaries[0]
	if summary.WeekNumber != 3 || summary.StartDate != "2025-06-02" || summary.EndDate != "2025-06-08" {
		t.Errorf("Expected summary for week 3 (2025-06-02 to 2025-06-08), got %+v", summary)
	}
	if summary.TotalTasks != total || summary.CompletedTasks != 1 {
		t.Errorf("Expected %d total / 1 completed tasks, got %d/%d", total, summary.TotalTasks, summary.CompletedTasks)
	}
	if summary.IsWeekCompleted {
		t.Errorf("Expected week not marked completed at %d%%", summary.Percentage)
	}

	if len(got.WeeklyReports) != 1 {
		t.Fatalf("Expected one report, got %d", len(got.WeeklyReports))
	}
	if got.WeeklyReports[0].WeekNumber != 3 {
		t.Errorf("Expected report for week 3, got %d", got.WeeklyReports[0].WeekNumber)
	}

	// Schedule reset to the template: nothing completed anymore.
	_, completed := models.ScheduleTotals(got.WeeklySchedule)
	if completed != 0 {
		t.Errorf("Expected fresh schedule after reset, got %d completed tasks", completed)
	}
}

func TestRun_IsIdempotentAfterRollover(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 1)
	now := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)

	first, rolled := Run(snap, now)
	if !rolled {
		t.Fatalf("Expected first call to roll over")
	}

	second, rolledAgain := Run(first, now)
	if rolledAgain {
		t.Errorf("Expected second call in the same week to be a no-op")
	}
	if len(second.WeeklySummaries) != 1 {
		t.Errorf("Expected summaries unchanged on re-run, got %d", len(second.WeeklySummaries))
	}
}

func TestRun_ReportsTrimmedToFourSummariesUnbounded(t *testing.T) {
	snap := snapshotForWeek("2025-01-06", 1) // Monday, January 6th 2025

	// Roll six week boundaries in sequence.
	for week := 0; week < 6; week++ {
		now := time.Date(2025, 1, 13+7*week, 9, 0, 0, 0, time.UTC)
		var rolled bool
		snap, rolled = Run(snap, now)
		if !rolled {
			t.Fatalf("Expected rollover at week offset %d", week)
		}
	}

	if len(snap.WeeklySummaries) != 6 {
		t.Errorf("Expected all 6 summaries retained, got %d", len(snap.WeeklySummaries))
	}
	if len(snap.WeeklyReports) != models.MaxWeeklyReports {
		t.Fatalf("Expected reports trimmed to %d, got %d", models.MaxWeeklyReports, len(snap.WeeklyReports))
	}
	// Oldest dropped first: weeks 3,4,5,6 remain in chronological order.
	for i, want := range []int{3, 4, 5, 6} {
		if snap.WeeklyReports[i].WeekNumber != want {
			t.Errorf("Expected report %d to be week %d, got %d", i, want, snap.WeeklyReports[i].WeekNumber)
		}
	}
}

func TestRun_CarryOverRedistributesIncompleteTasks(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 2)
	snap.Settings.AutoRescheduleEnabled = true

	// Complete everything except two Monday tasks.
	for d := range snap.WeeklySchedule {
		for i := range snap.WeeklySchedule[d].Tasks {
			snap.WeeklySchedule[d].Tasks[i].IsCompleted = true
		}
	}
	snap.WeeklySchedule[0].Tasks[0].IsCompleted = false
	snap.WeeklySchedule[0].Tasks[1].IsCompleted = false
	missedIDs := map[string]bool{
		snap.WeeklySchedule[0].Tasks[0].ID: true,
		snap.WeeklySchedule[0].Tasks[1].ID: true,
	}

	now := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC) // Monday
	got, _ := Run(snap, now)

	templateTotal, _ := models.ScheduleTotals(models.WeeklyTemplate())
	total, _ := models.ScheduleTotals(got.WeeklySchedule)
	if total != templateTotal+2 {
		t.Fatalf("Expected template plus 2 carried tasks, got %d (template %d)", total, templateTotal)
	}

	carried := 0
	for _, day := range got.WeeklySchedule {
		if day.Day == models.Monday {
			// Rolling over on Monday: today is skipped as a carry-over slot.
			for _, task := range day.Tasks {
				if missedIDs[task.ID] {
					t.Errorf("Expected carried task %s not to land on the elapsed Monday", task.ID)
				}
			}
		}
		for _, task := range day.Tasks {
			if missedIDs[task.ID] {
				carried++
				if task.IsCompleted {
					t.Errorf("Expected carried task %s to stay incomplete", task.ID)
				}
				if task.Notes != "Rescheduled from Monday" {
					t.Errorf("Expected reschedule note, got %q", task.Notes)
				}
			}
		}
	}
	if carried != 2 {
		t.Errorf("Expected both missed tasks carried with their ids, found %d", carried)
	}
}

func TestRun_CarryOverSkipsDaysAlreadyHoldingTheID(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 2)
	snap.Settings.AutoRescheduleEnabled = true
	for d := range snap.WeeklySchedule {
		for i := range snap.WeeklySchedule[d].Tasks {
			snap.WeeklySchedule[d].Tasks[i].IsCompleted = true
		}
	}

	// Miss all of Tuesday; the fresh week's Tuesday holds the same ids, so
	// the carried copies must land elsewhere.
	tuesday := models.FindDay(snap.WeeklySchedule, models.Tuesday)
	missedIDs := make(map[string]bool)
	for i := range tuesday.Tasks {
		tuesday.Tasks[i].IsCompleted = false
		missedIDs[tuesday.Tasks[i].ID] = true
	}

	now := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC) // Monday
	got, _ := Run(snap, now)

	carried := 0
	for _, day := range got.WeeklySchedule {
		seen := make(map[string]bool)
		for _, task := range day.Tasks {
			if seen[task.ID] {
				t.Errorf("Duplicate task id %s on %s", task.ID, day.Day)
			}
			seen[task.ID] = true
			if missedIDs[task.ID] && task.Notes == "Rescheduled from Tuesday" {
				carried++
				if day.Day == models.Tuesday {
					t.Errorf("Expected carried task %s to avoid Tuesday", task.ID)
				}
			}
		}
	}
	if carried != len(missedIDs) {
		t.Errorf("Expected all %d missed tasks carried, found %d", len(missedIDs), carried)
	}
}

func TestRun_CarryOverDisabledDropsIncompleteTasks(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 2)
	snap.Settings.AutoRescheduleEnabled = false
	missedID := snap.WeeklySchedule[0].Tasks[0].ID

	now := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)
	got, _ := Run(snap, now)

	for _, day := range got.WeeklySchedule {
		for _, task := range day.Tasks {
			if task.ID == missedID {
				t.Errorf("Expected missed task %s not to be carried when auto-reschedule is off", missedID)
			}
		}
	}
}

func TestRun_SundayRolloverUsesAllSevenDays(t *testing.T) {
	snap := snapshotForWeek("2025-06-02", 2)
	snap.Settings.AutoRescheduleEnabled = true
	for d := range snap.WeeklySchedule {
		for i := range snap.WeeklySchedule[d].Tasks {
			snap.WeeklySchedule[d].Tasks[i].IsCompleted = true
		}
	}
	snap.WeeklySchedule[0].Tasks[0].IsCompleted = false
	missedID := snap.WeeklySchedule[0].Tasks[0].ID

	// Sunday of the following week: no day of that week remains ahead.
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	got, rolled := Run(snap, now)
	if !rolled {
		t.Fatalf("Expected rollover on a later Sunday")
	}

	found := false
	for _, day := range got.WeeklySchedule {
		for _, task := range day.Tasks {
			if task.ID == missedID {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("Expected the missed task carried even when no upcoming day remains")
	}
}
