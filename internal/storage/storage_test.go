package storage

import (
	"path/filepath"
	"testing"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

func TestJSONStore_InitAndRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	snap, err := store.GetSnapshot("alice")
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	snap.LearningStreak = 5
	snap.ProblemTracker.Easy = 3
	if err := store.SaveSnapshot("alice", snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	// Reload from disk through a fresh store.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load of saved file failed: %v", err)
	}
	got, err := reopened.GetSnapshot("alice")
	if err != nil {
		t.Fatalf("GetSnapshot after reload failed: %v", err)
	}
	if got.LearningStreak != 5 {
		t.Errorf("Expected learning streak 5 after roundtrip, got %d", got.LearningStreak)
	}
	if got.ProblemTracker.Easy != 3 {
		t.Errorf("Expected 3 easy problems after roundtrip, got %d", got.ProblemTracker.Easy)
	}
}

func TestJSONStore_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Errorf("Expected second Init to fail on existing file")
	}
}

func TestJSONStore_LoadWithoutInitFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Errorf("Expected Load to fail when storage was never initialized")
	}
}

func TestJSONStore_UnknownUserGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	snap, err := store.GetSnapshot("nobody")
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if snap.UserID != "nobody" {
		t.Errorf("Expected default snapshot owned by the user, got %s", snap.UserID)
	}
	if snap.CurrentWeekNumber != 1 {
		t.Errorf("Expected week number 1 for a new user, got %d", snap.CurrentWeekNumber)
	}
	if len(snap.WeeklySchedule) != 7 {
		t.Errorf("Expected a 7-day schedule, got %d days", len(snap.WeeklySchedule))
	}
	if snap.ProblemTracker.WeeklyTarget != 10 {
		t.Errorf("Expected default weekly target 10, got %d", snap.ProblemTracker.WeeklyTarget)
	}
}

func TestSQLiteStore_InitAndRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	store := NewSQLiteStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	snap, err := store.GetSnapshot("bob")
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	snap.PostingReminder.Streak = 2
	snap.PostingReminder.LastPostedDate = "2025-06-10"
	if err := store.SaveSnapshot("bob", snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := store.GetSnapshot("bob")
	if err != nil {
		t.Fatalf("GetSnapshot after save failed: %v", err)
	}
	if got.PostingReminder.Streak != 2 || got.PostingReminder.LastPostedDate != "2025-06-10" {
		t.Errorf("Expected posting reminder to roundtrip, got %+v", got.PostingReminder)
	}
}

func TestSQLiteStore_SaveOverwritesExistingRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	snap, _ := store.GetSnapshot("bob")
	snap.LearningStreak = 1
	if err := store.SaveSnapshot("bob", snap); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	snap.LearningStreak = 2
	if err := store.SaveSnapshot("bob", snap); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, _ := store.GetSnapshot("bob")
	if got.LearningStreak != 2 {
		t.Errorf("Expected second save to win, got streak %d", got.LearningStreak)
	}
}

func TestBackfill_FillsMissingCollectionsAndDefaults(t *testing.T) {
	// A snapshot persisted by an older build: most fields absent.
	snap := models.Snapshot{LearningStreak: 3}

	got := Backfill(snap, "carol")

	if got.UserID != "carol" {
		t.Errorf("Expected user id set, got %q", got.UserID)
	}
	if got.StudySessions == nil || got.Projects == nil || got.StreakHistory == nil {
		t.Errorf("Expected nil collections back-filled with empty slices")
	}
	if got.ProblemTracker.WeeklyTarget != 10 {
		t.Errorf("Expected default weekly target 10, got %d", got.ProblemTracker.WeeklyTarget)
	}
	if got.CurrentWeekNumber != 1 {
		t.Errorf("Expected week number defaulted to 1, got %d", got.CurrentWeekNumber)
	}
	if got.PostingReminder.Template == "" {
		t.Errorf("Expected default posting reminder template")
	}
	if got.LearningStreak != 3 {
		t.Errorf("Expected existing streak preserved, got %d", got.LearningStreak)
	}
	if len(got.WeeklySchedule) != 7 {
		t.Errorf("Expected full template schedule, got %d days", len(got.WeeklySchedule))
	}
}

func TestMergeSchedule_KeepsStoredStateAndExtraTasks(t *testing.T) {
	template := models.WeeklyTemplate()

	stored := models.WeeklyTemplate()
	stored[0].Tasks[0].IsCompleted = true
	stored[0].Tasks[0].Notes = "halfway through"
	stored[0].Tasks = append(stored[0].Tasks, models.ScheduleTask{
		ID:               "synced-1",
		Name:             "Roadmap: extra task",
		ExternalSourceID: "m1w1-react-components",
	})

	merged := MergeSchedule(stored, template)

	monday := models.FindDay(merged, models.Monday)
	if monday == nil {
		t.Fatalf("Expected Monday present after merge")
	}
	if !monday.Tasks[0].IsCompleted || monday.Tasks[0].Notes != "halfway through" {
		t.Errorf("Expected stored completion and notes preserved, got %+v", monday.Tasks[0])
	}

	found := false
	for _, task := range monday.Tasks {
		if task.ID == "synced-1" {
			found = true
			if task.ExternalSourceID != "m1w1-react-components" {
				t.Errorf("Expected curriculum link preserved, got %q", task.ExternalSourceID)
			}
		}
	}
	if !found {
		t.Errorf("Expected non-template task kept after merge")
	}
}

func TestMergeSchedule_SyncedScheduleKeptWithoutTemplate(t *testing.T) {
	// A schedule built by a plan-week sync carries only generated ids.
	stored := []models.DailySchedule{
		{Day: models.Monday, Tasks: []models.ScheduleTask{
			{ID: "0a1b2c3d-sync", Name: "Roadmap: Components deep dive", ExternalSourceID: "m1w1-react-components"},
		}},
	}

	merged := MergeSchedule(stored, models.WeeklyTemplate())

	if len(merged) != 7 {
		t.Fatalf("Expected all 7 weekdays, got %d", len(merged))
	}
	monday := models.FindDay(merged, models.Monday)
	if len(monday.Tasks) != 1 || monday.Tasks[0].ID != "0a1b2c3d-sync" {
		t.Fatalf("Expected only the synced Monday task, got %+v", monday.Tasks)
	}
	tuesday := models.FindDay(merged, models.Tuesday)
	if len(tuesday.Tasks) != 0 {
		t.Errorf("Expected no template tasks injected into a synced week, Tuesday has %d", len(tuesday.Tasks))
	}
}

func TestMergeSchedule_NilStoredYieldsTemplate(t *testing.T) {
	template := models.WeeklyTemplate()
	merged := MergeSchedule(nil, template)

	total, _ := models.ScheduleTotals(merged)
	wantTotal, _ := models.ScheduleTotals(template)
	if total != wantTotal {
		t.Errorf("Expected template passed through, got %d tasks, expected %d", total, wantTotal)
	}
}

func TestNormalize_RepairsCounterIdentityAndShape(t *testing.T) {
	snap := models.NewSnapshot("dave", "2025-06-09")
	snap.ProblemTracker.Easy = 4
	snap.ProblemTracker.Medium = 2
	snap.ProblemTracker.Hard = 1
	snap.ProblemTracker.TotalSolved = 99 // violates easy+medium+hard
	snap.LearningStreak = -2
	snap.WeeklySchedule = snap.WeeklySchedule[:5] // missing two weekdays

	dirty := Normalize(&snap)

	if !dirty {
		t.Fatalf("Expected Normalize to report repairs")
	}
	if snap.ProblemTracker.TotalSolved != 7 {
		t.Errorf("Expected totalSolved repaired to 7, got %d", snap.ProblemTracker.TotalSolved)
	}
	if snap.LearningStreak != 0 {
		t.Errorf("Expected negative streak clamped to 0, got %d", snap.LearningStreak)
	}
	if len(snap.WeeklySchedule) != 7 {
		t.Errorf("Expected all 7 weekdays restored, got %d", len(snap.WeeklySchedule))
	}
}

func TestNormalize_CleanSnapshotUntouched(t *testing.T) {
	snap := models.NewSnapshot("dave", "2025-06-09")
	if Normalize(&snap) {
		t.Errorf("Expected a fresh snapshot to need no repairs")
	}
}
