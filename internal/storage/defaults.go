package storage

import (
	"time"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// defaultSnapshot synthesizes the first snapshot for a user who has never
// saved anything.
func defaultSnapshot(userID string) models.Snapshot {
	weekStart := dates.Format(dates.StartOfWeek(time.Now()))
	return models.NewSnapshot(userID, weekStart)
}

// Backfill is the schema-migration seam: fields absent from an older
// persisted snapshot are filled with their documented defaults, and the
// stored weekly schedule is merged over the current template so new
// template tasks appear while existing completion state and notes survive.
func Backfill(snap models.Snapshot, userID string) models.Snapshot {
	snap.UserID = userID

	if snap.StudySessions == nil {
		snap.StudySessions = []models.StudySession{}
	}
	if snap.PomodoroSessions == nil {
		snap.PomodoroSessions = []models.PomodoroSession{}
	}
	if snap.Projects == nil {
		snap.Projects = []models.Project{}
	}
	if snap.StreakHistory == nil {
		snap.StreakHistory = []models.StreakHistoryEntry{}
	}
	if snap.WeeklySummaries == nil {
		snap.WeeklySummaries = []models.WeeklySummary{}
	}
	if snap.WeeklyReports == nil {
		snap.WeeklyReports = []models.WeeklyReport{}
	}
	if snap.ExternallyCompletedTaskIDs == nil {
		snap.ExternallyCompletedTaskIDs = []string{}
	}
	if snap.PostingReminder.Template == "" && snap.PostingReminder.Ideas == nil {
		snap.PostingReminder = models.DefaultReminder()
	}
	if snap.ProblemTracker.DailySolved == nil {
		snap.ProblemTracker.DailySolved = []models.DailyCount{}
	}
	if snap.ProblemTracker.DifficultyHistory == nil {
		snap.ProblemTracker.DifficultyHistory = []models.DifficultyEntry{}
	}
	if snap.ProblemTracker.WeeklyTarget == 0 {
		snap.ProblemTracker.WeeklyTarget = models.DefaultTracker().WeeklyTarget
	}
	if snap.CurrentWeekNumber == 0 {
		snap.CurrentWeekNumber = 1
	}
	if snap.CurrentWeekStartDate == "" {
		snap.CurrentWeekStartDate = dates.Format(dates.StartOfWeek(time.Now()))
	}

	snap.WeeklySchedule = MergeSchedule(snap.WeeklySchedule, models.WeeklyTemplate())
	return snap
}

// MergeSchedule lays stored task state over the template. Template tasks
// keep their current name/estimate but take completion, notes and
// curriculum links from the stored copy; stored tasks the template no
// longer contains (synced or carried-over instances) are kept after them.
//
// A schedule that holds tasks but none with a template id was built wholly
// from a plan-week sync and is kept as stored; injecting template tasks
// into it would undo the sync on the next load.
func MergeSchedule(stored, template []models.DailySchedule) []models.DailySchedule {
	if stored == nil {
		return template
	}

	templateIDs := make(map[string]bool)
	for _, day := range template {
		for _, task := range day.Tasks {
			templateIDs[task.ID] = true
		}
	}
	storedTasks, templateOrigin := 0, false
	for _, day := range stored {
		for _, task := range day.Tasks {
			storedTasks++
			if templateIDs[task.ID] {
				templateOrigin = true
			}
		}
	}
	if storedTasks > 0 && !templateOrigin {
		out := make([]models.DailySchedule, 0, len(template))
		for _, templateDay := range template {
			if storedDay := models.FindDay(stored, templateDay.Day); storedDay != nil {
				out = append(out, *storedDay)
				continue
			}
			out = append(out, models.DailySchedule{Day: templateDay.Day, Tasks: []models.ScheduleTask{}})
		}
		return out
	}

	out := make([]models.DailySchedule, 0, len(template))
	for _, templateDay := range template {
		storedDay := models.FindDay(stored, templateDay.Day)
		if storedDay == nil {
			out = append(out, templateDay)
			continue
		}

		byID := make(map[string]models.ScheduleTask, len(storedDay.Tasks))
		for _, task := range storedDay.Tasks {
			byID[task.ID] = task
		}

		merged := make([]models.ScheduleTask, 0, len(storedDay.Tasks))
		for _, task := range templateDay.Tasks {
			if existing, ok := byID[task.ID]; ok {
				task.IsCompleted = existing.IsCompleted
				task.Notes = existing.Notes
				if existing.ExternalSourceID != "" {
					task.ExternalSourceID = existing.ExternalSourceID
				}
				delete(byID, task.ID)
			}
			merged = append(merged, task)
		}
		for _, task := range storedDay.Tasks {
			if _, extra := byID[task.ID]; extra {
				merged = append(merged, task)
			}
		}
		out = append(out, models.DailySchedule{Day: templateDay.Day, Tasks: merged})
	}
	return out
}

// Normalize repairs snapshot invariants in place and reports whether
// anything was wrong: the problem-counter identity, negative streaks, and
// the one-entry-per-weekday schedule shape. Used by doctor, not by the
// load path.
func Normalize(snap *models.Snapshot) bool {
	dirty := false

	if sum := snap.ProblemTracker.Easy + snap.ProblemTracker.Medium + snap.ProblemTracker.Hard; snap.ProblemTracker.TotalSolved != sum {
		snap.ProblemTracker.TotalSolved = sum
		dirty = true
	}
	if snap.LearningStreak < 0 {
		snap.LearningStreak = 0
		dirty = true
	}
	if snap.ProblemTracker.Streak < 0 {
		snap.ProblemTracker.Streak = 0
		dirty = true
	}
	if snap.PostingReminder.Streak < 0 {
		snap.PostingReminder.Streak = 0
		dirty = true
	}

	seen := make(map[models.Weekday]bool)
	deduped := make([]models.DailySchedule, 0, len(snap.WeeklySchedule))
	for _, day := range snap.WeeklySchedule {
		if seen[day.Day] {
			dirty = true
			continue
		}
		seen[day.Day] = true
		deduped = append(deduped, day)
	}
	if len(seen) != len(models.Weekdays) {
		for _, day := range models.Weekdays {
			if !seen[day] {
				deduped = append(deduped, models.DailySchedule{Day: day, Tasks: []models.ScheduleTask{}})
				dirty = true
			}
		}
	}
	snap.WeeklySchedule = deduped
	return dirty
}
