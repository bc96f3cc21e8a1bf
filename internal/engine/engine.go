// Package engine exposes the mutation operations of the progress tracker.
// Every mutator is read-modify-write over the in-memory snapshot: transform
// a copy, recompute the streaks and series the change touches, persist the
// whole snapshot, and only then adopt the copy. A failed write leaves the
// in-memory state untouched so no progress is shown as saved when it wasn't.
//
// The engine assumes a single logical writer (see the storage concurrency
// note); there is no locking.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/rollover"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/storage"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/streak"
)

type Engine struct {
	store  storage.Provider
	userID string
	now    func() time.Time
	snap   models.Snapshot
	loaded bool
}

func New(store storage.Provider, userID string) *Engine {
	return NewWithClock(store, userID, time.Now)
}

// NewWithClock injects the clock; tests pin "today" with it.
func NewWithClock(store storage.Provider, userID string, now func() time.Time) *Engine {
	return &Engine{store: store, userID: userID, now: now}
}

func (e *Engine) today() string {
	return dates.Format(e.now())
}

func (e *Engine) todayWeekday() models.Weekday {
	return models.WeekdayOf(e.now().Weekday())
}

// Open loads the snapshot and brings it up to date: the weekly rollover
// runs first if a week boundary was crossed, then the posting streak is
// re-evaluated and the learning streak checked for today. All resulting
// changes persist in a single write. Open is idempotent within a day.
func (e *Engine) Open() error {
	if err := e.store.Load(); err != nil {
		return err
	}

	snap, err := e.store.GetSnapshot(e.userID)
	if err != nil {
		return err
	}

	snap, rolled := rollover.Run(snap, e.now())
	postedBefore := snap.PostingReminder.Streak
	snap.PostingReminder = streak.RecomputePosting(snap.PostingReminder, e.today())
	before := snap.LearningStreak
	beforeChecked := snap.LastStreakCheckDate
	beforeHistory := len(snap.StreakHistory)
	e.applyLearningCheck(&snap)

	dirty := rolled ||
		snap.PostingReminder.Streak != postedBefore ||
		snap.LearningStreak != before ||
		snap.LastStreakCheckDate != beforeChecked ||
		len(snap.StreakHistory) != beforeHistory

	if dirty {
		if err := e.store.SaveSnapshot(e.userID, snap); err != nil {
			return err
		}
	}

	e.snap = snap
	e.loaded = true
	return nil
}

// Snapshot returns a read-only view of the current state. Callers must not
// retain and mutate the returned slices.
func (e *Engine) Snapshot() models.Snapshot {
	return e.snap
}

// Today returns the engine's current calendar day. Read paths use it so
// their windows end on the same day the mutators write to.
func (e *Engine) Today() string {
	return e.today()
}

func (e *Engine) commit(next models.Snapshot) error {
	if !e.loaded {
		return fmt.Errorf("engine not opened")
	}
	if err := e.store.SaveSnapshot(e.userID, next); err != nil {
		return err
	}
	e.snap = next
	return nil
}

// applyLearningCheck runs the daily learning-streak state machine against
// today's task completion and writes the result back into snap.
func (e *Engine) applyLearningCheck(snap *models.Snapshot) {
	completed := false
	if day := models.FindDay(snap.WeeklySchedule, e.todayWeekday()); day != nil && len(day.Tasks) > 0 {
		completed = true
		for _, task := range day.Tasks {
			if !task.IsCompleted {
				completed = false
				break
			}
		}
	}

	state := streak.CheckLearning(streak.LearningState{
		Streak:      snap.LearningStreak,
		LastChecked: snap.LastStreakCheckDate,
		History:     snap.StreakHistory,
	}, e.today(), completed)

	snap.LearningStreak = state.Streak
	snap.LastStreakCheckDate = state.LastChecked
	snap.StreakHistory = state.History
}

// cloneSchedule deep-copies the weekly schedule so a mutation never aliases
// the committed snapshot.
func cloneSchedule(schedule []models.DailySchedule) []models.DailySchedule {
	out := make([]models.DailySchedule, len(schedule))
	for i, day := range schedule {
		tasks := make([]models.ScheduleTask, len(day.Tasks))
		copy(tasks, day.Tasks)
		out[i] = models.DailySchedule{Day: day.Day, Tasks: tasks}
	}
	return out
}

// mirrorScheduleToCompleted syncs the completion flag of every
// curriculum-linked schedule task into the externally-completed id set.
func mirrorScheduleToCompleted(snap *models.Snapshot) {
	set := snap.CompletedIDSet()
	for _, day := range snap.WeeklySchedule {
		for _, task := range day.Tasks {
			if task.ExternalSourceID == "" {
				continue
			}
			if task.IsCompleted {
				set[task.ExternalSourceID] = true
			} else {
				delete(set, task.ExternalSourceID)
			}
		}
	}
	snap.SetCompletedIDs(set)
}

// ToggleTask flips a scheduled task's completion, mirrors curriculum links,
// and re-runs the learning-streak check.
func (e *Engine) ToggleTask(day models.Weekday, taskID string) error {
	next := e.snap
	next.WeeklySchedule = cloneSchedule(e.snap.WeeklySchedule)

	daily := models.FindDay(next.WeeklySchedule, day)
	if daily == nil {
		return fmt.Errorf("no schedule for %s", day)
	}
	found := false
	for i := range daily.Tasks {
		if daily.Tasks[i].ID == taskID {
			daily.Tasks[i].IsCompleted = !daily.Tasks[i].IsCompleted
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("task not found: %s", taskID)
	}

	mirrorScheduleToCompleted(&next)
	e.applyLearningCheck(&next)
	return e.commit(next)
}

// SetTaskNotes replaces a scheduled task's notes.
func (e *Engine) SetTaskNotes(day models.Weekday, taskID, notes string) error {
	next := e.snap
	next.WeeklySchedule = cloneSchedule(e.snap.WeeklySchedule)

	daily := models.FindDay(next.WeeklySchedule, day)
	if daily == nil {
		return fmt.Errorf("no schedule for %s", day)
	}
	for i := range daily.Tasks {
		if daily.Tasks[i].ID == taskID {
			daily.Tasks[i].Notes = notes
			return e.commit(next)
		}
	}
	return fmt.Errorf("task not found: %s", taskID)
}

// LogStudySession appends a completed stopwatch run for today.
func (e *Engine) LogStudySession(duration time.Duration) error {
	next := e.snap
	sessions := make([]models.StudySession, len(e.snap.StudySessions), len(e.snap.StudySessions)+1)
	copy(sessions, e.snap.StudySessions)
	next.StudySessions = append(sessions, models.StudySession{
		ID:         uuid.NewString(),
		Date:       e.today(),
		DurationMs: duration.Milliseconds(),
	})
	return e.commit(next)
}

// LogPomodoro appends a completed pomodoro phase for today.
func (e *Engine) LogPomodoro(phase models.PomodoroPhase, duration time.Duration) error {
	next := e.snap
	sessions := make([]models.PomodoroSession, len(e.snap.PomodoroSessions), len(e.snap.PomodoroSessions)+1)
	copy(sessions, e.snap.PomodoroSessions)
	next.PomodoroSessions = append(sessions, models.PomodoroSession{
		ID:          uuid.NewString(),
		Date:        e.today(),
		DurationMs:  duration.Milliseconds(),
		Phase:       phase,
		CompletedAt: e.now().UTC().Format(time.RFC3339),
	})
	return e.commit(next)
}

// MarkPosted records today's social post and updates the posting streak.
func (e *Engine) MarkPosted() error {
	next := e.snap
	next.PostingReminder = streak.MarkPosted(e.snap.PostingReminder, e.today())
	return e.commit(next)
}

// SetAutoReschedule toggles carry-over of missed tasks at rollover.
func (e *Engine) SetAutoReschedule(enabled bool) error {
	next := e.snap
	next.Settings.AutoRescheduleEnabled = enabled
	return e.commit(next)
}

// SetWeeklyTarget updates the solved-problems target for the week.
func (e *Engine) SetWeeklyTarget(target int) error {
	next := e.snap
	next.ProblemTracker.WeeklyTarget = target
	return e.commit(next)
}

// SetReportNotes attaches user notes to a retained weekly report.
func (e *Engine) SetReportNotes(weekNumber int, notes string) error {
	next := e.snap
	reports := make([]models.WeeklyReport, len(e.snap.WeeklyReports))
	copy(reports, e.snap.WeeklyReports)
	for i := range reports {
		if reports[i].WeekNumber == weekNumber {
			reports[i].Notes = notes
			next.WeeklyReports = reports
			return e.commit(next)
		}
	}
	return fmt.Errorf("no retained report for week %d", weekNumber)
}
