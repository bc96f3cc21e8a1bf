// Package rollover finalizes a finished calendar week and initializes the
// next one. The check runs on every snapshot load, before anything else
// reads the snapshot, and is idempotent within a week.
package rollover

import (
	"fmt"
	"time"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/aggregate"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// Run compares the stored week start against the calendar week containing
// now and, on mismatch, finalizes the outgoing week: summary, report
// (trimmed to the most recent four), week counter advance, template reset,
// and optional carry-over of incomplete tasks. The returned snapshot is a
// modified copy; the caller persists it in a single write. The second
// return reports whether a rollover happened.
func Run(snap models.Snapshot, now time.Time) (models.Snapshot, bool) {
	weekStart := dates.Format(dates.StartOfWeek(now))
	if snap.CurrentWeekStartDate == weekStart {
		return snap, false
	}

	prevStart := snap.CurrentWeekStartDate
	prevEnd := dates.EndOfWeek(prevStart)
	outgoing := snap.WeeklySchedule

	total, completed := models.ScheduleTotals(outgoing)
	percent := 0
	if total > 0 {
		percent = int(float64(completed)/float64(total)*100 + 0.5)
	}

	summary := models.WeeklySummary{
		ID:              fmt.Sprintf("week-%d", snap.CurrentWeekNumber),
		WeekNumber:      snap.CurrentWeekNumber,
		StartDate:       prevStart,
		EndDate:         prevEnd,
		TotalTasks:      total,
		CompletedTasks:  completed,
		Percentage:      percent,
		IsWeekCompleted: percent == 100,
	}

	difficulty := aggregate.DifficultyAt(snap.ProblemTracker.DifficultyHistory, prevEnd)
	report := models.WeeklyReport{
		ID:              fmt.Sprintf("report-%d", snap.CurrentWeekNumber),
		WeekNumber:      snap.CurrentWeekNumber,
		StartDate:       prevStart,
		EndDate:         prevEnd,
		TotalStudyHours: aggregate.StudyHoursInRange(snap.StudySessions, prevStart, prevEnd),
		ProblemsSolved:  aggregate.SolvedInRange(snap.ProblemTracker.DailySolved, prevStart, prevEnd),
		Easy:            difficulty.Easy,
		Medium:          difficulty.Medium,
		Hard:            difficulty.Hard,
		StreakAtWeekEnd: snap.LearningStreak,
		Percentage:      percent,
		IsWeekCompleted: percent == 100,
	}

	snap.WeeklySummaries = append(copySummaries(snap.WeeklySummaries), summary)
	snap.WeeklyReports = appendReport(snap.WeeklyReports, report)
	snap.CurrentWeekNumber++
	snap.CurrentWeekStartDate = weekStart

	snap.WeeklySchedule = models.WeeklyTemplate()
	if snap.Settings.AutoRescheduleEnabled {
		carryOver(snap.WeeklySchedule, outgoing, now)
	}
	return snap, true
}

func copySummaries(summaries []models.WeeklySummary) []models.WeeklySummary {
	out := make([]models.WeeklySummary, len(summaries))
	copy(out, summaries)
	return out
}

// appendReport appends and trims the report list to the most recent
// MaxWeeklyReports, oldest dropped first.
func appendReport(reports []models.WeeklyReport, report models.WeeklyReport) []models.WeeklyReport {
	out := make([]models.WeeklyReport, len(reports), len(reports)+1)
	copy(out, reports)
	out = append(out, report)
	if len(out) > models.MaxWeeklyReports {
		out = out[len(out)-models.MaxWeeklyReports:]
	}
	return out
}

// carryOver redistributes incomplete tasks from the outgoing schedule
// across the upcoming days of the new week, round-robin, preserving ids and
// estimates so completion tracking and curriculum links survive. Days of
// the new week that have already elapsed (including today) are skipped;
// when nothing remains ahead, all seven days are eligible. A task never
// lands on a day that already holds its id; if every eligible day does,
// the fresh template instance stands in for it and nothing is added.
func carryOver(schedule []models.DailySchedule, outgoing []models.DailySchedule, now time.Time) {
	var missed []models.ScheduleTask
	for _, day := range outgoing {
		for _, task := range day.Tasks {
			if task.IsCompleted {
				continue
			}
			carried := task
			carried.Notes = fmt.Sprintf("Rescheduled from %s", day.Day)
			missed = append(missed, carried)
		}
	}
	if len(missed) == 0 {
		return
	}

	todayIdx := models.WeekdayOf(now.Weekday()).Index()
	var slots []int
	for i := range schedule {
		if schedule[i].Day.Index() > todayIdx {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		for i := range schedule {
			slots = append(slots, i)
		}
	}

	next := 0
	for _, task := range missed {
		for tries := 0; tries < len(slots); tries++ {
			idx := slots[(next+tries)%len(slots)]
			if hasTaskID(schedule[idx].Tasks, task.ID) {
				continue
			}
			schedule[idx].Tasks = append(schedule[idx].Tasks, task)
			next = (next + tries + 1) % len(slots)
			break
		}
	}
}

func hasTaskID(tasks []models.ScheduleTask, id string) bool {
	for _, task := range tasks {
		if task.ID == id {
			return true
		}
	}
	return false
}
