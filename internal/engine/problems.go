package engine

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/streak"
)

// solvedTrimDays and difficultyTrimDays bound the persisted sparse series;
// the chart windows match.
const (
	solvedTrimDays     = 30
	difficultyTrimDays = 60
)

// AddSolved records n newly solved problems of the given difficulty for
// today and refreshes every derived tracker field.
func (e *Engine) AddSolved(difficulty models.Difficulty, n int) error {
	next := e.snap
	tracker := e.snap.ProblemTracker

	switch difficulty {
	case models.Easy:
		tracker.Easy += n
	case models.Medium:
		tracker.Medium += n
	case models.Hard:
		tracker.Hard += n
	default:
		return fmt.Errorf("unknown difficulty: %s", difficulty)
	}

	today := e.today()
	tracker.TodaySolved = countFor(tracker.DailySolved, today) + n
	next.ProblemTracker = e.refreshTracker(tracker)
	return e.commit(next)
}

// SetProblemCounts overwrites the cumulative per-difficulty counters and
// today's count in one shot (the manual-sync path). Negative inputs are the
// caller's responsibility; derived fields are still recomputed consistently.
func (e *Engine) SetProblemCounts(easy, medium, hard, todayCount int) error {
	next := e.snap
	tracker := e.snap.ProblemTracker
	tracker.Easy = easy
	tracker.Medium = medium
	tracker.Hard = hard
	tracker.TodaySolved = todayCount
	next.ProblemTracker = e.refreshTracker(tracker)
	return e.commit(next)
}

// refreshTracker recomputes the derived tracker state after a counter
// mutation: today's entry in the sparse daily series, the trimmed windows,
// the solving streak, the cumulative difficulty history, and the counter
// identity totalSolved = easy + medium + hard.
func (e *Engine) refreshTracker(tracker models.ProblemTracker) models.ProblemTracker {
	today := e.today()

	tracker.DailySolved = upsertCount(tracker.DailySolved, today, tracker.TodaySolved)
	tracker.DailySolved = trimCounts(tracker.DailySolved, dates.AddDays(today, -(solvedTrimDays-1)))
	tracker.Streak = streak.Solving(tracker.DailySolved)

	tracker.DifficultyHistory = upsertDifficulty(tracker.DifficultyHistory, models.DifficultyEntry{
		Date:   today,
		Easy:   tracker.Easy,
		Medium: tracker.Medium,
		Hard:   tracker.Hard,
	})
	tracker.DifficultyHistory = trimDifficulty(tracker.DifficultyHistory, dates.AddDays(today, -(difficultyTrimDays-1)))

	tracker.TotalSolved = tracker.Easy + tracker.Medium + tracker.Hard
	return tracker
}

func countFor(series []models.DailyCount, date string) int {
	for _, entry := range series {
		if entry.Date == date {
			return entry.Count
		}
	}
	return 0
}

func upsertCount(series []models.DailyCount, date string, count int) []models.DailyCount {
	out := make([]models.DailyCount, len(series))
	copy(out, series)
	for i := range out {
		if out[i].Date == date {
			out[i].Count = count
			return out
		}
	}
	return append(out, models.DailyCount{Date: date, Count: count})
}

func trimCounts(series []models.DailyCount, cutoff string) []models.DailyCount {
	out := series[:0]
	for _, entry := range series {
		if entry.Date >= cutoff {
			out = append(out, entry)
		}
	}
	return out
}

func upsertDifficulty(history []models.DifficultyEntry, entry models.DifficultyEntry) []models.DifficultyEntry {
	out := make([]models.DifficultyEntry, len(history))
	copy(out, history)
	for i := range out {
		if out[i].Date == entry.Date {
			out[i] = entry
			return out
		}
	}
	return append(out, entry)
}

func trimDifficulty(history []models.DifficultyEntry, cutoff string) []models.DifficultyEntry {
	out := history[:0]
	for _, entry := range history {
		if entry.Date >= cutoff {
			out = append(out, entry)
		}
	}
	return out
}
