// Package streak holds the three consecutive-day calculators: the overall
// learning streak, the problem-solving streak, and the posting streak. All
// are pure functions over calendar-day strings.
package streak

import (
	"sort"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

// HistoryWindowDays bounds the learning-streak trend series.
const HistoryWindowDays = 90

// LearningState is the slice of the snapshot the learning-streak check
// reads and rewrites.
type LearningState struct {
	Streak      int
	LastChecked string // YYYY-MM-DD, "" when never checked
	History     []models.StreakHistoryEntry
}

// CheckLearning advances the learning streak for today. completed reports
// whether every task scheduled for today is done. The check is idempotent:
// re-running it on the same day with the same completion state returns an
// identical LearningState.
func CheckLearning(state LearningState, today string, completed bool) LearningState {
	yesterday := dates.AddDays(today, -1)

	if completed {
		switch {
		case state.LastChecked == yesterday:
			state.Streak++
		case state.LastChecked != today:
			// Never checked, or a gap before today: fresh start.
			state.Streak = 1
		}
		state.LastChecked = today
	} else if state.Streak > 0 && state.LastChecked != today && state.LastChecked != yesterday {
		// A day was silently skipped while a streak was active.
		state.Streak = 0
	}

	state.History = upsertHistory(state.History, today, state.Streak)
	state.History = trimHistory(state.History, today)
	return state
}

func upsertHistory(history []models.StreakHistoryEntry, date string, streak int) []models.StreakHistoryEntry {
	out := make([]models.StreakHistoryEntry, len(history))
	copy(out, history)
	for i := range out {
		if out[i].Date == date {
			out[i].Streak = streak
			return out
		}
	}
	return append(out, models.StreakHistoryEntry{Date: date, Streak: streak})
}

func trimHistory(history []models.StreakHistoryEntry, today string) []models.StreakHistoryEntry {
	cutoff := dates.AddDays(today, -HistoryWindowDays)
	out := history[:0]
	for _, entry := range history {
		if entry.Date >= cutoff {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Solving derives the problem-solving streak from the sparse daily-solved
// series. Qualifying days are those with count > 0; the streak is the length
// of the run of consecutive days ending at the most recent qualifying day.
// A day whose count was corrected back to zero simply drops out of the
// qualifying set.
func Solving(dailySolved []models.DailyCount) int {
	var days []string
	for _, entry := range dailySolved {
		if entry.Count > 0 {
			days = append(days, entry.Date)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Strings(days)

	run := 1
	for i := 1; i < len(days); i++ {
		diff, err := dates.DaysBetween(days[i-1], days[i])
		switch {
		case err != nil || diff > 1:
			run = 1
		case diff == 1:
			run++
		}
		// diff == 0 would mean a duplicate date entry; the run is unchanged.
	}
	return run
}

// MarkPosted records that the user posted today and returns the updated
// reminder. Posting twice on the same day leaves the streak unchanged.
func MarkPosted(reminder models.PostingReminder, today string) models.PostingReminder {
	yesterday := dates.AddDays(today, -1)
	switch reminder.LastPostedDate {
	case today:
		// Already counted.
	case yesterday:
		reminder.Streak++
		reminder.LastPostedDate = today
	default:
		reminder.Streak = 1
		reminder.LastPostedDate = today
	}
	return reminder
}

// RecomputePosting re-evaluates the stored posting streak against today.
// Any gap longer than one day resets the streak to zero, matching the
// learning-streak semantics.
func RecomputePosting(reminder models.PostingReminder, today string) models.PostingReminder {
	if reminder.LastPostedDate == "" {
		reminder.Streak = 0
		return reminder
	}
	yesterday := dates.AddDays(today, -1)
	if reminder.LastPostedDate != today && reminder.LastPostedDate != yesterday {
		reminder.Streak = 0
	}
	return reminder
}
