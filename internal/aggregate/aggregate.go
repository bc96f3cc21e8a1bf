// Package aggregate turns raw event logs into the dense, fixed-window
// series behind the charts and heatmap. Builders are pure functions; gaps
// in the input render as zeros, never as missing points.
package aggregate

import (
	"math"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/dates"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

const (
	// HeatmapWindowDays is the trailing range of the activity heatmap.
	HeatmapWindowDays = 365
	// SolvedWindowDays is the range of the daily-solved bar series.
	SolvedWindowDays = 30
	// DifficultyWindowDays is the range of the cumulative difficulty series.
	DifficultyWindowDays = 60
	// StudyWindowDays is the range of the study-hours bar series.
	StudyWindowDays = 7

	// problemWeightMinutes equates one solved problem to ten minutes of
	// study when scoring a day's activity.
	problemWeightMinutes = 10
)

// DayActivity is one heatmap cell.
type DayActivity struct {
	Date         string
	StudyMinutes float64
	Solved       int
	Level        int // 0..4
}

// ActivityLevel buckets a day's minutes-equivalent activity into the five
// discrete heatmap levels.
func ActivityLevel(totalMinutes float64) int {
	switch {
	case totalMinutes == 0:
		return 0
	case totalMinutes < 60:
		return 1
	case totalMinutes < 180:
		return 2
	case totalMinutes < 360:
		return 3
	default:
		return 4
	}
}

// ActivityLevels builds the trailing-year heatmap series ending at today.
// Every day in the window is present; days without activity are level 0.
func ActivityLevels(sessions []models.StudySession, dailySolved []models.DailyCount, today string) []DayActivity {
	minutes := make(map[string]float64)
	for _, s := range sessions {
		minutes[s.Date] += float64(s.DurationMs) / 60000.0
	}
	solved := make(map[string]int)
	for _, entry := range dailySolved {
		solved[entry.Date] += entry.Count
	}

	out := make([]DayActivity, 0, HeatmapWindowDays)
	start := dates.AddDays(today, -(HeatmapWindowDays - 1))
	for day := start; day <= today; day = dates.AddDays(day, 1) {
		total := minutes[day] + float64(solved[day]*problemWeightMinutes)
		out = append(out, DayActivity{
			Date:         day,
			StudyMinutes: minutes[day],
			Solved:       solved[day],
			Level:        ActivityLevel(total),
		})
	}
	return out
}

// CountPoint is one day in a raw per-day count series.
type CountPoint struct {
	Date  string
	Count int
}

// DailySolvedSeries builds the dense 30-day solved-count series ending at
// today. Counts are raw per-day values, not carried forward.
func DailySolvedSeries(dailySolved []models.DailyCount, today string) []CountPoint {
	byDay := make(map[string]int, len(dailySolved))
	for _, entry := range dailySolved {
		byDay[entry.Date] = entry.Count
	}

	out := make([]CountPoint, 0, SolvedWindowDays)
	start := dates.AddDays(today, -(SolvedWindowDays - 1))
	for day := start; day <= today; day = dates.AddDays(day, 1) {
		out = append(out, CountPoint{Date: day, Count: byDay[day]})
	}
	return out
}

// DifficultySeries builds the dense 60-day cumulative difficulty series
// ending at today, carrying the last known cumulative totals forward across
// days with no entry.
func DifficultySeries(history []models.DifficultyEntry, today string) []models.DifficultyEntry {
	byDay := make(map[string]models.DifficultyEntry, len(history))
	for _, entry := range history {
		byDay[entry.Date] = entry
	}

	out := make([]models.DifficultyEntry, 0, DifficultyWindowDays)
	var lastEasy, lastMedium, lastHard int
	start := dates.AddDays(today, -(DifficultyWindowDays - 1))
	for day := start; day <= today; day = dates.AddDays(day, 1) {
		if entry, ok := byDay[day]; ok {
			lastEasy, lastMedium, lastHard = entry.Easy, entry.Medium, entry.Hard
		}
		out = append(out, models.DifficultyEntry{Date: day, Easy: lastEasy, Medium: lastMedium, Hard: lastHard})
	}
	return out
}

// HoursPoint is one day in the study-hours series.
type HoursPoint struct {
	Date  string
	Hours float64
}

// StudyHoursSeries builds the dense 7-day study-hours series ending at today.
func StudyHoursSeries(sessions []models.StudySession, today string) []HoursPoint {
	ms := make(map[string]int64)
	for _, s := range sessions {
		ms[s.Date] += s.DurationMs
	}

	out := make([]HoursPoint, 0, StudyWindowDays)
	start := dates.AddDays(today, -(StudyWindowDays - 1))
	for day := start; day <= today; day = dates.AddDays(day, 1) {
		out = append(out, HoursPoint{Date: day, Hours: RoundHours(float64(ms[day]) / 3600000.0)})
	}
	return out
}

// RoundHours rounds a duration in hours to one decimal place, the precision
// shown in reports.
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// StudyHoursInRange sums session durations for dates within [start, end],
// converted to hours.
func StudyHoursInRange(sessions []models.StudySession, start, end string) float64 {
	var ms int64
	for _, s := range sessions {
		if dates.InRange(s.Date, start, end) {
			ms += s.DurationMs
		}
	}
	return RoundHours(float64(ms) / 3600000.0)
}

// SolvedInRange sums daily solved counts for dates within [start, end].
func SolvedInRange(dailySolved []models.DailyCount, start, end string) int {
	total := 0
	for _, entry := range dailySolved {
		if dates.InRange(entry.Date, start, end) {
			total += entry.Count
		}
	}
	return total
}

// DifficultyAt returns the most recent cumulative difficulty entry dated at
// or before end, or a zero entry when none exists.
func DifficultyAt(history []models.DifficultyEntry, end string) models.DifficultyEntry {
	var best models.DifficultyEntry
	for _, entry := range history {
		if entry.Date <= end && entry.Date >= best.Date {
			best = entry
		}
	}
	return best
}

// WeeklyTargetProgress reports solved-this-week against the weekly target.
func WeeklyTargetProgress(tracker models.ProblemTracker, weekStart string) (solved, target int) {
	return SolvedInRange(tracker.DailySolved, weekStart, dates.EndOfWeek(weekStart)), tracker.WeeklyTarget
}
