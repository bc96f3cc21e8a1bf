package models

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DailyCount is one day's solved-problem count in the sparse series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DifficultyEntry snapshots the cumulative per-difficulty totals as of a day.
type DifficultyEntry struct {
	Date   string `json:"date"`
	Easy   int    `json:"easy"`
	Medium int    `json:"medium"`
	Hard   int    `json:"hard"`
}

// ProblemTracker holds cumulative solved-problem counters and the derived
// series behind the charts. TotalSolved must equal Easy+Medium+Hard after
// every mutation.
type ProblemTracker struct {
	TotalSolved       int               `json:"totalSolved"`
	Easy              int               `json:"easy"`
	Medium            int               `json:"medium"`
	Hard              int               `json:"hard"`
	TodaySolved       int               `json:"todaySolvedCount"`
	WeeklyTarget      int               `json:"weeklyTarget"`
	DailySolved       []DailyCount      `json:"dailySolved"`
	Streak            int               `json:"streak"`
	DifficultyHistory []DifficultyEntry `json:"difficultyHistory"`
}
