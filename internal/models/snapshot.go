package models

import "sort"

// PostingReminder tracks the daily social-posting habit.
type PostingReminder struct {
	Template       string   `json:"template"`
	Ideas          []string `json:"ideas"`
	LastPostedDate string   `json:"lastPostedDate,omitempty"` // YYYY-MM-DD, "" when never posted
	Streak         int      `json:"streak"`
}

// StreakHistoryEntry is one calendar day's learning-streak value, used to
// render the 90-day trend line.
type StreakHistoryEntry struct {
	Date   string `json:"date"`
	Streak int    `json:"streakValue"`
}

// WeeklySummary is an immutable snapshot of one week's task completion.
type WeeklySummary struct {
	ID              string `json:"id"`
	WeekNumber      int    `json:"weekNumber"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	TotalTasks      int    `json:"totalTasks"`
	CompletedTasks  int    `json:"completedTasks"`
	Percentage      int    `json:"percentageCompleted"`
	IsWeekCompleted bool   `json:"isWeekCompleted"`
}

// WeeklyReport is the richer record built when a week finishes. Only the
// most recent four reports are retained.
type WeeklyReport struct {
	ID              string  `json:"id"`
	WeekNumber      int     `json:"weekNumber"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalStudyHours float64 `json:"totalStudyHours"`
	ProblemsSolved  int     `json:"problemsSolved"`
	Easy            int     `json:"easy"`
	Medium          int     `json:"medium"`
	Hard            int     `json:"hard"`
	StreakAtWeekEnd int     `json:"streakAtWeekEnd"`
	Percentage      int     `json:"tasksCompletedPercentage"`
	IsWeekCompleted bool    `json:"isWeekCompleted"`
	Notes           string  `json:"notes,omitempty"`
}

// AppSettings holds durable feature toggles.
type AppSettings struct {
	AutoRescheduleEnabled bool `json:"isAutoRescheduleEnabled"`
}

// MaxWeeklyReports bounds the retained report list.
const MaxWeeklyReports = 4

// Snapshot is the complete per-user persisted state. The storage layer owns
// it; every other component works on a copy and hands the result back for a
// whole-object write.
type Snapshot struct {
	UserID                    string               `json:"userId"`
	WeeklySchedule            []DailySchedule      `json:"weeklySchedule"`
	StudySessions             []StudySession       `json:"studySessions"`
	PomodoroSessions          []PomodoroSession    `json:"pomodoroSessions"`
	ProblemTracker            ProblemTracker       `json:"problemTracker"`
	Projects                  []Project            `json:"projects"`
	PostingReminder           PostingReminder      `json:"postingReminder"`
	LearningStreak            int                  `json:"learningStreak"`
	LastStreakCheckDate       string               `json:"lastStreakCheckDate,omitempty"`
	StreakHistory             []StreakHistoryEntry `json:"streakHistory"`
	WeeklySummaries           []WeeklySummary      `json:"weeklySummaries"`
	WeeklyReports             []WeeklyReport       `json:"weeklyReports"`
	CurrentWeekNumber         int                  `json:"currentWeekNumber"`
	CurrentWeekStartDate      string               `json:"currentWeekStartDate"`
	Settings                  AppSettings          `json:"settings"`
	ExternallyCompletedTaskIDs []string            `json:"externallyCompletedTaskIds"`
}

// CompletedIDSet returns the externally-completed curriculum task ids as a set.
func (s *Snapshot) CompletedIDSet() map[string]bool {
	set := make(map[string]bool, len(s.ExternallyCompletedTaskIDs))
	for _, id := range s.ExternallyCompletedTaskIDs {
		set[id] = true
	}
	return set
}

// SetCompletedIDs replaces the externally-completed id list from a set,
// keeping the stored order deterministic.
func (s *Snapshot) SetCompletedIDs(set map[string]bool) {
	ids := make([]string, 0, len(set))
	for id, ok := range set {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	s.ExternallyCompletedTaskIDs = ids
}

// ScheduleTotals counts total and completed tasks across a weekly schedule.
func ScheduleTotals(schedule []DailySchedule) (total, completed int) {
	for _, day := range schedule {
		total += len(day.Tasks)
		for _, task := range day.Tasks {
			if task.IsCompleted {
				completed++
			}
		}
	}
	return total, completed
}
