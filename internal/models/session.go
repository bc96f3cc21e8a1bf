package models

type PomodoroPhase string

const (
	PhaseFocus      PomodoroPhase = "focus"
	PhaseShortBreak PomodoroPhase = "short-break"
	PhaseLongBreak  PomodoroPhase = "long-break"
)

// StudySession is an immutable record of one completed stopwatch run.
// Date is a calendar day (YYYY-MM-DD), never a timestamp.
type StudySession struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	DurationMs int64  `json:"durationMs"`
}

// PomodoroSession records one completed pomodoro phase.
type PomodoroSession struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	DurationMs  int64         `json:"durationMs"`
	Phase       PomodoroPhase `json:"type"`
	CompletedAt string        `json:"completedAt,omitempty"` // RFC3339 timestamp
}
