// Package timer models the stopwatch and pomodoro countdown as explicit
// tick-driven state machines. Ticks are the only suspension points; a timer
// never holds state a tick could race with, and stopping simply ends future
// ticks.
package timer

import (
	"time"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
	// RoundsPerCycle is how many focus phases precede a long break.
	RoundsPerCycle = 4
)

// Stopwatch accumulates elapsed study time across start/stop cycles.
type Stopwatch struct {
	now         func() time.Time
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.now()
}

// Elapsed returns total accumulated time including the running segment.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.accumulated + s.now().Sub(s.startedAt)
	}
	return s.accumulated
}

func (s *Stopwatch) Running() bool {
	return s.running
}

// Stop halts the stopwatch, resets it, and returns the total elapsed
// duration for the caller to commit as a completed study session.
func (s *Stopwatch) Stop() time.Duration {
	total := s.Elapsed()
	s.running = false
	s.accumulated = 0
	return total
}

// PhaseDuration returns the standard length of a pomodoro phase.
func PhaseDuration(phase models.PomodoroPhase) time.Duration {
	switch phase {
	case models.PhaseShortBreak:
		return ShortBreakDuration
	case models.PhaseLongBreak:
		return LongBreakDuration
	default:
		return FocusDuration
	}
}

// CompletedPhase is emitted when a pomodoro phase runs out.
type CompletedPhase struct {
	Phase    models.PomodoroPhase
	Duration time.Duration
}

// Pomodoro cycles focus and break phases: a short break after each of the
// first three focus rounds, a long break after the fourth, then the round
// counter resets.
type Pomodoro struct {
	phase     models.PomodoroPhase
	remaining time.Duration
	round     int
	running   bool
}

func NewPomodoro() *Pomodoro {
	return &Pomodoro{
		phase:     models.PhaseFocus,
		remaining: FocusDuration,
		round:     1,
	}
}

func (p *Pomodoro) Phase() models.PomodoroPhase { return p.phase }
func (p *Pomodoro) Remaining() time.Duration    { return p.remaining }
func (p *Pomodoro) Round() int                  { return p.round }
func (p *Pomodoro) Running() bool               { return p.running }

func (p *Pomodoro) Start() { p.running = true }

// Stop pauses the countdown without losing the remaining time.
func (p *Pomodoro) Stop() { p.running = false }

// Reset returns to a fresh focus phase at round one.
func (p *Pomodoro) Reset() {
	p.phase = models.PhaseFocus
	p.remaining = FocusDuration
	p.round = 1
	p.running = false
}

// Tick advances the countdown by delta. When the current phase completes it
// is returned for logging and the next phase begins automatically.
func (p *Pomodoro) Tick(delta time.Duration) (CompletedPhase, bool) {
	if !p.running {
		return CompletedPhase{}, false
	}

	p.remaining -= delta
	if p.remaining > 0 {
		return CompletedPhase{}, false
	}

	done := CompletedPhase{Phase: p.phase, Duration: PhaseDuration(p.phase)}

	switch p.phase {
	case models.PhaseFocus:
		if p.round < RoundsPerCycle {
			p.phase = models.PhaseShortBreak
		} else {
			p.phase = models.PhaseLongBreak
		}
	case models.PhaseShortBreak:
		p.phase = models.PhaseFocus
		p.round++
	case models.PhaseLongBreak:
		p.phase = models.PhaseFocus
		p.round = 1
	}
	p.remaining = PhaseDuration(p.phase)
	return done, true
}
