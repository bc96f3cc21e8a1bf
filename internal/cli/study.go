package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/aggregate"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/timer"
)

type StudyLogCmd struct {
	Minutes int `arg:"" help:"Length of the completed study session in minutes."`
}

func (c *StudyLogCmd) Run(ctx *Context) error {
	if c.Minutes <= 0 {
		return fmt.Errorf("session length must be positive, got %d", c.Minutes)
	}
	if err := ctx.open(); err != nil {
		return err
	}

	if err := ctx.Engine.LogStudySession(time.Duration(c.Minutes) * time.Minute); err != nil {
		return err
	}
	fmt.Printf("Logged %dm study session.\n", c.Minutes)
	return nil
}

// StudyTimerCmd runs the stopwatch in the foreground; pressing Enter stops
// it and commits the elapsed time as a study session.
type StudyTimerCmd struct{}

func (c *StudyTimerCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	sw := timer.NewStopwatch(nil)
	sw.Start()
	fmt.Println("Study timer running. Press Enter to stop and log the session.")

	reader := bufio.NewReader(os.Stdin)
	if _, err := reader.ReadString('\n'); err != nil {
		return err
	}

	elapsed := sw.Stop()
	if elapsed < time.Second {
		fmt.Println("Session too short, nothing logged.")
		return nil
	}
	if err := ctx.Engine.LogStudySession(elapsed); err != nil {
		return err
	}
	fmt.Printf("Logged %s study session.\n", elapsed.Round(time.Second))
	return nil
}

type StudyShowCmd struct{}

func (c *StudyShowCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	series := aggregate.StudyHoursSeries(snap.StudySessions, ctx.Engine.Today())

	fmt.Println("Study hours, last 7 days:")
	var total float64
	for _, point := range series {
		fmt.Printf("  %s  %5.1fh\n", point.Date, point.Hours)
		total += point.Hours
	}
	fmt.Printf("Total: %.1fh\n", aggregate.RoundHours(total))
	return nil
}

// PomodoroCmd runs the focus/break countdown in the foreground, logging each
// completed phase. Interrupting it mid-phase logs nothing for that phase.
type PomodoroCmd struct {
	Rounds int `help:"Stop after this many completed focus rounds." default:"1"`
}

func (c *PomodoroCmd) Run(ctx *Context) error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if err := ctx.open(); err != nil {
		return err
	}

	p := timer.NewPomodoro()
	p.Start()

	focusDone := 0
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Printf("Pomodoro started: %s (%s)\n", p.Phase(), p.Remaining().Round(time.Second))
	last := time.Now()
	for range ticker.C {
		now := time.Now()
		done, completed := p.Tick(now.Sub(last))
		last = now
		if !completed {
			continue
		}

		if err := ctx.Engine.LogPomodoro(done.Phase, done.Duration); err != nil {
			return err
		}
		fmt.Printf("Completed %s phase. Next: %s (%s)\n", done.Phase, p.Phase(), p.Remaining().Round(time.Second))

		if done.Phase == models.PhaseFocus {
			focusDone++
			if focusDone >= c.Rounds {
				break
			}
		}
	}

	fmt.Printf("Done: %d focus round(s) logged.\n", focusDone)
	return nil
}
