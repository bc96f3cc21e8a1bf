package cli

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/aggregate"
)

type SolveAddCmd struct {
	Difficulty string `arg:"" help:"Difficulty of the solved problem(s): easy, medium or hard."`
	Count      int    `help:"Number of problems solved." default:"1"`
}

func (c *SolveAddCmd) Run(ctx *Context) error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.AddSolved(difficulty, c.Count); err != nil {
		return err
	}

	tracker := ctx.Engine.Snapshot().ProblemTracker
	fmt.Printf("Logged %d %s problem(s). Today: %d, total: %d, streak: %d day(s).\n",
		c.Count, difficulty, tracker.TodaySolved, tracker.TotalSolved, tracker.Streak)
	return nil
}

// SolveSetCmd overwrites the cumulative counters, for syncing with an
// external judge profile.
type SolveSetCmd struct {
	Easy   int `required:"" help:"Cumulative easy problems solved."`
	Medium int `required:"" help:"Cumulative medium problems solved."`
	Hard   int `required:"" help:"Cumulative hard problems solved."`
	Today  int `help:"Problems solved today." default:"0"`
}

func (c *SolveSetCmd) Run(ctx *Context) error {
	if c.Easy < 0 || c.Medium < 0 || c.Hard < 0 || c.Today < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetProblemCounts(c.Easy, c.Medium, c.Hard, c.Today); err != nil {
		return err
	}

	tracker := ctx.Engine.Snapshot().ProblemTracker
	fmt.Printf("Counters set: %d total (%d easy, %d medium, %d hard), streak: %d day(s).\n",
		tracker.TotalSolved, tracker.Easy, tracker.Medium, tracker.Hard, tracker.Streak)
	return nil
}

type SolveShowCmd struct{}

func (c *SolveShowCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	tracker := snap.ProblemTracker
	today := ctx.Engine.Today()

	fmt.Printf("Total solved: %d (%d easy, %d medium, %d hard)\n",
		tracker.TotalSolved, tracker.Easy, tracker.Medium, tracker.Hard)
	fmt.Printf("Today: %d, streak: %d day(s)\n", tracker.TodaySolved, tracker.Streak)

	solved, target := aggregate.WeeklyTargetProgress(tracker, snap.CurrentWeekStartDate)
	fmt.Printf("Weekly target: %d/%d\n", solved, target)

	fmt.Println("\nLast 30 days:")
	for _, point := range aggregate.DailySolvedSeries(tracker.DailySolved, today) {
		if point.Count == 0 {
			continue
		}
		fmt.Printf("  %s  %d\n", point.Date, point.Count)
	}
	return nil
}

type TargetCmd struct {
	Target int `arg:"" help:"Solved-problems target per week."`
}

func (c *TargetCmd) Run(ctx *Context) error {
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", c.Target)
	}
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetWeeklyTarget(c.Target); err != nil {
		return err
	}
	fmt.Printf("Weekly target set to %d.\n", c.Target)
	return nil
}
