package cli

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/aggregate"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()

	fmt.Printf("Week %d (starting %s)\n", snap.CurrentWeekNumber, snap.CurrentWeekStartDate)
	total, completed := models.ScheduleTotals(snap.WeeklySchedule)
	if total > 0 {
		fmt.Printf("Tasks: %d/%d completed (%d%%)\n", completed, total, completed*100/total)
	} else {
		fmt.Println("Tasks: none scheduled")
	}

	fmt.Printf("Learning streak: %d day(s)\n", snap.LearningStreak)
	fmt.Printf("Solving streak:  %d day(s)\n", snap.ProblemTracker.Streak)
	fmt.Printf("Posting streak:  %d day(s)\n", snap.PostingReminder.Streak)

	solved, target := aggregate.WeeklyTargetProgress(snap.ProblemTracker, snap.CurrentWeekStartDate)
	fmt.Printf("Problems this week: %d/%d (total %d: %d easy, %d medium, %d hard)\n",
		solved, target, snap.ProblemTracker.TotalSolved,
		snap.ProblemTracker.Easy, snap.ProblemTracker.Medium, snap.ProblemTracker.Hard)

	return nil
}
