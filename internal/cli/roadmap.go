package cli

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/curriculum"
)

type RoadmapStatsCmd struct{}

func (c *RoadmapStatsCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	for _, stats := range ctx.Engine.CurriculumStats() {
		fmt.Printf("Month %d - %s: %d/%d tasks (%d%%)\n",
			stats.Month, stats.Title, stats.Completed, stats.Total, stats.Percent)
	}
	return nil
}

type RoadmapShowCmd struct {
	Week int `arg:"" help:"Plan week number."`
}

func (c *RoadmapShowCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	week, err := curriculum.FindWeek(curriculum.Plan(), c.Week)
	if err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	completed := snap.CompletedIDSet()
	fmt.Printf("Week %d: %s\n", week.Number, week.Title)
	for _, goal := range week.Goals {
		fmt.Printf("  Goal: %s\n", goal)
	}
	for _, day := range week.Days {
		fmt.Printf("%s:\n", day.Day)
		for _, task := range day.Tasks {
			fmt.Printf("  %s %s: %s - %s (%.1fh)  id=%s\n",
				checkbox(completed[task.ID]), task.Domain, task.Topic, task.Description, task.Hours, task.ID)
		}
	}
	return nil
}

type RoadmapSyncCmd struct {
	Week int `arg:"" help:"Plan week number to load into the weekly schedule."`
}

func (c *RoadmapSyncCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SyncWeek(c.Week); err != nil {
		return err
	}
	fmt.Printf("Weekly schedule replaced with plan week %d.\n", c.Week)
	return nil
}

type RoadmapDoneCmd struct {
	ID   string `arg:"" help:"Curriculum task id (see 'roadmap show')."`
	Undo bool   `help:"Mark the task as not completed instead."`
}

func (c *RoadmapDoneCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetCurriculumTaskDone(c.ID, !c.Undo); err != nil {
		return err
	}
	if c.Undo {
		fmt.Printf("Task %s marked not completed.\n", c.ID)
	} else {
		fmt.Printf("Task %s completed.\n", c.ID)
	}
	return nil
}
