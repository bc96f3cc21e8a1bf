package cli

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

type TaskListCmd struct {
	Day string `help:"Show a single day (e.g. monday)." optional:""`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()

	var only models.Weekday
	if c.Day != "" {
		wd, err := parseWeekday(c.Day)
		if err != nil {
			return err
		}
		only = wd
	}

	for _, day := range snap.WeeklySchedule {
		if only != "" && day.Day != only {
			continue
		}
		fmt.Printf("%s:\n", day.Day)
		if len(day.Tasks) == 0 {
			fmt.Println("  (no tasks)")
			continue
		}
		for _, task := range day.Tasks {
			fmt.Printf("  %s %s (%.1fh)  id=%s\n", checkbox(task.IsCompleted), task.Name, task.EstimatedHours, task.ID)
			if task.Notes != "" {
				fmt.Printf("      Notes: %s\n", task.Notes)
			}
		}
	}
	return nil
}

type TaskToggleCmd struct {
	Day string `arg:"" help:"Weekday the task is scheduled on."`
	ID  string `arg:"" help:"Task id (see 'task list')."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	day, err := parseWeekday(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.Engine.ToggleTask(day, c.ID); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	if daily := models.FindDay(snap.WeeklySchedule, day); daily != nil {
		for _, task := range daily.Tasks {
			if task.ID == c.ID {
				fmt.Printf("%s %s\n", checkbox(task.IsCompleted), task.Name)
			}
		}
	}
	fmt.Printf("Learning streak: %d day(s)\n", snap.LearningStreak)
	return nil
}

type TaskNoteCmd struct {
	Day  string `arg:"" help:"Weekday the task is scheduled on."`
	ID   string `arg:"" help:"Task id (see 'task list')."`
	Note string `arg:"" help:"Note text (empty string clears)."`
}

func (c *TaskNoteCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	day, err := parseWeekday(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.Engine.SetTaskNotes(day, c.ID, c.Note); err != nil {
		return err
	}
	fmt.Println("Note saved.")
	return nil
}
