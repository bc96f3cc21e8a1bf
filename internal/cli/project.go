package cli

import (
	"fmt"
	"strings"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"
)

type ProjectAddCmd struct {
	Name        string   `arg:"" help:"Project name."`
	Description string   `help:"Short project description."`
	Github      string   `help:"GitHub repository link."`
	Milestone   string   `help:"Milestone date (YYYY-MM-DD)."`
	Tasks       []string `help:"Checklist items, comma separated." sep:","`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	project, err := ctx.Engine.AddProject(c.Name, c.Description, c.Github, c.Milestone, c.Tasks)
	if err != nil {
		return err
	}
	fmt.Printf("Project created: %s (id=%s)\n", project.Name, project.ID)
	return nil
}

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	projects := ctx.Engine.Snapshot().Projects
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	for _, project := range projects {
		fmt.Printf("[%s] %s  id=%s\n", project.Status, project.Name, project.ID)
		if project.Description != "" {
			fmt.Printf("    %s\n", project.Description)
		}
		if project.MilestoneDate != "" {
			fmt.Printf("    Milestone: %s\n", project.MilestoneDate)
		}
		for _, task := range project.Tasks {
			fmt.Printf("    %s %s  id=%s\n", checkbox(task.IsCompleted), task.Description, task.ID)
		}
	}
	return nil
}

type ProjectStatusCmd struct {
	ID     string `arg:"" help:"Project id."`
	Status string `arg:"" help:"New status: not-started, in-progress or completed."`
}

func (c *ProjectStatusCmd) Run(ctx *Context) error {
	var status models.ProjectStatus
	switch strings.ToLower(c.Status) {
	case "not-started":
		status = models.StatusNotStarted
	case "in-progress":
		status = models.StatusInProgress
	case "completed":
		status = models.StatusCompleted
	default:
		return fmt.Errorf("invalid status: %s (expected not-started, in-progress or completed)", c.Status)
	}

	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetProjectStatus(c.ID, status); err != nil {
		return err
	}
	fmt.Printf("Project moved to %s.\n", status)
	return nil
}

type ProjectTaskCmd struct {
	ProjectID string `arg:"" help:"Project id."`
	TaskID    string `arg:"" help:"Checklist item id."`
}

func (c *ProjectTaskCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.ToggleProjectTask(c.ProjectID, c.TaskID); err != nil {
		return err
	}
	fmt.Println("Checklist item toggled.")
	return nil
}

type ProjectDeleteCmd struct {
	ID string `arg:"" help:"Project id."`
}

func (c *ProjectDeleteCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.DeleteProject(c.ID); err != nil {
		return err
	}
	fmt.Println("Project deleted.")
	return nil
}
