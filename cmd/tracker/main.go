package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/cli"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/engine"
	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/tracker/tracker.db"`
	User    string `help:"User id the snapshot belongs to." default:"default"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize tracker storage."`
	Status cli.StatusCmd `cmd:"" help:"Show streaks and this week's progress." default:"1"`
	Task   struct {
		List   cli.TaskListCmd   `cmd:"" help:"List the weekly schedule."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
		Note   cli.TaskNoteCmd   `cmd:"" help:"Set a task's notes."`
	} `cmd:"" help:"Manage scheduled tasks."`
	Study struct {
		Log   cli.StudyLogCmd   `cmd:"" help:"Log a completed study session."`
		Timer cli.StudyTimerCmd `cmd:"" help:"Run the stopwatch and log the session on stop."`
		Show  cli.StudyShowCmd  `cmd:"" help:"Show study hours for the last 7 days."`
	} `cmd:"" help:"Track study time."`
	Pomodoro cli.PomodoroCmd `cmd:"" help:"Run focus/break rounds, logging each phase."`
	Solve    struct {
		Add  cli.SolveAddCmd  `cmd:"" help:"Log solved problems."`
		Set  cli.SolveSetCmd  `cmd:"" help:"Overwrite the cumulative counters."`
		Show cli.SolveShowCmd `cmd:"" help:"Show problem-solving progress."`
	} `cmd:"" help:"Track solved problems."`
	Target cli.TargetCmd    `cmd:"" help:"Set the weekly solved-problems target."`
	Post   cli.PostCmd      `cmd:"" help:"Mark today's post as published."`
	Ideas  cli.PostIdeasCmd `cmd:"" help:"Show the posting template and saved ideas."`
	Report struct {
		List  cli.ReportListCmd  `cmd:"" help:"List retained weekly reports."`
		Notes cli.ReportNotesCmd `cmd:"" help:"Attach notes to a retained report."`
	} `cmd:"" help:"Weekly reports."`
	Summary cli.SummaryListCmd `cmd:"" help:"List weekly completion summaries."`
	Heatmap cli.HeatmapCmd     `cmd:"" help:"Print the trailing activity heatmap."`
	Roadmap struct {
		Stats cli.RoadmapStatsCmd `cmd:"" help:"Show per-month plan completion."`
		Show  cli.RoadmapShowCmd  `cmd:"" help:"Show one plan week."`
		Sync  cli.RoadmapSyncCmd  `cmd:"" help:"Load a plan week into the weekly schedule."`
		Done  cli.RoadmapDoneCmd  `cmd:"" help:"Mark a plan task completed."`
	} `cmd:"" help:"Long-range learning plan."`
	Project struct {
		Add    cli.ProjectAddCmd    `cmd:"" help:"Add a project."`
		List   cli.ProjectListCmd   `cmd:"" help:"List projects."`
		Status cli.ProjectStatusCmd `cmd:"" help:"Set a project's status."`
		Task   cli.ProjectTaskCmd   `cmd:"" help:"Toggle a project checklist item."`
		Delete cli.ProjectDeleteCmd `cmd:"" help:"Delete a project."`
	} `cmd:"" help:"Manage projects."`
	Settings struct {
		Show       cli.SettingsShowCmd       `cmd:"" help:"Show current settings."`
		Reschedule cli.SettingsRescheduleCmd `cmd:"" help:"Toggle carrying missed tasks into the next week."`
	} `cmd:"" help:"Settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tracker"),
		kong.Description("Personal learning-progress tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(store, CLI.User),
		UserID: CLI.User,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
