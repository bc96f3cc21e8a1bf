package cli

import "fmt"

type ReportListCmd struct{}

func (c *ReportListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	reports := ctx.Engine.Snapshot().WeeklyReports
	if len(reports) == 0 {
		fmt.Println("No weekly reports yet. Reports are built when a week rolls over.")
		return nil
	}

	for _, r := range reports {
		fmt.Printf("Week %d (%s to %s)\n", r.WeekNumber, r.StartDate, r.EndDate)
		fmt.Printf("  Study: %.1fh, problems: %d (%d easy, %d medium, %d hard)\n",
			r.TotalStudyHours, r.ProblemsSolved, r.Easy, r.Medium, r.Hard)
		fmt.Printf("  Tasks: %d%% completed, streak at week end: %d\n", r.Percentage, r.StreakAtWeekEnd)
		if r.Notes != "" {
			fmt.Printf("  Notes: %s\n", r.Notes)
		}
	}
	return nil
}

type ReportNotesCmd struct {
	Week  int    `arg:"" help:"Week number of a retained report."`
	Notes string `arg:"" help:"Note text to attach."`
}

func (c *ReportNotesCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetReportNotes(c.Week, c.Notes); err != nil {
		return err
	}
	fmt.Printf("Notes saved for week %d.\n", c.Week)
	return nil
}

type SummaryListCmd struct{}

func (c *SummaryListCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	summaries := ctx.Engine.Snapshot().WeeklySummaries
	if len(summaries) == 0 {
		fmt.Println("No weekly summaries yet.")
		return nil
	}

	for _, s := range summaries {
		mark := " "
		if s.IsWeekCompleted {
			mark = "✓"
		}
		fmt.Printf("%s Week %d (%s to %s): %d/%d tasks (%d%%)\n",
			mark, s.WeekNumber, s.StartDate, s.EndDate, s.CompletedTasks, s.TotalTasks, s.Percentage)
	}
	return nil
}
