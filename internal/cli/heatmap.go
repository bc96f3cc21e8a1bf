package cli

import (
	"fmt"

	"github.com/Ranganatha-codingaddict/Learning-Tracker/internal/aggregate"
)

var levelGlyphs = []string{"·", "░", "▒", "▓", "█"}

type HeatmapCmd struct {
	Weeks int `help:"Number of trailing weeks to print." default:"12"`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	if c.Weeks <= 0 || c.Weeks*7 > aggregate.HeatmapWindowDays {
		return fmt.Errorf("weeks must be between 1 and %d", aggregate.HeatmapWindowDays/7)
	}
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	days := aggregate.ActivityLevels(snap.StudySessions, snap.ProblemTracker.DailySolved, ctx.Engine.Today())

	shown := days[len(days)-c.Weeks*7:]
	fmt.Printf("Activity, last %d weeks (oldest first):\n", c.Weeks)
	for i := 0; i < len(shown); i += 7 {
		row := shown[i : i+7]
		fmt.Printf("  %s  ", row[0].Date)
		for _, day := range row {
			fmt.Print(levelGlyphs[day.Level])
		}
		fmt.Println()
	}

	var active int
	for _, day := range days {
		if day.Level > 0 {
			active++
		}
	}
	fmt.Printf("Active days in the last year: %d\n", active)
	return nil
}
