package cli

import "fmt"

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	snap := ctx.Engine.Snapshot()
	fmt.Printf("Auto-reschedule missed tasks: %v\n", snap.Settings.AutoRescheduleEnabled)
	fmt.Printf("Weekly problem target: %d\n", snap.ProblemTracker.WeeklyTarget)
	return nil
}

type SettingsRescheduleCmd struct {
	Enabled bool `arg:"" help:"true to carry missed tasks into the next week at rollover."`
}

func (c *SettingsRescheduleCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.SetAutoReschedule(c.Enabled); err != nil {
		return err
	}
	if c.Enabled {
		fmt.Println("Auto-reschedule enabled.")
	} else {
		fmt.Println("Auto-reschedule disabled.")
	}
	return nil
}
