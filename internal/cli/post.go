package cli

import "fmt"

type PostCmd struct{}

func (c *PostCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}
	if err := ctx.Engine.MarkPosted(); err != nil {
		return err
	}

	reminder := ctx.Engine.Snapshot().PostingReminder
	fmt.Printf("Posted today. Posting streak: %d day(s).\n", reminder.Streak)
	return nil
}

type PostIdeasCmd struct{}

func (c *PostIdeasCmd) Run(ctx *Context) error {
	if err := ctx.open(); err != nil {
		return err
	}

	reminder := ctx.Engine.Snapshot().PostingReminder
	fmt.Printf("Template: %s\n", reminder.Template)
	if len(reminder.Ideas) == 0 {
		fmt.Println("No post ideas saved.")
		return nil
	}
	fmt.Println("Ideas:")
	for _, idea := range reminder.Ideas {
		fmt.Printf("  - %s\n", idea)
	}
	if reminder.LastPostedDate != "" {
		fmt.Printf("Last posted: %s (streak %d)\n", reminder.LastPostedDate, reminder.Streak)
	}
	return nil
}
