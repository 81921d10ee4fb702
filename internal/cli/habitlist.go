package cli

import (
	"fmt"
)

type HabitListCmd struct {
	All bool `help:"Show every habit, not just those due today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	today := svc.Today()
	habits := svc.DueOn(today)
	if c.All {
		habits = svc.Habits()
	}

	if len(habits) == 0 {
		if c.All {
			fmt.Println("No habits found")
		} else {
			fmt.Println("Nothing due today")
		}
		return ctx.save(svc, pending)
	}

	if c.All {
		fmt.Println("Habits:")
	} else {
		fmt.Printf("Due on %s:\n", today)
	}
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(today) {
			mark = "✓"
		}

		fmt.Printf("  [%s] %s %s - %s, %s (streak %d, best %d)\n",
			mark, h.Icon, h.Name, formatRecurrence(h), h.Difficulty, h.CurrentStreak, h.BestStreak)
		if h.Time != "" {
			fmt.Printf("      Reminder: %s\n", h.Time)
		}
	}

	return ctx.save(svc, pending)
}
