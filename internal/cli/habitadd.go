package cli

import (
	"fmt"
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

type HabitAddCmd struct {
	Name       string `arg:"" help:"Habit name."`
	Icon       string `help:"Emoji shown next to the habit." default:"✨"`
	Category   string `short:"c" help:"Time of day (morning|afternoon|evening|night)." default:"morning"`
	Difficulty string `short:"d" help:"Difficulty (easy|medium|hard|heroic)." default:"medium"`
	Time       string `short:"t" help:"Reminder time (HH:MM)."`
	Recurrence string `short:"r" help:"Recurrence type (daily|weekly|monthly|none)." default:"daily"`
	Interval   int    `short:"i" help:"Repeat every N cycles." default:"1"`
	Weekdays   string `short:"w" help:"Comma-separated weekdays for weekly recurrence."`
	DayOfMonth int    `help:"Day number for monthly recurrence."`
	Start      string `help:"Anchor date (YYYY-MM-DD), defaults to today."`
	Due        string `help:"One-off due date (YYYY-MM-DD), overrides recurrence."`
	Desc       string `help:"Longer description."`
}

func (c *HabitAddCmd) Validate() error {
	if c.Interval < 1 {
		return fmt.Errorf("interval must be at least 1")
	}
	if c.Time != "" {
		if _, err := time.Parse("15:04", c.Time); err != nil {
			return fmt.Errorf("invalid reminder time, use HH:MM: %w", err)
		}
	}
	for _, d := range []string{c.Start, c.Due} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.DayFormat, d); err != nil {
			return fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", d, err)
		}
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}
	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}

	var recType models.RecurrenceType
	switch c.Recurrence {
	case "daily":
		recType = models.RecurrenceDaily
	case "weekly":
		recType = models.RecurrenceWeekly
	case "monthly":
		recType = models.RecurrenceMonthly
	case "none":
		recType = models.RecurrenceNone
	default:
		return fmt.Errorf("invalid recurrence type: %s", c.Recurrence)
	}

	rule := models.RecurrenceRule{
		Interval:   c.Interval,
		DayOfMonth: c.DayOfMonth,
	}
	if recType == models.RecurrenceWeekly && c.Weekdays != "" {
		wds, err := parseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		rule.WeekdayMask = wds
	}

	habit := svc.AddHabit(models.Habit{
		Name:        c.Name,
		Description: c.Desc,
		Icon:        c.Icon,
		Category:    category,
		Difficulty:  difficulty,
		Time:        c.Time,
		StartDate:   c.Start,
		DueDate:     c.Due,
		Recurrence:  recType,
		Rule:        rule,
	})

	if err := ctx.save(svc, pending); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", habit.Icon, habit.Name, habit.ID)
	return nil
}
