package cli

import (
	"fmt"
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
	Date  string `help:"Day to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	habit, err := resolveHabit(svc, c.Habit)
	if err != nil {
		return err
	}

	day := svc.Today()
	if c.Date != "" {
		if _, err := time.Parse(models.DayFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date, use YYYY-MM-DD: %w", err)
		}
		day = c.Date
	}

	wasDone := habit.CompletedOn(day)
	if !wasDone && day > svc.Today() {
		return fmt.Errorf("cannot complete a habit in the future")
	}

	events := svc.ToggleHabit(habit.ID, day)
	if err := ctx.save(svc, append(pending, events...)); err != nil {
		return err
	}

	habit, _ = svc.Habit(habit.ID)
	if wasDone {
		fmt.Printf("Undid %s for %s\n", habit.Name, day)
	} else {
		fmt.Printf("✓ %s done for %s (streak %d)\n", habit.Name, day, habit.CurrentStreak)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	habit, err := resolveHabit(svc, c.Habit)
	if err != nil {
		return err
	}
	svc.DeleteHabit(habit.ID)

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitDuplicateCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
}

func (c *HabitDuplicateCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	habit, err := resolveHabit(svc, c.Habit)
	if err != nil {
		return err
	}
	dup, _ := svc.DuplicateHabit(habit.ID)

	if err := ctx.save(svc, pending); err != nil {
		return err
	}
	fmt.Printf("Duplicated habit: %s (ID: %s)\n", dup.Name, dup.ID)
	return nil
}
