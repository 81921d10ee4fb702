package cli

import (
	"fmt"
	"strings"

	"github.com/lumen-app/lumen/internal/engine"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	stats := svc.Stats()
	threshold := engine.LevelThreshold(stats.Level)

	fmt.Printf("%s · %s\n\n", svc.SelectedTitle().Name, engine.RankForLevel(stats.Level))
	fmt.Printf("Level %d   %s  %d/%d XP\n", stats.Level, xpBar(stats.XP, threshold, 20), stats.XP, threshold)
	fmt.Printf("Total XP: %d\n\n", stats.TotalXP)

	fmt.Printf("Login streak:         %d days\n", stats.Streak)
	fmt.Printf("Habits completed:     %d\n", stats.TotalHabitsCompleted)
	fmt.Printf("Challenges completed: %d\n", stats.TotalChallengesCompleted)
	fmt.Printf("Focus minutes:        %d\n", stats.TotalFocusMinutes)
	fmt.Printf("Titles unlocked:      %d/%d\n", len(stats.UnlockedTitleIDs), len(svc.Titles()))

	if len(stats.MoodLogs) > 0 {
		last := stats.MoodLogs[len(stats.MoodLogs)-1]
		fmt.Printf("\nLast mood: %d/5 mood, %d/5 energy (%s)\n", last.Mood, last.Energy, last.Date)
	}

	return ctx.save(svc, pending)
}

func xpBar(xp, threshold, width int) string {
	if threshold < 1 {
		threshold = 1
	}
	filled := xp * width / threshold
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

type MoodCmd struct {
	Mood   int `arg:"" help:"Mood for today (1-5)."`
	Energy int `arg:"" help:"Energy for today (1-5)."`
}

func (c *MoodCmd) Validate() error {
	if c.Mood < 1 || c.Mood > 5 || c.Energy < 1 || c.Energy > 5 {
		return fmt.Errorf("mood and energy must be between 1 and 5")
	}
	return nil
}

func (c *MoodCmd) Run(ctx *Context) error {
	svc, pending, err := ctx.openService()
	if err != nil {
		return err
	}

	if svc.Stats().MoodLoggedOn(svc.Today()) {
		fmt.Println("Mood already logged for today")
		return ctx.save(svc, pending)
	}

	events := svc.LogMood(svc.Today(), c.Mood, c.Energy)
	if err := ctx.save(svc, append(pending, events...)); err != nil {
		return err
	}
	fmt.Printf("Logged mood %d/5, energy %d/5 (+%d XP)\n", c.Mood, c.Energy, engine.XPMoodLog)
	return nil
}
