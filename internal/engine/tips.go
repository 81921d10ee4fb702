package engine

import (
	"context"
	"time"
)

// TipProvider supplies the daily wellness tip. Implementations may be
// remote; their output only ever flows into display state, never into
// XP/streak/achievement logic, so a slow or failing provider cannot corrupt
// core invariants.
type TipProvider interface {
	DailyTip(ctx context.Context, day time.Time) (string, error)
}

var defaultTips = []string{
	"If a task takes less than two minutes, do it now.",
	"Sleep is maintenance, not a luxury. Aim for seven to nine hours.",
	"Small daily changes, kept with discipline, compound into huge results.",
	"Multitasking is a myth. One big task at a time.",
	"Don't spend energy on what you can't control.",
	"Your brain is mostly water. Drink a glass right after waking.",
	"Eighty percent of results come from twenty percent of effort. Find the twenty.",
	"A made bed is the first win of the day.",
	"Walk while you think. Motion unsticks the mind.",
	"End the day by writing tomorrow's three priorities.",
}

// StaticTips is the built-in provider: a deterministic day-of-year pick, so
// the tip changes daily but stays stable within a day.
type StaticTips struct{}

func (StaticTips) DailyTip(_ context.Context, day time.Time) (string, error) {
	return defaultTips[(day.YearDay()-1)%len(defaultTips)], nil
}

// DailyTip asks the provider for the day's tip and falls back to the static
// catalog on any failure. It never returns an error.
func DailyTip(ctx context.Context, p TipProvider, day time.Time) string {
	if p != nil {
		if tip, err := p.DailyTip(ctx, day); err == nil && tip != "" {
			return tip
		}
	}
	tip, _ := StaticTips{}.DailyTip(ctx, day)
	return tip
}
