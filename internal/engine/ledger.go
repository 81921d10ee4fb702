package engine

import "github.com/lumen-app/lumen/internal/models"

const (
	// MaxLevel caps progression; XP at the cap accrues up to one point
	// below the final threshold and no further.
	MaxLevel = 100

	// XP awards per habit difficulty.
	XPEasy   = 10
	XPMedium = 15
	XPHard   = 25
	XPHeroic = 40

	// XPChallengeBonus is granted once when a challenge's last day is
	// checked in, on top of the per-day award.
	XPChallengeBonus = 200

	// XPMoodLog is granted for the first mood log of a day.
	XPMoodLog = 10

	// Daily login bonus is LoginBaseXP + streak*LoginStreakXP.
	LoginBaseXP   = 20
	LoginStreakXP = 5
)

// LevelThreshold is the XP required to clear the given level. The curve is
// linear: level L rolls over at L*100.
func LevelThreshold(level int) int {
	return level * 100
}

// XPForDifficulty maps a habit difficulty to its XP value. Unknown values
// fall back to medium, the form default.
func XPForDifficulty(d models.Difficulty) int {
	switch d {
	case models.DifficultyEasy:
		return XPEasy
	case models.DifficultyHard:
		return XPHard
	case models.DifficultyHeroic:
		return XPHeroic
	default:
		return XPMedium
	}
}

// ApplyXP adds delta to the stats, rolling levels up on overflow and
// borrowing levels back down on underflow (undo of a completion). XP, level
// and totalXP are clamped rather than rejected; there is no failure mode.
//
// An EventXPGained is emitted only for positive deltas, followed by one
// EventLevelUp per level gained. Undo mutates state silently.
func ApplyXP(stats *models.UserStats, delta int) []Event {
	if stats.Level < 1 {
		stats.Level = 1
	}

	var events []Event
	if delta > 0 {
		events = append(events, Event{Kind: EventXPGained, Amount: delta})
	}

	stats.XP += delta
	stats.TotalXP += delta
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}

	for stats.XP >= LevelThreshold(stats.Level) && stats.Level < MaxLevel {
		stats.XP -= LevelThreshold(stats.Level)
		stats.Level++
		events = append(events, Event{Kind: EventLevelUp, Level: stats.Level})
	}
	if stats.Level == MaxLevel && stats.XP >= LevelThreshold(MaxLevel) {
		stats.XP = LevelThreshold(MaxLevel) - 1
	}

	for stats.XP < 0 && stats.Level > 1 {
		stats.Level--
		stats.XP += LevelThreshold(stats.Level)
	}
	if stats.XP < 0 {
		stats.XP = 0
	}

	return events
}

// RankForLevel returns the display rank for a level. Purely cosmetic.
func RankForLevel(level int) string {
	switch {
	case level >= 100:
		return "Paragon of Lumen"
	case level >= 80:
		return "Archmaster"
	case level >= 60:
		return "Keeper of Balance"
	case level >= 40:
		return "Adept of Clarity"
	case level >= 20:
		return "Mind Voyager"
	default:
		return "Lumen Novice"
	}
}
