package engine

import (
	"fmt"

	"github.com/lumen-app/lumen/internal/models"
)

// DefaultTitles returns the static heroic-title catalog. Conditions are
// data, not closures, so the catalog round-trips through storage and can be
// tested in isolation.
func DefaultTitles() []models.HeroicTitle {
	return []models.HeroicTitle{
		// Level milestones
		levelTitle("level-1", "The Newborn", models.RarityCommon, 1),
		levelTitle("level-5", "The Awakened", models.RarityCommon, 5),
		levelTitle("level-10", "The Resolute", models.RarityCommon, 10),
		levelTitle("level-15", "The Seeker", models.RarityRare, 15),
		levelTitle("level-20", "The Astral Voyager", models.RarityRare, 20),
		levelTitle("level-25", "The Free Spirit", models.RarityRare, 25),
		levelTitle("level-30", "Master of the Senses", models.RarityRare, 30),
		levelTitle("level-40", "Oracle of the Dawn", models.RarityEpic, 40),
		levelTitle("level-50", "The Solar Avatar", models.RarityEpic, 50),
		levelTitle("level-60", "The Emerald Warden", models.RarityLegendary, 60),
		levelTitle("level-70", "Emperor of Focus", models.RarityLegendary, 70),
		levelTitle("level-80", "Master of the Aura", models.RarityLegendary, 80),
		levelTitle("level-90", "Entity of Light", models.RarityLegendary, 90),
		levelTitle("level-100", "The Eternal", models.RarityLegendary, 100),

		// Completed-habit milestones
		habitsTitle("habits-5", "Apprentice Artisan", models.RarityCommon, 5),
		habitsTitle("habits-10", "Faithful Companion", models.RarityCommon, 10),
		habitsTitle("habits-20", "Worker of Fate", models.RarityCommon, 20),
		habitsTitle("habits-30", "Routine Smith", models.RarityRare, 30),
		habitsTitle("habits-50", "Weaver of Time", models.RarityRare, 50),
		habitsTitle("habits-100", "Architect of Habits", models.RarityEpic, 100),
		habitsTitle("habits-300", "Master Builder", models.RarityLegendary, 300),
		habitsTitle("habits-2000", "The Demiurge", models.RarityLegendary, 2000),

		// Streak milestones
		streakTitle("streak-3", "Bronze Run", models.RarityCommon, 3),
		streakTitle("streak-7", "Soul of Fire", models.RarityRare, 7),
		streakTitle("streak-30", "Master of the Month", models.RarityEpic, 30),
		streakTitle("streak-365", "Light-Year", models.RarityLegendary, 365),

		// Focus-minute milestones
		focusTitle("focus-60", "First Hour", models.RarityCommon, 60),
		focusTitle("focus-300", "Deep Diver", models.RarityRare, 300),
		focusTitle("focus-1000", "Monolith of Focus", models.RarityEpic, 1000),
	}
}

func levelTitle(id, name string, r models.Rarity, level int) models.HeroicTitle {
	return models.HeroicTitle{
		ID: id, Name: name, Description: fmt.Sprintf("Reach level %d.", level),
		Rarity:    r,
		Condition: models.TitleCondition{Kind: models.ConditionLevelAtLeast, Threshold: level},
	}
}

func habitsTitle(id, name string, r models.Rarity, count int) models.HeroicTitle {
	return models.HeroicTitle{
		ID: id, Name: name, Description: fmt.Sprintf("Complete %d habits.", count),
		Rarity:    r,
		Condition: models.TitleCondition{Kind: models.ConditionHabitsCompletedAtLeast, Threshold: count},
	}
}

func streakTitle(id, name string, r models.Rarity, days int) models.HeroicTitle {
	return models.HeroicTitle{
		ID: id, Name: name, Description: fmt.Sprintf("Keep a %d-day streak.", days),
		Rarity:    r,
		Condition: models.TitleCondition{Kind: models.ConditionStreakAtLeast, Threshold: days},
	}
}

func focusTitle(id, name string, r models.Rarity, minutes int) models.HeroicTitle {
	return models.HeroicTitle{
		ID: id, Name: name, Description: fmt.Sprintf("Accumulate %d focus minutes.", minutes),
		Rarity:    r,
		Condition: models.TitleCondition{Kind: models.ConditionFocusMinutesAtLeast, Threshold: minutes},
	}
}

// ConditionMet is the single interpreter for title conditions.
func ConditionMet(c models.TitleCondition, stats models.UserStats) bool {
	switch c.Kind {
	case models.ConditionLevelAtLeast:
		return stats.Level >= c.Threshold
	case models.ConditionStreakAtLeast:
		return stats.Streak >= c.Threshold
	case models.ConditionHabitsCompletedAtLeast:
		return stats.TotalHabitsCompleted >= c.Threshold
	case models.ConditionFocusMinutesAtLeast:
		return stats.TotalFocusMinutes >= c.Threshold
	default:
		return false
	}
}

// EvaluateTitles returns the ids of catalog titles whose condition now holds
// and which are not yet unlocked. It does not mutate stats, so calling it
// again with unchanged stats after recording the unlocks yields nothing.
func EvaluateTitles(catalog []models.HeroicTitle, stats models.UserStats) []string {
	var unlocked []string
	for _, t := range catalog {
		if stats.HasTitle(t.ID) {
			continue
		}
		if ConditionMet(t.Condition, stats) {
			unlocked = append(unlocked, t.ID)
		}
	}
	return unlocked
}
