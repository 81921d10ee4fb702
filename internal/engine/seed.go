package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumen-app/lumen/internal/models"
)

// SeedState returns the starter content a fresh install begins with: two
// gentle morning habits and one short challenge.
func SeedState(today time.Time) State {
	day := today.Format(models.DayFormat)
	return State{
		Habits: []models.Habit{
			{
				ID:         uuid.New().String(),
				Name:       "5 minute meditation",
				Icon:       "🧘",
				Category:   models.CategoryMorning,
				Difficulty: models.DifficultyEasy,
				Time:       "07:00",
				StartDate:  day,
				Recurrence: models.RecurrenceDaily,
				Rule:       models.RecurrenceRule{Interval: 1},
			},
			{
				ID:         uuid.New().String(),
				Name:       "Drink a glass of water",
				Icon:       "💧",
				Category:   models.CategoryMorning,
				Difficulty: models.DifficultyEasy,
				Time:       "07:15",
				StartDate:  day,
				Recurrence: models.RecurrenceDaily,
				Rule:       models.RecurrenceRule{Interval: 1},
			},
		},
		Challenges: []models.Challenge{
			{
				ID:          uuid.New().String(),
				Title:       "7 Days of Zen",
				Description: "Meditate every morning for a full week.",
				Icon:        "🧘",
				Color:       "emerald",
				Difficulty:  models.DifficultyEasy,
				Duration:    7,
			},
		},
		Stats: models.UserStats{Level: 1},
	}
}
