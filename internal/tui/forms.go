package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

// newHabitForm creates the add-habit form.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("Emoji shown next to the habit").
				Value(&fm.Icon),
			huh.NewSelect[models.Category]().
				Title("Time of Day").
				Options(
					huh.NewOption("Morning", models.CategoryMorning),
					huh.NewOption("Afternoon", models.CategoryAfternoon),
					huh.NewOption("Evening", models.CategoryEvening),
					huh.NewOption("Night", models.CategoryNight),
				).
				Value(&fm.Category),
			huh.NewSelect[models.Difficulty]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", models.DifficultyEasy),
					huh.NewOption("Medium", models.DifficultyMedium),
					huh.NewOption("Hard", models.DifficultyHard),
					huh.NewOption("Heroic", models.DifficultyHeroic),
				).
				Value(&fm.Difficulty),
			huh.NewSelect[models.RecurrenceType]().
				Title("Recurrence").
				Options(
					huh.NewOption("Daily", models.RecurrenceDaily),
					huh.NewOption("Weekly", models.RecurrenceWeekly),
					huh.NewOption("Monthly", models.RecurrenceMonthly),
					huh.NewOption("One-off", models.RecurrenceNone),
				).
				Value(&fm.Recurrence),
			huh.NewInput().
				Title("Weekdays").
				Description("For weekly: comma-separated (mon,wed,fri)").
				Value(&fm.Weekdays),
			huh.NewInput().
				Title("Reminder Time (HH:MM)").
				Description("Leave empty for no reminder").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse("15:04", s); err != nil {
						return fmt.Errorf("invalid time format, use HH:MM")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// challengeOptions builds the template picker: every library entry plus a
// custom slot at index -1.
func challengeOptions() []huh.Option[int] {
	library := engine.ChallengeLibrary()
	opts := make([]huh.Option[int], 0, len(library)+1)
	opts = append(opts, huh.NewOption("Custom challenge", -1))
	for i, tpl := range library {
		label := fmt.Sprintf("%s %s (%d days)", tpl.Icon, tpl.Title, tpl.Duration)
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

// newChallengeForm creates the add-challenge form. The title, length and
// difficulty fields only matter when the custom template is picked.
func newChallengeForm(fm *ChallengeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Template").
				Options(challengeOptions()...).
				Value(&fm.Template),
			huh.NewInput().
				Title("Title").
				Description("For a custom challenge").
				Value(&fm.Title).
				Validate(func(s string) error {
					if fm.Template == -1 && strings.TrimSpace(s) == "" {
						return fmt.Errorf("custom challenges need a title")
					}
					return nil
				}),
			huh.NewInput().
				Title("Length (days)").
				Value(&fm.Days).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("length must be at least one day")
					}
					return nil
				}),
			huh.NewSelect[models.Difficulty]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", models.DifficultyEasy),
					huh.NewOption("Medium", models.DifficultyMedium),
					huh.NewOption("Hard", models.DifficultyHard),
					huh.NewOption("Heroic", models.DifficultyHeroic),
				).
				Value(&fm.Difficulty),
		),
	).WithTheme(huh.ThemeDracula())
}

// habitFromForm turns a completed form into a habit for the engine.
func habitFromForm(fm *HabitFormModel) (models.Habit, error) {
	rule := models.RecurrenceRule{Interval: 1}
	if fm.Recurrence == models.RecurrenceWeekly && strings.TrimSpace(fm.Weekdays) != "" {
		wds, err := parseWeekdays(fm.Weekdays)
		if err != nil {
			return models.Habit{}, err
		}
		rule.WeekdayMask = wds
	}

	icon := strings.TrimSpace(fm.Icon)
	if icon == "" {
		icon = "✨"
	}

	return models.Habit{
		Name:       strings.TrimSpace(fm.Name),
		Icon:       icon,
		Category:   fm.Category,
		Difficulty: fm.Difficulty,
		Time:       strings.TrimSpace(fm.Time),
		Recurrence: fm.Recurrence,
		Rule:       rule,
	}, nil
}

// challengeFromForm turns a completed form into a challenge. Library
// templates can still have their length overridden.
func challengeFromForm(fm *ChallengeFormModel) models.Challenge {
	var ch models.Challenge
	if fm.Template >= 0 {
		library := engine.ChallengeLibrary()
		if fm.Template < len(library) {
			ch = library[fm.Template]
		}
	} else {
		ch = models.Challenge{
			Title:      strings.TrimSpace(fm.Title),
			Icon:       "🏆",
			Color:      "indigo",
			Difficulty: fm.Difficulty,
			Duration:   7,
		}
	}

	if days, err := strconv.Atoi(strings.TrimSpace(fm.Days)); err == nil && days > 0 {
		ch.Duration = days
	}
	return ch
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if len(part) > 3 {
			part = part[:3]
		}
		wd, ok := dayMap[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}
