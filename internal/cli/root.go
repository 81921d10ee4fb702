package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lumen-app/lumen/internal/backup"
	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/feed"
	"github.com/lumen-app/lumen/internal/models"
	"github.com/lumen-app/lumen/internal/storage"
)

type Context struct {
	Store storage.Provider
	Tips  engine.TipProvider
}

// openService loads the stored state into an engine service and runs the
// daily rollover plus the login bonus. The returned events are pending feed
// entries; pass them to save so they land in the notification feed.
func (ctx *Context) openService() (*engine.Service, []engine.Event, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, nil, err
	}
	state, err := ctx.Store.GetState()
	if err != nil {
		return nil, nil, err
	}

	svc := engine.New(state)
	svc.RefreshForNewDay(svc.Today())
	events := svc.CheckDailyLogin(svc.Today())
	return svc, events, nil
}

// save persists the service state and folds any pending events into the
// notification feed.
func (ctx *Context) save(svc *engine.Service, events []engine.Event) error {
	if len(events) > 0 {
		entries, err := ctx.Store.GetNotifications()
		if err != nil {
			return err
		}
		entries = feed.Prepend(entries, feed.FromEvents(svc.Titles(), events, time.Now()))
		if err := ctx.Store.SaveNotifications(entries); err != nil {
			return err
		}
	}
	return ctx.Store.SaveState(svc.State())
}

// PerformAutomaticBackup backs the storage file up on TUI startup. Failures
// are warnings only; a broken backup dir must not block the app.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

func parseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

func parseDifficulty(s string) (models.Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return models.DifficultyEasy, nil
	case "medium", "":
		return models.DifficultyMedium, nil
	case "hard":
		return models.DifficultyHard, nil
	case "heroic":
		return models.DifficultyHeroic, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %s (easy|medium|hard|heroic)", s)
	}
}

func parseCategory(s string) (models.Category, error) {
	switch strings.ToLower(s) {
	case "morning", "":
		return models.CategoryMorning, nil
	case "afternoon":
		return models.CategoryAfternoon, nil
	case "evening":
		return models.CategoryEvening, nil
	case "night":
		return models.CategoryNight, nil
	default:
		return "", fmt.Errorf("invalid category: %s (morning|afternoon|evening|night)", s)
	}
}

func formatRecurrence(h models.Habit) string {
	switch h.Recurrence {
	case models.RecurrenceDaily:
		if h.Rule.Interval > 1 {
			return fmt.Sprintf("every %d days", h.Rule.Interval)
		}
		return "daily"
	case models.RecurrenceWeekly:
		base := "weekly"
		if h.Rule.Interval > 1 {
			base = fmt.Sprintf("every %d weeks", h.Rule.Interval)
		}
		if len(h.Rule.WeekdayMask) > 0 {
			var days []string
			for _, wd := range h.Rule.WeekdayMask {
				days = append(days, wd.String()[:3])
			}
			return fmt.Sprintf("%s on %s", base, strings.Join(days, ","))
		}
		return base
	case models.RecurrenceMonthly:
		if h.Rule.DayOfMonth > 0 {
			return fmt.Sprintf("monthly on day %d", h.Rule.DayOfMonth)
		}
		return "monthly"
	case models.RecurrenceNone:
		if h.DueDate != "" {
			return "once on " + h.DueDate
		}
		return "one-off"
	default:
		return "unknown"
	}
}

// resolveHabit finds a habit by full id, unambiguous id prefix, or exact
// name (case-insensitive).
func resolveHabit(svc *engine.Service, ref string) (models.Habit, error) {
	if h, ok := svc.Habit(ref); ok {
		return h, nil
	}

	var matches []models.Habit
	for _, h := range svc.Habits() {
		if strings.HasPrefix(h.ID, ref) || strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("%q is ambiguous (%d habits match)", ref, len(matches))
	}
}

// resolveChallenge finds a challenge by full id, unambiguous id prefix, or
// exact title (case-insensitive).
func resolveChallenge(svc *engine.Service, ref string) (models.Challenge, error) {
	if c, ok := svc.Challenge(ref); ok {
		return c, nil
	}

	var matches []models.Challenge
	for _, c := range svc.Challenges() {
		if strings.HasPrefix(c.ID, ref) || strings.EqualFold(c.Title, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return models.Challenge{}, fmt.Errorf("no challenge matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Challenge{}, fmt.Errorf("%q is ambiguous (%d challenges match)", ref, len(matches))
	}
}
