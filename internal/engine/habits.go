package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumen-app/lumen/internal/models"
)

// Habits returns all habits in insertion order.
func (s *Service) Habits() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Habit looks a habit up by id.
func (s *Service) Habit(id string) (models.Habit, bool) {
	if i := s.habitIndex(id); i >= 0 {
		return s.habits[i], true
	}
	return models.Habit{}, false
}

// DueOn filters habits scheduled on the given day.
func (s *Service) DueOn(day string) []models.Habit {
	var due []models.Habit
	for _, h := range s.habits {
		if IsDueOn(h, day) {
			due = append(due, h)
		}
	}
	return due
}

// AddHabit stores a new habit. A missing id, start date or difficulty gets
// a sensible default; history and streaks start empty.
func (s *Service) AddHabit(h models.Habit) models.Habit {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.StartDate == "" {
		h.StartDate = s.Today()
	}
	if h.Difficulty == "" {
		h.Difficulty = models.DifficultyMedium
	}
	h.CompletionHistory = nil
	h.CurrentStreak = 0
	h.BestStreak = 0
	h.Completed = false
	s.habits = append(s.habits, h)
	return h
}

// UpdateHabit replaces the stored habit with the same id. Unknown ids are
// ignored.
func (s *Service) UpdateHabit(h models.Habit) bool {
	i := s.habitIndex(h.ID)
	if i < 0 {
		return false
	}
	s.habits[i] = h
	return true
}

// DeleteHabit removes the habit and discards its history.
func (s *Service) DeleteHabit(id string) bool {
	i := s.habitIndex(id)
	if i < 0 {
		return false
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	return true
}

// DuplicateHabit copies a habit's scheduling fields under a fresh id with a
// clean slate: empty history, zero streaks, not completed.
func (s *Service) DuplicateHabit(id string) (models.Habit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return models.Habit{}, false
	}
	dup := s.habits[i]
	dup.ID = uuid.New().String()
	dup.CompletionHistory = nil
	dup.CurrentStreak = 0
	dup.BestStreak = 0
	dup.Completed = false
	dup.NotifiedDate = ""
	s.habits = append(s.habits, dup)
	return dup, true
}

// ToggleHabit marks the habit complete on the day, or undoes the completion
// if the day is already in its history. Marking awards difficulty XP and
// bumps the completed counter; undoing reverses both, so toggling twice
// lands back on the starting state (best streak excepted, which never
// decreases). Future dates and unknown ids are silent no-ops.
func (s *Service) ToggleHabit(id, day string) []Event {
	i := s.habitIndex(id)
	if i < 0 {
		return nil
	}
	h := &s.habits[i]

	var events []Event
	if h.CompletedOn(day) {
		h.CompletionHistory = removeDay(h.CompletionHistory, day)
		ApplyXP(&s.stats, -XPForDifficulty(h.Difficulty))
		if s.stats.TotalHabitsCompleted > 0 {
			s.stats.TotalHabitsCompleted--
		}
	} else {
		if day > s.Today() {
			return nil
		}
		h.CompletionHistory = append(h.CompletionHistory, day)
		events = ApplyXP(&s.stats, XPForDifficulty(h.Difficulty))
		s.stats.TotalHabitsCompleted++
	}

	streak := ComputeStreak(h.CompletionHistory, s.Today())
	h.CurrentStreak = streak
	if streak > h.BestStreak {
		h.BestStreak = streak
	}
	h.Completed = h.CompletedOn(s.Today())

	return append(events, s.unlockNewTitles()...)
}

// RefreshForNewDay resyncs every habit's transient completed flag with its
// history for the given day. Runs at most once per calendar day (guarded by
// lastRefreshDate) and never mutates completion history. Handles the app
// being reopened after midnight.
func (s *Service) RefreshForNewDay(today string) bool {
	if s.stats.LastRefreshDate == today {
		return false
	}
	for i := range s.habits {
		s.habits[i].Completed = s.habits[i].CompletedOn(today)
	}
	s.stats.LastRefreshDate = today
	return true
}

// CheckDailyLogin grants the once-a-day login bonus. A login the day after
// the previous one extends the login streak; any gap resets it to 1. The
// login streak is independent of any habit's streak.
func (s *Service) CheckDailyLogin(today string) []Event {
	if s.stats.LastLoginDate == today {
		return nil
	}

	newStreak := 1
	if s.stats.LastLoginDate != "" {
		prev, err := time.Parse(models.DayFormat, s.stats.LastLoginDate)
		cur, err2 := time.Parse(models.DayFormat, today)
		if err == nil && err2 == nil && cur.Sub(prev) == 24*time.Hour {
			newStreak = s.stats.Streak + 1
		}
	}

	s.stats.Streak = newStreak
	s.stats.LastLoginDate = today
	events := ApplyXP(&s.stats, LoginBaseXP+newStreak*LoginStreakXP)
	return append(events, s.unlockNewTitles()...)
}

func (s *Service) habitIndex(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func removeDay(history []string, day string) []string {
	out := history[:0]
	for _, d := range history {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}
