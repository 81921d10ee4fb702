package engine

import (
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

// Reminder tells the caller a habit's scheduled time has arrived.
type Reminder struct {
	HabitID string
	Name    string
	Icon    string
	Time    string
}

// DueReminders scans for habits whose reminder time matches the given
// clock minute: due today, not yet completed, not yet notified today. Each
// match is stamped with today's date before being returned, so a habit
// fires at most one reminder per day no matter how often the scan runs.
// The stamp goes through the same single-threaded update path as every
// other mutation; callers persist state afterwards like any other change.
func (s *Service) DueReminders(now time.Time) []Reminder {
	day := now.Format(models.DayFormat)
	clock := now.Format("15:04")

	var due []Reminder
	for i := range s.habits {
		h := &s.habits[i]
		if h.Time != clock || h.NotifiedDate == day || h.CompletedOn(day) {
			continue
		}
		if !IsDueOn(*h, day) {
			continue
		}
		h.NotifiedDate = day
		due = append(due, Reminder{HabitID: h.ID, Name: h.Name, Icon: h.Icon, Time: h.Time})
	}
	return due
}
