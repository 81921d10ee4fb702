package engine

import (
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

// IsDueOn reports whether the habit is scheduled on the given day
// (YYYY-MM-DD). It is pure and works for past and future dates alike, so it
// serves both "due today" filtering and calendar-grid rendering.
//
// A dueDate matching the day is always due, regardless of recurrence.
// Monthly habits anchored on a day number that a month lacks (say the 31st
// in February) are skipped for that month; the anchor day is never clamped
// to the end of a shorter month.
func IsDueOn(h models.Habit, day string) bool {
	if h.DueDate != "" && h.DueDate == day {
		return true
	}
	if h.Recurrence == models.RecurrenceNone || h.Recurrence == "" {
		return false
	}

	target, err := time.Parse(models.DayFormat, day)
	if err != nil {
		return false
	}
	anchor := h.StartDate
	if anchor == "" {
		anchor = h.DueDate
	}
	if anchor == "" {
		anchor = day
	}
	start, err := time.Parse(models.DayFormat, anchor)
	if err != nil {
		return false
	}

	// Both times are midnight UTC, so this is exact whole days.
	days := int(target.Sub(start).Hours() / 24)
	if days < 0 {
		return false
	}

	interval := h.Rule.Interval
	if interval < 1 {
		interval = 1
	}

	switch h.Recurrence {
	case models.RecurrenceDaily:
		return days%interval == 0

	case models.RecurrenceWeekly:
		if (days/7)%interval != 0 {
			return false
		}
		if len(h.Rule.WeekdayMask) == 0 {
			return true
		}
		for _, wd := range h.Rule.WeekdayMask {
			if wd == target.Weekday() {
				return true
			}
		}
		return false

	case models.RecurrenceMonthly:
		months := (target.Year()-start.Year())*12 + int(target.Month()) - int(start.Month())
		if months < 0 || months%interval != 0 {
			return false
		}
		want := h.Rule.DayOfMonth
		if want == 0 {
			want = start.Day()
		}
		return target.Day() == want
	}

	return false
}
