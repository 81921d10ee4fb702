package models

import "time"

// DayFormat is the canonical calendar-date layout used everywhere in lumen.
const DayFormat = "2006-01-02"

type Category string

const (
	CategoryMorning   Category = "morning"
	CategoryAfternoon Category = "afternoon"
	CategoryEvening   Category = "evening"
	CategoryNight     Category = "night"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyHeroic Difficulty = "heroic"
)

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// RecurrenceRule refines a recurrence type. Interval 1 means every cycle,
// 2 means every other cycle, and so on. WeekdayMask narrows weekly habits to
// specific weekdays; DayOfMonth pins monthly habits to a day number.
type RecurrenceRule struct {
	Interval    int            `json:"interval"`
	WeekdayMask []time.Weekday `json:"weekdays,omitempty"`
	DayOfMonth  int            `json:"day_of_month,omitempty"`
}

// Habit is a recurring (or one-off) practice to track.
type Habit struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Category    Category       `json:"category"`
	Difficulty  Difficulty     `json:"difficulty"`
	Time        string         `json:"time,omitempty"`     // HH:MM reminder time
	StartDate   string         `json:"start_date"`         // YYYY-MM-DD, recurrence anchor
	DueDate     string         `json:"due_date,omitempty"` // YYYY-MM-DD, one-off override
	Recurrence  RecurrenceType `json:"recurrence"`
	Rule        RecurrenceRule `json:"recurrence_rule"`

	CompletionHistory []string `json:"completion_history"`
	CurrentStreak     int      `json:"current_streak"`
	BestStreak        int      `json:"best_streak"`

	// Completed caches "today is in CompletionHistory" and is resynced by the
	// daily rollover; CompletionHistory is the authority.
	Completed bool `json:"completed"`

	// NotifiedDate guards against duplicate reminders for the same day.
	NotifiedDate string `json:"notified_date,omitempty"`
}

// CompletedOn reports whether day (YYYY-MM-DD) is in the completion history.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletionHistory {
		if d == day {
			return true
		}
	}
	return false
}
