package models

import "time"

// MoodLog is a single day's mood/energy record. Both scales run 1–5.
type MoodLog struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
}

// FocusSession is a running focus-timer session. Only the end timestamp is
// stored; remaining time is always recomputed from the wall clock, so a
// restart mid-session loses nothing.
type FocusSession struct {
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
}

// UserStats is the single cumulative progression record for the user.
type UserStats struct {
	XP      int `json:"xp"`       // within the current level
	Level   int `json:"level"`    // 1..engine.MaxLevel
	TotalXP int `json:"total_xp"` // lifetime, clamped at 0

	Streak          int    `json:"streak"` // consecutive-day login streak
	LastLoginDate   string `json:"last_login_date,omitempty"`
	LastRefreshDate string `json:"last_refresh_date,omitempty"`

	UnlockedTitleIDs []string `json:"unlocked_title_ids"`
	SelectedTitleID  string   `json:"selected_title_id,omitempty"`

	TotalHabitsCompleted     int `json:"total_habits_completed"`
	TotalChallengesCompleted int `json:"total_challenges_completed"`
	TotalFocusMinutes        int `json:"total_focus_minutes"`

	MoodLogs []MoodLog `json:"mood_logs,omitempty"`

	ActiveFocus *FocusSession `json:"active_focus,omitempty"`
}

// HasTitle reports whether the title id has been unlocked.
func (s UserStats) HasTitle(id string) bool {
	for _, t := range s.UnlockedTitleIDs {
		if t == id {
			return true
		}
	}
	return false
}

// MoodLoggedOn reports whether a mood entry already exists for the day.
func (s UserStats) MoodLoggedOn(day string) bool {
	for _, l := range s.MoodLogs {
		if l.Date == day {
			return true
		}
	}
	return false
}
