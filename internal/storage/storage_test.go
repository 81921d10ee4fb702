package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

func sampleState() engine.State {
	return engine.State{
		Habits: []models.Habit{
			{
				ID:         "h1",
				Name:       "Meditate",
				Icon:       "🧘",
				Category:   models.CategoryMorning,
				Difficulty: models.DifficultyEasy,
				Time:       "07:00",
				StartDate:  "2024-01-01",
				Recurrence: models.RecurrenceWeekly,
				Rule: models.RecurrenceRule{
					Interval:    2,
					WeekdayMask: []time.Weekday{time.Monday, time.Thursday},
				},
				CompletionHistory: []string{"2024-01-01", "2024-01-04"},
				CurrentStreak:     1,
				BestStreak:        2,
				Completed:         true,
				NotifiedDate:      "2024-01-04",
			},
		},
		Challenges: []models.Challenge{
			{
				ID:                "c1",
				Title:             "Hydration",
				Difficulty:        models.DifficultyMedium,
				Duration:          30,
				CurrentDay:        3,
				LastCompletedDate: "2024-01-04",
			},
		},
		Stats: models.UserStats{
			XP:                   45,
			Level:                3,
			TotalXP:              345,
			Streak:               4,
			LastLoginDate:        "2024-01-04",
			UnlockedTitleIDs:     []string{"level-1", "streak-3"},
			SelectedTitleID:      "streak-3",
			TotalHabitsCompleted: 12,
			MoodLogs:             []models.MoodLog{{Date: "2024-01-04", Mood: 4, Energy: 3}},
		},
	}
}

func checkRoundTrip(t *testing.T, store Provider) {
	t.Helper()

	want := sampleState()
	if err := store.Init(want); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer store.Close()

	got, err := store.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}

	if len(got.Habits) != 1 {
		t.Fatalf("got %d habits, want 1", len(got.Habits))
	}
	h := got.Habits[0]
	if h.ID != "h1" || h.Recurrence != models.RecurrenceWeekly || h.Rule.Interval != 2 {
		t.Errorf("habit scheduling fields lost: %+v", h)
	}
	if len(h.Rule.WeekdayMask) != 2 || h.Rule.WeekdayMask[0] != time.Monday {
		t.Errorf("weekday mask lost: %v", h.Rule.WeekdayMask)
	}
	if len(h.CompletionHistory) != 2 || h.CompletionHistory[0] != "2024-01-01" {
		t.Errorf("completion history lost: %v", h.CompletionHistory)
	}
	if h.BestStreak != 2 || !h.Completed || h.NotifiedDate != "2024-01-04" {
		t.Errorf("derived fields lost: %+v", h)
	}

	if len(got.Challenges) != 1 || got.Challenges[0].CurrentDay != 3 {
		t.Errorf("challenge lost: %+v", got.Challenges)
	}

	s := got.Stats
	if s.Level != 3 || s.XP != 45 || s.TotalXP != 345 {
		t.Errorf("ledger fields lost: %+v", s)
	}
	if len(s.UnlockedTitleIDs) != 2 || s.SelectedTitleID != "streak-3" {
		t.Errorf("title fields lost: %+v", s)
	}
	if len(s.MoodLogs) != 1 || s.MoodLogs[0].Mood != 4 {
		t.Errorf("mood logs lost: %+v", s.MoodLogs)
	}

	// Mutate and save again.
	got.Stats.TotalHabitsCompleted = 13
	got.Habits[0].CompletionHistory = append(got.Habits[0].CompletionHistory, "2024-01-05")
	if err := store.SaveState(got); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	reread, err := store.GetState()
	if err != nil {
		t.Fatalf("GetState after save: %v", err)
	}
	if reread.Stats.TotalHabitsCompleted != 13 {
		t.Error("stats mutation not persisted")
	}
	if len(reread.Habits[0].CompletionHistory) != 3 {
		t.Error("history mutation not persisted")
	}
}

func checkNotifications(t *testing.T, store Provider) {
	t.Helper()

	if err := store.Init(engine.State{Stats: models.UserStats{Level: 1}}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer store.Close()

	entries := []models.Notification{
		{ID: "n1", Title: "Ascension", Message: "Level 2 reached", Type: models.NotificationLevel, Timestamp: 200},
		{ID: "n2", Title: "XP Gained", Message: "+15 XP", Type: models.NotificationXP, Timestamp: 100, Read: true},
	}
	if err := store.SaveNotifications(entries); err != nil {
		t.Fatalf("SaveNotifications: %v", err)
	}

	got, err := store.GetNotifications()
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].ID != "n1" {
		t.Errorf("expected newest-first ordering, got %q first", got[0].ID)
	}
	if !got[1].Read {
		t.Error("read flag lost")
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	checkRoundTrip(t, NewJSONStore(filepath.Join(t.TempDir(), "lumen.json")))
}

func TestJSONStore_Notifications(t *testing.T) {
	checkNotifications(t, NewJSONStore(filepath.Join(t.TempDir(), "lumen.json")))
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	checkRoundTrip(t, NewSQLiteStore(filepath.Join(t.TempDir(), "lumen.db")))
}

func TestSQLiteStore_Notifications(t *testing.T) {
	checkNotifications(t, NewSQLiteStore(filepath.Join(t.TempDir(), "lumen.db")))
}

func TestJSONStore_LoadWithoutInitFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("loading uninitialized storage should fail")
	}
}

func TestSQLiteStore_DoubleInitFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.db")
	store := NewSQLiteStore(path)
	if err := store.Init(engine.State{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	store.Close()

	if err := NewSQLiteStore(path).Init(engine.State{}); err == nil {
		t.Error("second init over an existing database should fail")
	}
}
