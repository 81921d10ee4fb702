package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
	"github.com/lumen-app/lumen/internal/storage"
)

func TestParseWeekdays(t *testing.T) {
	wds, err := parseWeekdays("mon, Wednesday,5")
	if err != nil {
		t.Fatalf("parseWeekdays: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(wds) != len(want) {
		t.Fatalf("got %v, want %v", wds, want)
	}
	for i := range want {
		if wds[i] != want[i] {
			t.Errorf("weekday %d: got %v, want %v", i, wds[i], want[i])
		}
	}

	if _, err := parseWeekdays("funday"); err == nil {
		t.Error("expected error for invalid weekday")
	}
	if _, err := parseWeekdays("7"); err == nil {
		t.Error("expected error for out-of-range weekday number")
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := parseDifficulty("Heroic")
	if err != nil || d != models.DifficultyHeroic {
		t.Errorf("got %v, %v", d, err)
	}
	if d, _ := parseDifficulty(""); d != models.DifficultyMedium {
		t.Errorf("empty difficulty should default to medium, got %v", d)
	}
	if _, err := parseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestFormatRecurrence(t *testing.T) {
	cases := []struct {
		habit models.Habit
		want  string
	}{
		{models.Habit{Recurrence: models.RecurrenceDaily, Rule: models.RecurrenceRule{Interval: 1}}, "daily"},
		{models.Habit{Recurrence: models.RecurrenceDaily, Rule: models.RecurrenceRule{Interval: 3}}, "every 3 days"},
		{models.Habit{Recurrence: models.RecurrenceWeekly, Rule: models.RecurrenceRule{Interval: 1, WeekdayMask: []time.Weekday{time.Monday, time.Friday}}}, "weekly on Mon,Fri"},
		{models.Habit{Recurrence: models.RecurrenceMonthly, Rule: models.RecurrenceRule{DayOfMonth: 15}}, "monthly on day 15"},
		{models.Habit{Recurrence: models.RecurrenceNone, DueDate: "2024-06-01"}, "once on 2024-06-01"},
	}
	for _, c := range cases {
		if got := formatRecurrence(c.habit); got != c.want {
			t.Errorf("formatRecurrence(%v) = %q, want %q", c.habit.Recurrence, got, c.want)
		}
	}
}

func testContext(t *testing.T) *Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumen.json")
	return &Context{Store: storage.NewJSONStore(path), Tips: engine.StaticTips{}}
}

func TestInitAndHabitAddFlow(t *testing.T) {
	ctx := testContext(t)

	init := InitCmd{Empty: true}
	if err := init.Run(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	add := HabitAddCmd{
		Name:       "Evening reading",
		Icon:       "📖",
		Category:   "evening",
		Difficulty: "hard",
		Recurrence: "weekly",
		Interval:   1,
		Weekdays:   "mon,thu",
	}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("habit add: %v", err)
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if len(state.Habits) != 1 {
		t.Fatalf("got %d habits, want 1", len(state.Habits))
	}
	h := state.Habits[0]
	if h.Name != "Evening reading" || h.Difficulty != models.DifficultyHard {
		t.Errorf("habit fields wrong: %+v", h)
	}
	if len(h.Rule.WeekdayMask) != 2 {
		t.Errorf("weekday mask not stored: %v", h.Rule.WeekdayMask)
	}

	// The first command run of the day also grants the login bonus.
	if state.Stats.TotalXP == 0 {
		t.Error("expected login bonus XP after first command")
	}
	if state.Stats.LastLoginDate == "" {
		t.Error("login date not stamped")
	}
}

func TestHabitDoneTogglesAndFeeds(t *testing.T) {
	ctx := testContext(t)
	if err := (&InitCmd{Empty: true}).Run(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := (&HabitAddCmd{Name: "Meditate", Recurrence: "daily", Interval: 1, Difficulty: "medium", Category: "morning"}).Run(ctx); err != nil {
		t.Fatalf("habit add: %v", err)
	}

	done := HabitDoneCmd{Habit: "Meditate"}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("habit done: %v", err)
	}

	state, err := ctx.Store.GetState()
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Stats.TotalHabitsCompleted != 1 {
		t.Errorf("completed counter = %d, want 1", state.Stats.TotalHabitsCompleted)
	}
	if state.Habits[0].CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", state.Habits[0].CurrentStreak)
	}

	entries, err := ctx.Store.GetNotifications()
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected feed entries after completing a habit")
	}

	// Toggling again undoes the completion.
	if err := done.Run(ctx); err != nil {
		t.Fatalf("habit done (undo): %v", err)
	}
	state, _ = ctx.Store.GetState()
	if state.Stats.TotalHabitsCompleted != 0 {
		t.Errorf("completed counter after undo = %d, want 0", state.Stats.TotalHabitsCompleted)
	}
}

func TestChallengeStartAndCheckin(t *testing.T) {
	ctx := testContext(t)
	if err := (&InitCmd{Empty: true}).Run(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := (&ChallengeStartCmd{Number: 1}).Run(ctx); err != nil {
		t.Fatalf("challenge start: %v", err)
	}
	state, _ := ctx.Store.GetState()
	if len(state.Challenges) != 1 {
		t.Fatalf("got %d challenges, want 1", len(state.Challenges))
	}

	checkin := ChallengeCheckinCmd{Challenge: state.Challenges[0].Title}
	if err := checkin.Run(ctx); err != nil {
		t.Fatalf("challenge checkin: %v", err)
	}
	state, _ = ctx.Store.GetState()
	if state.Challenges[0].CurrentDay != 1 {
		t.Errorf("current day = %d, want 1", state.Challenges[0].CurrentDay)
	}

	// Same-day second check-in stays at day 1.
	if err := checkin.Run(ctx); err != nil {
		t.Fatalf("second checkin: %v", err)
	}
	state, _ = ctx.Store.GetState()
	if state.Challenges[0].CurrentDay != 1 {
		t.Errorf("current day after same-day checkin = %d, want 1", state.Challenges[0].CurrentDay)
	}
}

func TestMoodCmdLogsOncePerDay(t *testing.T) {
	ctx := testContext(t)
	if err := (&InitCmd{Empty: true}).Run(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	mood := MoodCmd{Mood: 4, Energy: 2}
	if err := mood.Run(ctx); err != nil {
		t.Fatalf("mood: %v", err)
	}
	if err := mood.Run(ctx); err != nil {
		t.Fatalf("mood (second): %v", err)
	}

	state, _ := ctx.Store.GetState()
	if len(state.Stats.MoodLogs) != 1 {
		t.Errorf("got %d mood logs, want 1", len(state.Stats.MoodLogs))
	}
}

func TestResolveHabitAmbiguity(t *testing.T) {
	svc := engine.New(engine.State{
		Habits: []models.Habit{
			{ID: "aaa1", Name: "Run"},
			{ID: "aaa2", Name: "Read"},
		},
		Stats: models.UserStats{Level: 1},
	})

	if _, err := resolveHabit(svc, "aaa"); err == nil {
		t.Error("expected ambiguity error for shared prefix")
	}
	h, err := resolveHabit(svc, "aaa1")
	if err != nil || h.Name != "Run" {
		t.Errorf("full id lookup failed: %v, %v", h, err)
	}
	h, err = resolveHabit(svc, "read")
	if err != nil || h.ID != "aaa2" {
		t.Errorf("name lookup failed: %v, %v", h, err)
	}
	if _, err := resolveHabit(svc, "swim"); err == nil {
		t.Error("expected error for unknown habit")
	}
}
