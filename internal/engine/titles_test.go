package engine

import (
	"testing"

	"github.com/lumen-app/lumen/internal/models"
)

func TestDefaultTitles_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, title := range DefaultTitles() {
		if seen[title.ID] {
			t.Errorf("duplicate title id %q", title.ID)
		}
		seen[title.ID] = true
	}
}

func TestConditionMet(t *testing.T) {
	stats := models.UserStats{
		Level:                7,
		Streak:               4,
		TotalHabitsCompleted: 12,
		TotalFocusMinutes:    90,
	}

	cases := []struct {
		cond models.TitleCondition
		want bool
	}{
		{models.TitleCondition{Kind: models.ConditionLevelAtLeast, Threshold: 5}, true},
		{models.TitleCondition{Kind: models.ConditionLevelAtLeast, Threshold: 10}, false},
		{models.TitleCondition{Kind: models.ConditionStreakAtLeast, Threshold: 3}, true},
		{models.TitleCondition{Kind: models.ConditionStreakAtLeast, Threshold: 7}, false},
		{models.TitleCondition{Kind: models.ConditionHabitsCompletedAtLeast, Threshold: 10}, true},
		{models.TitleCondition{Kind: models.ConditionFocusMinutesAtLeast, Threshold: 100}, false},
		{models.TitleCondition{Kind: "unknown", Threshold: 0}, false},
	}
	for _, c := range cases {
		if got := ConditionMet(c.cond, stats); got != c.want {
			t.Errorf("ConditionMet(%+v) = %v, want %v", c.cond, got, c.want)
		}
	}
}

func TestEvaluateTitles_ReportsOnlyNewUnlocks(t *testing.T) {
	catalog := DefaultTitles()
	stats := models.UserStats{Level: 5, UnlockedTitleIDs: []string{"level-1"}}

	first := EvaluateTitles(catalog, stats)

	found := false
	for _, id := range first {
		if id == "level-1" {
			t.Error("already-unlocked title re-reported")
		}
		if id == "level-5" {
			found = true
		}
	}
	if !found {
		t.Fatal("level-5 should unlock at level 5")
	}

	// Record the unlocks; identical stats must then yield nothing.
	stats.UnlockedTitleIDs = append(stats.UnlockedTitleIDs, first...)
	if again := EvaluateTitles(catalog, stats); len(again) != 0 {
		t.Errorf("re-evaluation with unchanged stats unlocked %v", again)
	}
}

func TestSelectTitle_RejectsLocked(t *testing.T) {
	svc := New(State{Stats: models.UserStats{Level: 1}})

	if svc.SelectTitle("streak-365") {
		t.Error("selecting a locked title must be rejected")
	}
	if got := svc.Stats().SelectedTitleID; got != "level-1" {
		t.Errorf("selected title changed to %q on a rejected select", got)
	}

	if !svc.SelectTitle("level-1") {
		t.Error("selecting an unlocked title should succeed")
	}
}
