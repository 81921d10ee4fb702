package engine

import (
	"testing"

	"github.com/lumen-app/lumen/internal/models"
)

func checkLedgerInvariants(t *testing.T, stats models.UserStats) {
	t.Helper()
	if stats.Level < 1 || stats.Level > MaxLevel {
		t.Errorf("level %d out of [1, %d]", stats.Level, MaxLevel)
	}
	if stats.XP < 0 || stats.XP >= LevelThreshold(stats.Level) {
		t.Errorf("xp %d out of [0, %d) at level %d", stats.XP, LevelThreshold(stats.Level), stats.Level)
	}
	if stats.TotalXP < 0 {
		t.Errorf("totalXp %d went negative", stats.TotalXP)
	}
}

func TestApplyXP_SimpleGain(t *testing.T) {
	stats := models.UserStats{Level: 1}

	events := ApplyXP(&stats, 40)

	if stats.XP != 40 || stats.Level != 1 || stats.TotalXP != 40 {
		t.Errorf("got xp=%d level=%d total=%d", stats.XP, stats.Level, stats.TotalXP)
	}
	if len(events) != 1 || events[0].Kind != EventXPGained || events[0].Amount != 40 {
		t.Errorf("expected a single xp_gained(40) event, got %+v", events)
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_SingleLevelUp(t *testing.T) {
	stats := models.UserStats{Level: 1, XP: 90}

	events := ApplyXP(&stats, 20)

	// 110 total at level 1 (threshold 100) rolls into level 2 with 10 left.
	if stats.Level != 2 || stats.XP != 10 {
		t.Errorf("got level=%d xp=%d, want 2/10", stats.Level, stats.XP)
	}
	var ups int
	for _, e := range events {
		if e.Kind == EventLevelUp {
			ups++
			if e.Level != 2 {
				t.Errorf("level-up event carries level %d, want 2", e.Level)
			}
		}
	}
	if ups != 1 {
		t.Errorf("got %d level-up events, want 1", ups)
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_MultiLevelRollover(t *testing.T) {
	stats := models.UserStats{Level: 1}

	// 100 + 200 = 300: clears level 1 and level 2 exactly.
	events := ApplyXP(&stats, 300)

	if stats.Level != 3 || stats.XP != 0 {
		t.Errorf("got level=%d xp=%d, want 3/0", stats.Level, stats.XP)
	}
	var ups []int
	for _, e := range events {
		if e.Kind == EventLevelUp {
			ups = append(ups, e.Level)
		}
	}
	if len(ups) != 2 || ups[0] != 2 || ups[1] != 3 {
		t.Errorf("got level-up sequence %v, want [2 3]", ups)
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_UndoBorrowsFromLevelBelow(t *testing.T) {
	stats := models.UserStats{Level: 2, XP: 5, TotalXP: 105}

	events := ApplyXP(&stats, -15)

	// Drops below zero at level 2, borrows level 1's 100-point band.
	if stats.Level != 1 || stats.XP != 90 {
		t.Errorf("got level=%d xp=%d, want 1/90", stats.Level, stats.XP)
	}
	if stats.TotalXP != 90 {
		t.Errorf("got totalXp=%d, want 90", stats.TotalXP)
	}
	for _, e := range events {
		if e.Kind == EventXPGained {
			t.Error("negative delta must not emit an xp_gained event")
		}
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_FlooredAtLevelOne(t *testing.T) {
	stats := models.UserStats{Level: 1, XP: 10, TotalXP: 10}

	ApplyXP(&stats, -500)

	if stats.Level != 1 || stats.XP != 0 || stats.TotalXP != 0 {
		t.Errorf("got level=%d xp=%d total=%d, want 1/0/0", stats.Level, stats.XP, stats.TotalXP)
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_CappedAtMaxLevel(t *testing.T) {
	stats := models.UserStats{Level: MaxLevel, XP: LevelThreshold(MaxLevel) - 10}

	ApplyXP(&stats, 10_000)

	if stats.Level != MaxLevel {
		t.Errorf("level %d exceeded the cap", stats.Level)
	}
	checkLedgerInvariants(t, stats)
}

func TestApplyXP_InvariantsHoldAcrossSequences(t *testing.T) {
	stats := models.UserStats{Level: 1}
	deltas := []int{15, -15, 250, 40, -500, 10, 99, -1, 1000, -321, 7}

	for _, d := range deltas {
		ApplyXP(&stats, d)
		checkLedgerInvariants(t, stats)
	}
}

func TestXPForDifficulty(t *testing.T) {
	cases := []struct {
		d    models.Difficulty
		want int
	}{
		{models.DifficultyEasy, XPEasy},
		{models.DifficultyMedium, XPMedium},
		{models.DifficultyHard, XPHard},
		{models.DifficultyHeroic, XPHeroic},
		{"", XPMedium}, // unknown falls back to the form default
	}
	for _, c := range cases {
		if got := XPForDifficulty(c.d); got != c.want {
			t.Errorf("XPForDifficulty(%q) = %d, want %d", c.d, got, c.want)
		}
	}
}
