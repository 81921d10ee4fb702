package engine

import "testing"

func TestComputeStreak_EmptyHistory(t *testing.T) {
	if got := ComputeStreak(nil, "2024-03-10"); got != 0 {
		t.Errorf("empty history: got %d, want 0", got)
	}
}

func TestComputeStreak_RunEndingToday(t *testing.T) {
	history := []string{"2024-03-08", "2024-03-09", "2024-03-10"}
	if got := ComputeStreak(history, "2024-03-10"); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestComputeStreak_RunEndingYesterdayStillCounts(t *testing.T) {
	history := []string{"2024-03-08", "2024-03-09"}
	if got := ComputeStreak(history, "2024-03-10"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestComputeStreak_StaleHistoryIsBroken(t *testing.T) {
	// Most recent completion is two days back: broken, checked lazily.
	history := []string{"2024-03-07", "2024-03-08"}
	if got := ComputeStreak(history, "2024-03-10"); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestComputeStreak_GapStopsTheWalk(t *testing.T) {
	history := []string{"2024-03-05", "2024-03-06", "2024-03-09", "2024-03-10"}
	if got := ComputeStreak(history, "2024-03-10"); got != 2 {
		t.Errorf("gap on 03-07/03-08: got %d, want 2", got)
	}
}

func TestComputeStreak_UnorderedHistory(t *testing.T) {
	history := []string{"2024-03-10", "2024-03-08", "2024-03-09"}
	if got := ComputeStreak(history, "2024-03-10"); got != 3 {
		t.Errorf("history order should not matter: got %d, want 3", got)
	}
}

func TestComputeStreak_MonthBoundary(t *testing.T) {
	history := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if got := ComputeStreak(history, "2024-03-01"); got != 3 {
		t.Errorf("leap-year month boundary: got %d, want 3", got)
	}
}
