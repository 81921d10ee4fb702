package engine

import (
	"testing"
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

func TestFocus_WallClockSurvivesRestart(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := New(State{Stats: models.UserStats{Level: 1}})
	svc.SetClock(func() time.Time { return start })

	session, ok := svc.StartFocus(25)
	if !ok {
		t.Fatal("start failed")
	}
	if session.DurationMin != 25 {
		t.Errorf("duration = %d, want 25", session.DurationMin)
	}

	// Simulate a process restart: rebuild the service from persisted state.
	svc2 := New(svc.State())
	svc2.SetClock(func() time.Time { return start.Add(10 * time.Minute) })

	remaining, active := svc2.FocusRemaining()
	if !active {
		t.Fatal("session lost across restart")
	}
	if remaining != 15*time.Minute {
		t.Errorf("remaining = %v, want 15m", remaining)
	}
}

func TestFocus_CompleteBeforeEndIsNoOp(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := New(State{Stats: models.UserStats{Level: 1}})
	svc.SetClock(func() time.Time { return now })
	svc.StartFocus(25)

	if events := svc.CompleteFocus(); events != nil {
		t.Errorf("early completion emitted %+v", events)
	}
	if got := svc.Stats().TotalFocusMinutes; got != 0 {
		t.Errorf("minutes credited early: %d", got)
	}
}

func TestFocus_CompleteAfterEndCreditsMinutes(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := New(State{Stats: models.UserStats{Level: 1}})
	svc.SetClock(func() time.Time { return now })
	svc.StartFocus(25)

	svc.SetClock(func() time.Time { return now.Add(26 * time.Minute) })
	svc.CompleteFocus()

	stats := svc.Stats()
	if stats.TotalFocusMinutes != 25 {
		t.Errorf("totalFocusMinutes = %d, want 25", stats.TotalFocusMinutes)
	}
	if stats.ActiveFocus != nil {
		t.Error("session should be cleared after completion")
	}

	// A second complete must not double-credit.
	svc.CompleteFocus()
	if got := svc.Stats().TotalFocusMinutes; got != 25 {
		t.Errorf("double credit: %d", got)
	}
}

func TestFocus_StartWhileRunningIsNoOp(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := New(State{Stats: models.UserStats{Level: 1}})
	svc.SetClock(func() time.Time { return now })

	first, _ := svc.StartFocus(25)
	second, ok := svc.StartFocus(50)

	if ok {
		t.Error("starting over a running session should be rejected")
	}
	if second.EndTime != first.EndTime {
		t.Error("rejected start should return the running session")
	}
}

func TestFocus_ExpiredSessionCanBeReplaced(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := New(State{Stats: models.UserStats{Level: 1}})
	svc.SetClock(func() time.Time { return now })
	svc.StartFocus(25)

	svc.SetClock(func() time.Time { return now.Add(time.Hour) })
	if _, ok := svc.StartFocus(25); !ok {
		t.Error("an expired session should not block a new one")
	}
}
