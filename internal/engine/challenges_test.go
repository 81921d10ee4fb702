package engine

import (
	"testing"

	"github.com/lumen-app/lumen/internal/models"
)

func threeDayChallenge() models.Challenge {
	return models.Challenge{
		ID:         "c1",
		Title:      "Cold Showers",
		Difficulty: models.DifficultyMedium,
		Duration:   3,
	}
}

func TestCheckInChallenge_FullRun(t *testing.T) {
	svc := testService(t, "2024-03-10", State{
		Challenges: []models.Challenge{threeDayChallenge()},
	})

	svc.CheckInChallenge("c1", "2024-03-10")
	svc.CheckInChallenge("c1", "2024-03-11")
	events := svc.CheckInChallenge("c1", "2024-03-12")

	c, _ := svc.Challenge("c1")
	if c.CurrentDay != 3 || !c.Finished() {
		t.Errorf("currentDay = %d, want 3 (finished)", c.CurrentDay)
	}
	if got := svc.Stats().TotalChallengesCompleted; got != 1 {
		t.Errorf("totalChallengesCompleted = %d, want 1", got)
	}

	var complete, bonus bool
	for _, e := range events {
		if e.Kind == EventChallengeComplete && e.ChallengeID == "c1" {
			complete = true
		}
		if e.Kind == EventXPGained && e.Amount == XPChallengeBonus {
			bonus = true
		}
	}
	if !complete || !bonus {
		t.Errorf("final check-in should emit completion and bonus, got %+v", events)
	}

	// Expected XP: 3 daily awards plus the completion bonus.
	want := 3*XPMedium + XPChallengeBonus
	if got := svc.Stats().TotalXP; got != want {
		t.Errorf("totalXp = %d, want %d", got, want)
	}
}

func TestCheckInChallenge_FourthCheckInIsNoOp(t *testing.T) {
	svc := testService(t, "2024-03-10", State{
		Challenges: []models.Challenge{threeDayChallenge()},
	})
	svc.CheckInChallenge("c1", "2024-03-10")
	svc.CheckInChallenge("c1", "2024-03-11")
	svc.CheckInChallenge("c1", "2024-03-12")

	if events := svc.CheckInChallenge("c1", "2024-03-13"); events != nil {
		t.Errorf("check-in on a finished challenge emitted %+v", events)
	}
	c, _ := svc.Challenge("c1")
	if c.CurrentDay != 3 {
		t.Errorf("currentDay = %d, want 3", c.CurrentDay)
	}
}

func TestCheckInChallenge_SameDayTwiceIsNoOp(t *testing.T) {
	svc := testService(t, "2024-03-10", State{
		Challenges: []models.Challenge{threeDayChallenge()},
	})

	svc.CheckInChallenge("c1", "2024-03-10")
	if events := svc.CheckInChallenge("c1", "2024-03-10"); events != nil {
		t.Errorf("double check-in emitted %+v", events)
	}

	c, _ := svc.Challenge("c1")
	if c.CurrentDay != 1 {
		t.Errorf("currentDay = %d, want 1", c.CurrentDay)
	}
}

func TestCheckInChallenge_EmitsDayEvent(t *testing.T) {
	svc := testService(t, "2024-03-10", State{
		Challenges: []models.Challenge{threeDayChallenge()},
	})

	events := svc.CheckInChallenge("c1", "2024-03-10")

	if len(events) == 0 || events[0].Kind != EventChallengeDay || events[0].Day != 1 {
		t.Errorf("expected leading challenge_day(1) event, got %+v", events)
	}
}

func TestAddChallenge_StartsAtDayZero(t *testing.T) {
	svc := testService(t, "2024-03-10", State{})

	c := svc.AddChallenge(models.Challenge{Title: "Journal", Duration: 7, CurrentDay: 5})

	if c.ID == "" {
		t.Error("id should be generated")
	}
	if c.CurrentDay != 0 || c.LastCompletedDate != "" {
		t.Error("a new challenge must start at day zero")
	}
}

func TestChallengeLibrary_TemplatesAreValid(t *testing.T) {
	for _, tpl := range ChallengeLibrary() {
		if tpl.Title == "" || tpl.Duration < 1 {
			t.Errorf("bad template %+v", tpl)
		}
		if tpl.ID != "" {
			t.Errorf("template %q carries an id; ids are assigned at start", tpl.Title)
		}
	}
}
