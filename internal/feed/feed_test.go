package feed

import (
	"testing"
	"time"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

func TestFromEvents_RendersKnownKinds(t *testing.T) {
	catalog := engine.DefaultTitles()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	events := []engine.Event{
		{Kind: engine.EventXPGained, Amount: 15},
		{Kind: engine.EventLevelUp, Level: 2},
		{Kind: engine.EventTitleUnlocked, TitleID: "level-5"},
	}

	got := FromEvents(catalog, events, now)
	if len(got) != 3 {
		t.Fatalf("got %d notifications, want 3", len(got))
	}
	if got[0].Message != "+15 XP" || got[0].Type != models.NotificationXP {
		t.Errorf("xp entry: %+v", got[0])
	}
	if got[2].Message != "The Awakened" {
		t.Errorf("title id should resolve to its name, got %q", got[2].Message)
	}
	for _, n := range got {
		if n.ID == "" || n.Timestamp != now.Unix() {
			t.Errorf("entry missing id or timestamp: %+v", n)
		}
	}
}

func TestPrepend_BoundsFeed(t *testing.T) {
	var old []models.Notification
	for i := 0; i < MaxEntries; i++ {
		old = append(old, models.Notification{ID: "old"})
	}

	got := Prepend(old, []models.Notification{{ID: "new"}})

	if len(got) != MaxEntries {
		t.Errorf("feed grew to %d, cap is %d", len(got), MaxEntries)
	}
	if got[0].ID != "new" {
		t.Error("new entries should lead the feed")
	}
}
