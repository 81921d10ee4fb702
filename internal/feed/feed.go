// Package feed turns engine events into persisted notification entries.
// Formatting lives here so the engine stays free of display strings.
package feed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

// MaxEntries bounds the persisted feed; older entries are dropped.
const MaxEntries = 50

// FromEvents renders events as notification entries, newest first.
func FromEvents(catalog []models.HeroicTitle, events []engine.Event, now time.Time) []models.Notification {
	var out []models.Notification
	for _, e := range events {
		n, ok := fromEvent(catalog, e)
		if !ok {
			continue
		}
		n.ID = uuid.New().String()
		n.Timestamp = now.Unix()
		out = append(out, n)
	}
	return out
}

// Prepend pushes new entries onto the feed and trims it to MaxEntries.
func Prepend(feed, entries []models.Notification) []models.Notification {
	out := append(entries, feed...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

func fromEvent(catalog []models.HeroicTitle, e engine.Event) (models.Notification, bool) {
	switch e.Kind {
	case engine.EventXPGained:
		return models.Notification{
			Title:   "XP Gained",
			Message: fmt.Sprintf("+%d XP", e.Amount),
			Type:    models.NotificationXP,
		}, true
	case engine.EventLevelUp:
		return models.Notification{
			Title:   "Ascension",
			Message: fmt.Sprintf("Level %d reached", e.Level),
			Type:    models.NotificationLevel,
		}, true
	case engine.EventTitleUnlocked:
		return models.Notification{
			Title:   "New Distinction",
			Message: titleName(catalog, e.TitleID),
			Type:    models.NotificationLevel,
		}, true
	case engine.EventChallengeDay:
		return models.Notification{
			Title:   "Challenge",
			Message: fmt.Sprintf("Day %d checked in", e.Day),
			Type:    models.NotificationQuest,
		}, true
	case engine.EventChallengeComplete:
		return models.Notification{
			Title:   "Challenge Complete",
			Message: "Every day checked in. Well fought.",
			Type:    models.NotificationQuest,
		}, true
	}
	return models.Notification{}, false
}

func titleName(catalog []models.HeroicTitle, id string) string {
	for _, t := range catalog {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
