package engine

// EventKind discriminates the progression events an operation can emit.
type EventKind string

const (
	EventXPGained          EventKind = "xp_gained"
	EventLevelUp           EventKind = "level_up"
	EventTitleUnlocked     EventKind = "title_unlocked"
	EventChallengeDay      EventKind = "challenge_day"
	EventChallengeComplete EventKind = "challenge_complete"
)

// Event is a discrete progression event. The engine only carries payload
// data; rendering (toasts, popups, notification text) is the caller's job.
type Event struct {
	Kind        EventKind
	Amount      int    // XP delta for EventXPGained
	Level       int    // new level for EventLevelUp
	TitleID     string // for EventTitleUnlocked
	ChallengeID string // for challenge events
	Day         int    // currentDay after an EventChallengeDay
}
