package models

type NotificationType string

const (
	NotificationXP    NotificationType = "xp"
	NotificationLevel NotificationType = "level"
	NotificationQuest NotificationType = "quest"
	NotificationInfo  NotificationType = "info"
)

// Notification is a persisted feed entry rendered by the CLI/TUI.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp int64            `json:"timestamp"` // unix seconds
	Read      bool             `json:"read"`
}
