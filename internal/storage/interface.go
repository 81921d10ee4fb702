package storage

import (
	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

// Provider persists the engine state and the notification feed. The engine
// itself never reads or writes storage; commands load state at startup and
// save after every mutation.
type Provider interface {
	// Lifecycle
	Init(seed engine.State) error
	Load() error
	Close() error

	// Engine state
	GetState() (engine.State, error)
	SaveState(engine.State) error

	// Notification feed
	GetNotifications() ([]models.Notification, error)
	SaveNotifications([]models.Notification) error

	// Utils
	GetConfigPath() string
}
