package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

type blob struct {
	Version       int                   `json:"version"`
	Habits        []models.Habit        `json:"habits"`
	Challenges    []models.Challenge    `json:"challenges"`
	Stats         models.UserStats      `json:"stats"`
	Notifications []models.Notification `json:"notifications"`
}

// JSONStore keeps everything in a single indented JSON file.
type JSONStore struct {
	path string
	data *blob
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init(seed engine.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = &blob{
		Version:    1,
		Habits:     seed.Habits,
		Challenges: seed.Challenges,
		Stats:      seed.Stats,
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lumen init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = &blob{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Default missing fields; the engine assumes well-formed input past
	// this boundary.
	for i := range s.data.Habits {
		if s.data.Habits[i].CompletionHistory == nil {
			s.data.Habits[i].CompletionHistory = []string{}
		}
	}
	if s.data.Stats.Level < 1 {
		s.data.Stats.Level = 1
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetState() (engine.State, error) {
	if s.data == nil {
		return engine.State{}, fmt.Errorf("storage not loaded")
	}
	return engine.State{
		Habits:     s.data.Habits,
		Challenges: s.data.Challenges,
		Stats:      s.data.Stats,
	}, nil
}

func (s *JSONStore) SaveState(state engine.State) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data.Habits = state.Habits
	s.data.Challenges = state.Challenges
	s.data.Stats = state.Stats
	return s.save()
}

func (s *JSONStore) GetNotifications() ([]models.Notification, error) {
	if s.data == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.data.Notifications, nil
}

func (s *JSONStore) SaveNotifications(entries []models.Notification) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data.Notifications = entries
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
