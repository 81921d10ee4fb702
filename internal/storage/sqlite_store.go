package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT 'medium',
	reminder_time TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	due_date TEXT NOT NULL DEFAULT '',
	recurrence_type TEXT NOT NULL DEFAULT 'none',
	recurrence_interval INTEGER NOT NULL DEFAULT 1,
	recurrence_weekdays TEXT NOT NULL DEFAULT '[]',
	recurrence_day_of_month INTEGER NOT NULL DEFAULT 0,
	completion_history TEXT NOT NULL DEFAULT '[]',
	current_streak INTEGER NOT NULL DEFAULT 0,
	best_streak INTEGER NOT NULL DEFAULT 0,
	completed INTEGER NOT NULL DEFAULT 0,
	notified_date TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS challenges (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT 'medium',
	duration INTEGER NOT NULL,
	current_day INTEGER NOT NULL DEFAULT 0,
	last_completed_date TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS stats (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	type TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	read INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore persists state in a SQLite database. Habits and challenges
// get real columns; the stats aggregate is one JSON row since it is always
// read and written whole.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(seed engine.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return s.SaveState(seed)
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'lumen init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Idempotent: brings an older database up to the current table set.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetState() (engine.State, error) {
	habits, err := s.loadHabits()
	if err != nil {
		return engine.State{}, err
	}
	challenges, err := s.loadChallenges()
	if err != nil {
		return engine.State{}, err
	}
	stats, err := s.loadStats()
	if err != nil {
		return engine.State{}, err
	}
	return engine.State{Habits: habits, Challenges: challenges, Stats: stats}, nil
}

// SaveState rewrites the full state in one transaction. The state is small
// (a personal tracker) and always saved whole after a mutation.
func (s *SQLiteStore) SaveState(state engine.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}
	for _, h := range state.Habits {
		weekdays, err := json.Marshal(h.Rule.WeekdayMask)
		if err != nil {
			return fmt.Errorf("failed to marshal weekday mask: %w", err)
		}
		history, err := json.Marshal(h.CompletionHistory)
		if err != nil {
			return fmt.Errorf("failed to marshal completion history: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO habits (id, name, description, icon, category, difficulty,
				reminder_time, start_date, due_date, recurrence_type, recurrence_interval,
				recurrence_weekdays, recurrence_day_of_month, completion_history,
				current_streak, best_streak, completed, notified_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, h.Icon, string(h.Category), string(h.Difficulty),
			h.Time, h.StartDate, h.DueDate, string(h.Recurrence), h.Rule.Interval,
			string(weekdays), h.Rule.DayOfMonth, string(history),
			h.CurrentStreak, h.BestStreak, h.Completed, h.NotifiedDate,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM challenges"); err != nil {
		return err
	}
	for _, c := range state.Challenges {
		_, err := tx.Exec(`
			INSERT INTO challenges (id, title, description, icon, color, difficulty,
				duration, current_day, last_completed_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Description, c.Icon, c.Color, string(c.Difficulty),
			c.Duration, c.CurrentDay, c.LastCompletedDate,
		)
		if err != nil {
			return err
		}
	}

	statsJSON, err := json.Marshal(state.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO stats (id, data) VALUES (1, ?)", string(statsJSON)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, icon, category, difficulty, reminder_time,
		       start_date, due_date, recurrence_type, recurrence_interval,
		       recurrence_weekdays, recurrence_day_of_month, completion_history,
		       current_streak, best_streak, completed, notified_date
		FROM habits`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var category, difficulty, recType, weekdays, history string
		err := rows.Scan(
			&h.ID, &h.Name, &h.Description, &h.Icon, &category, &difficulty, &h.Time,
			&h.StartDate, &h.DueDate, &recType, &h.Rule.Interval,
			&weekdays, &h.Rule.DayOfMonth, &history,
			&h.CurrentStreak, &h.BestStreak, &h.Completed, &h.NotifiedDate,
		)
		if err != nil {
			return nil, err
		}
		h.Category = models.Category(category)
		h.Difficulty = models.Difficulty(difficulty)
		h.Recurrence = models.RecurrenceType(recType)

		var wds []int
		if err := json.Unmarshal([]byte(weekdays), &wds); err == nil {
			for _, w := range wds {
				h.Rule.WeekdayMask = append(h.Rule.WeekdayMask, time.Weekday(w))
			}
		}
		if err := json.Unmarshal([]byte(history), &h.CompletionHistory); err != nil {
			h.CompletionHistory = []string{}
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) loadChallenges() ([]models.Challenge, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, icon, color, difficulty, duration,
		       current_day, last_completed_date
		FROM challenges`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []models.Challenge
	for rows.Next() {
		var c models.Challenge
		var difficulty string
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Icon, &c.Color,
			&difficulty, &c.Duration, &c.CurrentDay, &c.LastCompletedDate)
		if err != nil {
			return nil, err
		}
		c.Difficulty = models.Difficulty(difficulty)
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

func (s *SQLiteStore) loadStats() (models.UserStats, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM stats WHERE id = 1").Scan(&raw)
	if err == sql.ErrNoRows {
		return models.UserStats{Level: 1}, nil
	}
	if err != nil {
		return models.UserStats{}, err
	}

	var stats models.UserStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to parse stats: %w", err)
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	return stats, nil
}

func (s *SQLiteStore) GetNotifications() ([]models.Notification, error) {
	rows, err := s.db.Query(`
		SELECT id, title, message, type, timestamp, read
		FROM notifications ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Notification
	for rows.Next() {
		var n models.Notification
		var typ string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &typ, &n.Timestamp, &n.Read); err != nil {
			return nil, err
		}
		n.Type = models.NotificationType(typ)
		entries = append(entries, n)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) SaveNotifications(entries []models.Notification) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM notifications"); err != nil {
		return err
	}
	for _, n := range entries {
		_, err := tx.Exec(`
			INSERT INTO notifications (id, title, message, type, timestamp, read)
			VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Message, string(n.Type), n.Timestamp, n.Read,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
