package engine

import (
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

// State is the persisted shape the service is loaded from and saved to. The
// caller owns serialization; the engine never touches storage itself.
type State struct {
	Habits     []models.Habit
	Challenges []models.Challenge
	Stats      models.UserStats
}

// Service owns the habit collection, challenge progress and the single
// UserStats aggregate. Every mutation is funneled through its named
// operations so clamping and monotonicity rules live in one place. All
// operations run synchronously; the service is not safe for concurrent use
// and is not meant to be.
type Service struct {
	habits     []models.Habit
	challenges []models.Challenge
	stats      models.UserStats
	catalog    []models.HeroicTitle
	now        func() time.Time
}

// New builds a Service from a loaded state, normalizing the few fields whose
// zero values are invalid. Missing-field defaulting beyond that is the
// storage layer's job.
func New(state State) *Service {
	s := &Service{
		habits:     state.Habits,
		challenges: state.Challenges,
		stats:      state.Stats,
		catalog:    DefaultTitles(),
		now:        time.Now,
	}
	if s.stats.Level < 1 {
		s.stats.Level = 1
	}
	if len(s.stats.UnlockedTitleIDs) == 0 {
		s.stats.UnlockedTitleIDs = []string{"level-1"}
	}
	if s.stats.SelectedTitleID == "" {
		s.stats.SelectedTitleID = s.stats.UnlockedTitleIDs[0]
	}
	return s
}

// SetClock overrides the wall clock, for tests.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Today returns the current calendar date as YYYY-MM-DD.
func (s *Service) Today() string { return s.now().Format(models.DayFormat) }

// State snapshots the service for persistence.
func (s *Service) State() State {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	challenges := make([]models.Challenge, len(s.challenges))
	copy(challenges, s.challenges)
	return State{Habits: habits, Challenges: challenges, Stats: s.stats}
}

// Stats returns a read-only snapshot of the progression record.
func (s *Service) Stats() models.UserStats { return s.stats }

// Titles returns the static heroic-title catalog.
func (s *Service) Titles() []models.HeroicTitle { return s.catalog }

// SelectedTitle resolves the currently worn title.
func (s *Service) SelectedTitle() models.HeroicTitle {
	for _, t := range s.catalog {
		if t.ID == s.stats.SelectedTitleID {
			return t
		}
	}
	return s.catalog[0]
}

// SelectTitle makes the title the worn one. Selecting a locked or unknown
// title is a silent no-op and reports false.
func (s *Service) SelectTitle(id string) bool {
	if !s.stats.HasTitle(id) {
		return false
	}
	s.stats.SelectedTitleID = id
	return true
}

// LogMood records a mood/energy pair for the day. A second log for the same
// date is a silent no-op. The first log of a day earns a small XP award.
func (s *Service) LogMood(day string, mood, energy int) []Event {
	if s.stats.MoodLoggedOn(day) {
		return nil
	}
	s.stats.MoodLogs = append(s.stats.MoodLogs, models.MoodLog{
		Date:   day,
		Mood:   clampScale(mood),
		Energy: clampScale(energy),
	})
	events := ApplyXP(&s.stats, XPMoodLog)
	return append(events, s.unlockNewTitles()...)
}

// unlockNewTitles records any freshly earned titles and returns one event
// per unlock. Run after every stats mutation.
func (s *Service) unlockNewTitles() []Event {
	ids := EvaluateTitles(s.catalog, s.stats)
	var events []Event
	for _, id := range ids {
		s.stats.UnlockedTitleIDs = append(s.stats.UnlockedTitleIDs, id)
		events = append(events, Event{Kind: EventTitleUnlocked, TitleID: id})
	}
	return events
}

func clampScale(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}
