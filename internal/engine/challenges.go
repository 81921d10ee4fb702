package engine

import (
	"github.com/google/uuid"

	"github.com/lumen-app/lumen/internal/models"
)

// Challenges returns all challenges in insertion order.
func (s *Service) Challenges() []models.Challenge {
	out := make([]models.Challenge, len(s.challenges))
	copy(out, s.challenges)
	return out
}

// Challenge looks a challenge up by id.
func (s *Service) Challenge(id string) (models.Challenge, bool) {
	if i := s.challengeIndex(id); i >= 0 {
		return s.challenges[i], true
	}
	return models.Challenge{}, false
}

// AddChallenge stores a new challenge starting at day zero.
func (s *Service) AddChallenge(c models.Challenge) models.Challenge {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Duration < 1 {
		c.Duration = 1
	}
	if c.Difficulty == "" {
		c.Difficulty = models.DifficultyMedium
	}
	c.CurrentDay = 0
	c.LastCompletedDate = ""
	s.challenges = append(s.challenges, c)
	return c
}

// DeleteChallenge removes the challenge entirely.
func (s *Service) DeleteChallenge(id string) bool {
	i := s.challengeIndex(id)
	if i < 0 {
		return false
	}
	s.challenges = append(s.challenges[:i], s.challenges[i+1:]...)
	return true
}

// CheckInChallenge advances the challenge by one day. Checking in twice on
// the same date, or on a finished challenge, is a silent no-op. Each day
// earns difficulty XP; the final day additionally earns the completion
// bonus and bumps the completed-challenges counter. There is no undo:
// challenge progress is one-directional, unlike habit toggles.
func (s *Service) CheckInChallenge(id, today string) []Event {
	i := s.challengeIndex(id)
	if i < 0 {
		return nil
	}
	c := &s.challenges[i]
	if c.LastCompletedDate == today || c.Finished() {
		return nil
	}

	c.CurrentDay++
	c.LastCompletedDate = today

	events := []Event{{Kind: EventChallengeDay, ChallengeID: c.ID, Day: c.CurrentDay}}
	events = append(events, ApplyXP(&s.stats, XPForDifficulty(c.Difficulty))...)

	if c.Finished() {
		s.stats.TotalChallengesCompleted++
		events = append(events, Event{Kind: EventChallengeComplete, ChallengeID: c.ID})
		events = append(events, ApplyXP(&s.stats, XPChallengeBonus)...)
	}

	return append(events, s.unlockNewTitles()...)
}

func (s *Service) challengeIndex(id string) int {
	for i := range s.challenges {
		if s.challenges[i].ID == id {
			return i
		}
	}
	return -1
}

// ChallengeLibrary is the built-in catalog of challenge templates. Starting
// one copies the template into a fresh challenge.
func ChallengeLibrary() []models.Challenge {
	return []models.Challenge{
		{Title: "Dawn Yoga", Description: "15 minutes of sun salutations.", Duration: 7, Icon: "🧘", Color: "teal", Difficulty: models.DifficultyEasy},
		{Title: "Heroic Stairs", Description: "Skip the elevator all day.", Duration: 5, Icon: "🪜", Color: "orange", Difficulty: models.DifficultyEasy},
		{Title: "Plank of Steel", Description: "Hold a one-minute plank.", Duration: 10, Icon: "💪", Color: "slate", Difficulty: models.DifficultyMedium},
		{Title: "Vital Hydration", Description: "Two liters of water, no excuses.", Duration: 30, Icon: "💧", Color: "blue", Difficulty: models.DifficultyMedium},
		{Title: "Ten Thousand Steps", Description: "Walk 10,000 steps a day.", Duration: 14, Icon: "🚶", Color: "lime", Difficulty: models.DifficultyHard},
		{Title: "Morning Bibliophile", Description: "Read ten pages over breakfast.", Duration: 14, Icon: "📖", Color: "indigo", Difficulty: models.DifficultyMedium},
		{Title: "Evening Poetry", Description: "Read one poem before sleep.", Duration: 5, Icon: "📜", Color: "pink", Difficulty: models.DifficultyEasy},
		{Title: "Junior Polyglot", Description: "Learn five words of a new language.", Duration: 30, Icon: "🌍", Color: "indigo", Difficulty: models.DifficultyHard},
		{Title: "Starred Chef", Description: "Cook a new healthy recipe.", Duration: 5, Icon: "🍳", Color: "orange", Difficulty: models.DifficultyMedium},
		{Title: "Inbox Zero", Description: "Empty the inbox before 6pm.", Duration: 5, Icon: "📩", Color: "blue", Difficulty: models.DifficultyMedium},
		{Title: "Deep Focus", Description: "Two hours of undistracted work.", Duration: 10, Icon: "🎯", Color: "indigo", Difficulty: models.DifficultyHard},
		{Title: "Open Heart", Description: "Call someone close to catch up.", Duration: 7, Icon: "📞", Color: "green", Difficulty: models.DifficultyEasy},
		{Title: "Screens Down", Description: "All screens off by 9:30pm.", Duration: 21, Icon: "🌙", Color: "indigo", Difficulty: models.DifficultyHeroic},
		{Title: "Express Meditation", Description: "Five minutes of total silence.", Duration: 30, Icon: "🧘", Color: "teal", Difficulty: models.DifficultyMedium},
		{Title: "Daily Journal", Description: "Write down the day's thoughts.", Duration: 7, Icon: "📓", Color: "slate", Difficulty: models.DifficultyEasy},
	}
}
