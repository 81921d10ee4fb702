package engine

import (
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

// DefaultFocusMinutes is the classic pomodoro session length.
const DefaultFocusMinutes = 25

// StartFocus begins a focus session of the given length. Only the end
// timestamp is stored; remaining time is recomputed from the wall clock on
// every read, so suspending or restarting the process loses no elapsed
// time. Starting while a session is still running is a no-op.
func (s *Service) StartFocus(minutes int) (models.FocusSession, bool) {
	if minutes < 1 {
		minutes = DefaultFocusMinutes
	}
	if s.stats.ActiveFocus != nil && s.now().Before(s.stats.ActiveFocus.EndTime) {
		return *s.stats.ActiveFocus, false
	}
	session := models.FocusSession{
		EndTime:     s.now().Add(time.Duration(minutes) * time.Minute),
		DurationMin: minutes,
	}
	s.stats.ActiveFocus = &session
	return session, true
}

// FocusRemaining reports the time left in the running session, or false if
// none is active.
func (s *Service) FocusRemaining() (time.Duration, bool) {
	if s.stats.ActiveFocus == nil {
		return 0, false
	}
	remaining := s.stats.ActiveFocus.EndTime.Sub(s.now())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// CompleteFocus credits a finished session's minutes. It only fires once the
// end time has passed; calling early is a no-op so a session cannot be
// cashed in ahead of time.
func (s *Service) CompleteFocus() []Event {
	f := s.stats.ActiveFocus
	if f == nil || s.now().Before(f.EndTime) {
		return nil
	}
	s.stats.TotalFocusMinutes += f.DurationMin
	s.stats.ActiveFocus = nil
	return s.unlockNewTitles()
}

// CancelFocus abandons the running session without crediting minutes.
func (s *Service) CancelFocus() bool {
	if s.stats.ActiveFocus == nil {
		return false
	}
	s.stats.ActiveFocus = nil
	return true
}
