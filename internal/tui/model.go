package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lumen-app/lumen/internal/engine"
	"github.com/lumen-app/lumen/internal/feed"
	"github.com/lumen-app/lumen/internal/models"
	"github.com/lumen-app/lumen/internal/storage"
	"github.com/lumen-app/lumen/internal/tui/components/challengelist"
	"github.com/lumen-app/lumen/internal/tui/components/habitlist"
	"github.com/lumen-app/lumen/internal/tui/components/titlelist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateChallenges
	StateTitles
	StateStats
	StateAddHabit
	StateAddChallenge
	StateConfirmDelete
)

// tabCount covers the browsable tabs only; form and confirm states are
// reached through actions, not tab cycling.
const tabCount = 4

type HabitFormModel struct {
	Name       string
	Icon       string
	Category   models.Category
	Difficulty models.Difficulty
	Recurrence models.RecurrenceType
	Weekdays   string
	Time       string
}

type ChallengeFormModel struct {
	Template   int // index into the library, -1 for custom
	Title      string
	Days       string
	Difficulty models.Difficulty
}

type Model struct {
	svc   *engine.Service
	store storage.Provider
	tips  engine.TipProvider

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habitList     habitlist.Model
	challengeList challengelist.Model
	titleList     titlelist.Model

	form          *huh.Form
	habitForm     *HabitFormModel
	challengeForm *ChallengeFormModel

	habitToDeleteID     string
	challengeToDeleteID string

	tip       string
	statusMsg string
	width     int
	height    int
	quitting  bool
}

type tickMsg time.Time

type tipMsg string

func NewModel(svc *engine.Service, store storage.Provider, tips engine.TipProvider) Model {
	today := svc.Today()
	return Model{
		svc:           svc,
		store:         store,
		tips:          tips,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     habitlist.New(svc.DueOn(today), today, 0, 0),
		challengeList: challengelist.New(svc.Challenges(), today, 0, 0),
		titleList:     titlelist.New(svc.Titles(), svc.Stats(), 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.fetchTip())
}

// tickCmd fires on the next minute boundary so reminder times match the
// wall clock exactly.
func tickCmd() tea.Cmd {
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchTip() tea.Cmd {
	tips := m.tips
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return tipMsg(engine.DailyTip(ctx, tips, time.Now()))
	}
}

// persist saves the engine state and folds events into the notification
// feed. Storage errors surface in the status line rather than crashing the
// session.
func (m *Model) persist(events []engine.Event) {
	if len(events) > 0 {
		entries, err := m.store.GetNotifications()
		if err == nil {
			entries = feed.Prepend(entries, feed.FromEvents(m.svc.Titles(), events, time.Now()))
			err = m.store.SaveNotifications(entries)
		}
		if err != nil {
			m.statusMsg = "⚠ " + err.Error()
		}
	}
	if err := m.store.SaveState(m.svc.State()); err != nil {
		m.statusMsg = "⚠ " + err.Error()
	}
}

// refreshLists resyncs every list component with the engine.
func (m *Model) refreshLists() {
	today := m.svc.Today()
	m.habitList.SetHabits(m.svc.DueOn(today), today)
	m.challengeList.SetChallenges(m.svc.Challenges(), today)
	m.titleList.SetTitles(m.svc.Titles(), m.svc.Stats())
}

// statusFromEvents builds a short toast line out of progression events.
func (m Model) statusFromEvents(events []engine.Event) string {
	var parts []string
	for _, e := range events {
		switch e.Kind {
		case engine.EventXPGained:
			parts = append(parts, fmt.Sprintf("+%d XP", e.Amount))
		case engine.EventLevelUp:
			parts = append(parts, fmt.Sprintf("Level %d!", e.Level))
		case engine.EventTitleUnlocked:
			parts = append(parts, "Unlocked: "+m.titleName(e.TitleID))
		case engine.EventChallengeDay:
			parts = append(parts, fmt.Sprintf("Day %d ✓", e.Day))
		case engine.EventChallengeComplete:
			parts = append(parts, "Challenge complete! 🏆")
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) titleName(id string) string {
	for _, t := range m.svc.Titles() {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday, StateChallenges:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	case StateTitles:
		keys = append(keys, m.keys.Enter)
	}
	keys = append(keys, m.keys.Focus)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Focus}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday, StateChallenges:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}
