package challengelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumen-app/lumen/internal/models"
)

type AddChallengeMsg struct{}

type CheckInMsg struct {
	ID string
}

type DeleteChallengeMsg struct {
	ID string
}

// Item wraps a challenge plus whether it has been checked in today.
type Item struct {
	Challenge    models.Challenge
	CheckedToday bool
}

func (i Item) Title() string {
	c := i.Challenge
	if c.Finished() {
		return fmt.Sprintf("🏆 %s %s", c.Icon, c.Title)
	}
	return fmt.Sprintf("%s %s", c.Icon, c.Title)
}

func (i Item) Description() string {
	c := i.Challenge
	if c.Finished() {
		return "complete"
	}
	desc := fmt.Sprintf("day %d/%d | %s", c.CurrentDay, c.Duration, c.Difficulty)
	if i.CheckedToday {
		desc += " | checked in today"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Challenge.Title }

type KeyMap struct {
	CheckIn key.Binding
	Add     key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		CheckIn: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "check in"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(challenges []models.Challenge, day string, width, height int) Model {
	l := list.New(toItems(challenges, day), list.NewDefaultDelegate(), width, height)
	l.Title = "Challenges"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.CheckIn, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(challenges []models.Challenge, day string) []list.Item {
	items := make([]list.Item, len(challenges))
	for i, c := range challenges {
		items[i] = Item{Challenge: c, CheckedToday: c.LastCompletedDate == day}
	}
	return items
}

func (m *Model) SetChallenges(challenges []models.Challenge, day string) {
	m.list.SetItems(toItems(challenges, day))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.CheckIn):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return CheckInMsg{ID: i.Challenge.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddChallengeMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteChallengeMsg{ID: i.Challenge.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No challenges running.\n  Press 'a' to start one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
