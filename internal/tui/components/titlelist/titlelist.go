package titlelist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumen-app/lumen/internal/models"
)

type SelectTitleMsg struct {
	ID string
}

// Item wraps a catalog title plus its unlock/selection state.
type Item struct {
	Entry    models.HeroicTitle
	Unlocked bool
	Selected bool
}

func (i Item) Title() string {
	switch {
	case i.Selected:
		return "★ " + i.Entry.Name
	case i.Unlocked:
		return "  " + i.Entry.Name
	default:
		return "🔒 " + i.Entry.Name
	}
}

func (i Item) Description() string {
	return string(i.Entry.Rarity) + " | " + i.Entry.Description
}

func (i Item) FilterValue() string { return i.Entry.Name }

type KeyMap struct {
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "wear title"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(catalog []models.HeroicTitle, stats models.UserStats, width, height int) Model {
	l := list.New(toItems(catalog, stats), list.NewDefaultDelegate(), width, height)
	l.Title = "Titles"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(catalog []models.HeroicTitle, stats models.UserStats) []list.Item {
	items := make([]list.Item, len(catalog))
	for i, t := range catalog {
		items[i] = Item{
			Entry:    t,
			Unlocked: stats.HasTitle(t.ID),
			Selected: t.ID == stats.SelectedTitleID,
		}
	}
	return items
}

func (m *Model) SetTitles(catalog []models.HeroicTitle, stats models.UserStats) {
	m.list.SetItems(toItems(catalog, stats))
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
		if key.Matches(msg, m.keys.Select) {
			if i, ok := m.list.SelectedItem().(Item); ok && i.Unlocked {
				return m, func() tea.Msg { return SelectTitleMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
