package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lumen-app/lumen/internal/models"
	"github.com/lumen-app/lumen/internal/tui/components/challengelist"
	"github.com/lumen-app/lumen/internal/tui/components/habitlist"
	"github.com/lumen-app/lumen/internal/tui/components/titlelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 7
		if contentHeight < 3 {
			contentHeight = 3
		}
		m.habitList.SetSize(msg.Width-4, contentHeight)
		m.challengeList.SetSize(msg.Width-4, contentHeight)
		m.titleList.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tipMsg:
		m.tip = string(msg)
		return m, nil

	case habitlist.ToggleHabitMsg:
		events := m.svc.ToggleHabit(msg.ID, m.svc.Today())
		m.persist(events)
		m.refreshLists()
		if s := m.statusFromEvents(events); s != "" {
			m.statusMsg = s
		}
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Category:   models.CategoryMorning,
			Difficulty: models.DifficultyMedium,
			Recurrence: models.RecurrenceDaily,
		}
		m.form = newHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.DuplicateHabitMsg:
		if dup, ok := m.svc.DuplicateHabit(msg.ID); ok {
			m.persist(nil)
			m.refreshLists()
			m.statusMsg = "Duplicated " + dup.Name
		}
		return m, nil

	case challengelist.CheckInMsg:
		events := m.svc.CheckInChallenge(msg.ID, m.svc.Today())
		m.persist(events)
		m.refreshLists()
		if s := m.statusFromEvents(events); s != "" {
			m.statusMsg = s
		}
		return m, nil

	case challengelist.AddChallengeMsg:
		m.challengeForm = &ChallengeFormModel{
			Template:   -1,
			Difficulty: models.DifficultyMedium,
		}
		m.form = newChallengeForm(m.challengeForm)
		m.previousState = m.state
		m.state = StateAddChallenge
		return m, m.form.Init()

	case challengelist.DeleteChallengeMsg:
		m.challengeToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case titlelist.SelectTitleMsg:
		if m.svc.SelectTitle(msg.ID) {
			m.persist(nil)
			m.refreshLists()
			m.statusMsg = "Now wearing: " + m.titleName(msg.ID)
		}
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateAddChallenge:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// handleTick runs the once-a-minute housekeeping: midnight rollover, habit
// reminders, and crediting an expired focus session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dirty := false

	if m.svc.RefreshForNewDay(now.Format(models.DayFormat)) {
		dirty = true
	}

	if reminders := m.svc.DueReminders(now); len(reminders) > 0 {
		r := reminders[0]
		m.statusMsg = "🔔 " + r.Icon + " " + r.Name
		dirty = true
	}

	if remaining, active := m.svc.FocusRemaining(); active && remaining == 0 {
		minutes := m.svc.Stats().ActiveFocus.DurationMin
		events := m.svc.CompleteFocus()
		m.persist(events)
		m.statusMsg = fmt.Sprintf("🎉 Focus complete: %d minutes credited", minutes)
		dirty = false // persist already ran
		m.refreshLists()
	}

	if dirty {
		m.persist(nil)
		m.refreshLists()
	}

	return m, tickCmd()
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Focus):
			return m.toggleFocus()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateChallenges:
		m.challengeList, cmd = m.challengeList.Update(msg)
	case StateTitles:
		m.titleList, cmd = m.titleList.Update(msg)
	}
	return m, cmd
}

// toggleFocus starts a default-length focus session, or cancels the
// running one.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if _, active := m.svc.FocusRemaining(); active {
		m.svc.CancelFocus()
		m.persist(nil)
		m.statusMsg = "Focus cancelled"
		return m, nil
	}

	session, _ := m.svc.StartFocus(0)
	m.persist(nil)
	m.statusMsg = "Focusing until " + session.EndTime.Format("15:04")
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateAddHabit:
			habit, err := habitFromForm(m.habitForm)
			if err != nil {
				m.statusMsg = "⚠ " + err.Error()
			} else {
				added := m.svc.AddHabit(habit)
				m.persist(nil)
				m.refreshLists()
				m.statusMsg = "Added " + added.Name
			}
		case StateAddChallenge:
			ch := m.svc.AddChallenge(challengeFromForm(m.challengeForm))
			m.persist(nil)
			m.refreshLists()
			m.statusMsg = "Started " + ch.Title
		}
		m.form = nil
		m.state = m.previousState

	case huh.StateAborted:
		m.form = nil
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.habitToDeleteID != "" {
			m.svc.DeleteHabit(m.habitToDeleteID)
		}
		if m.challengeToDeleteID != "" {
			m.svc.DeleteChallenge(m.challengeToDeleteID)
		}
		m.persist(nil)
		m.refreshLists()
		fallthrough
	case "n", "N", "esc", "q":
		m.habitToDeleteID = ""
		m.challengeToDeleteID = ""
		m.state = m.previousState
	}

	return m, nil
}
