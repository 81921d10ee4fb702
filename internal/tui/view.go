package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-app/lumen/internal/engine"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.habitList.View())
	case StateChallenges:
		content = docStyle.Render(m.challengeList.View())
	case StateTitles:
		content = docStyle.Render(m.titleList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAddHabit, StateAddChallenge:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		content,
		statusStyle.Render(m.statusMsg),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	stats := m.svc.Stats()
	threshold := engine.LevelThreshold(stats.Level)

	header := fmt.Sprintf("✦ lumen  Lv %d %s  %s %d/%d XP",
		stats.Level, engine.RankForLevel(stats.Level),
		xpBarStyle.Render(xpBar(stats.XP, threshold, 12)), stats.XP, threshold)
	if stats.Streak > 1 {
		header += fmt.Sprintf("  🔥 %d-day streak", stats.Streak)
	}
	if remaining, active := m.svc.FocusRemaining(); active {
		mins := int(remaining.Minutes())
		secs := int(remaining.Seconds()) % 60
		header += fmt.Sprintf("  ⏳ %02d:%02d", mins, secs)
	}

	lines := []string{headerStyle.Render(header)}
	if m.tip != "" {
		lines = append(lines, inactiveTabStyle.Render("💡 "+m.tip))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func xpBar(xp, threshold, width int) string {
	if threshold < 1 {
		threshold = 1
	}
	filled := xp * width / threshold
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Challenges", "Titles", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	stats := m.svc.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.svc.SelectedTitle().Name)
	fmt.Fprintf(&b, "Total XP:             %d\n", stats.TotalXP)
	fmt.Fprintf(&b, "Login streak:         %d days\n", stats.Streak)
	fmt.Fprintf(&b, "Habits completed:     %d\n", stats.TotalHabitsCompleted)
	fmt.Fprintf(&b, "Challenges completed: %d\n", stats.TotalChallengesCompleted)
	fmt.Fprintf(&b, "Focus minutes:        %d\n", stats.TotalFocusMinutes)
	fmt.Fprintf(&b, "Titles unlocked:      %d/%d\n", len(stats.UnlockedTitleIDs), len(m.svc.Titles()))

	if len(stats.MoodLogs) > 0 {
		last := stats.MoodLogs[len(stats.MoodLogs)-1]
		fmt.Fprintf(&b, "\nLast mood: %d/5 mood, %d/5 energy (%s)\n", last.Mood, last.Energy, last.Date)
	}

	return b.String()
}

func (m Model) viewConfirmDelete() string {
	what := "habit"
	if m.challengeToDeleteID != "" {
		what = "challenge"
	}
	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this "+what+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
