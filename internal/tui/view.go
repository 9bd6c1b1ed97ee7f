package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/record"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateMood, constants.StateNotes:
		content = m.form.View()
	default:
		content = m.viewToday()
	}

	parts := []string{titleStyle.Render("HealthyMe - Daily Health Tracker"), content}
	if m.notifying {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewToday() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		dateStyle.Render(m.dateLine()),
		"",
		m.checklist.View(),
		messageStyle.Render(m.message()),
	)
}

// message is the motivational line, or the saved flash while it runs
func (m Model) message() string {
	if m.flashing {
		return constants.MessageSaved
	}
	return record.MessageFor(m.record)
}

func (m Model) dateLine() string {
	day, err := time.Parse(constants.DateFormat, m.store.Today())
	if err != nil {
		return m.store.Today()
	}
	return day.Format("Monday, January 2")
}

func (m Model) viewStats() string {
	return panelStyle.Render(m.summary)
}
