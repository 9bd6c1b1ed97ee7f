package checklist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthyme/internal/models"
)

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E7D32")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// ToggleGoalMsg asks the parent to flip a goal in its working copy
type ToggleGoalMsg struct {
	Goal models.Goal
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	record models.DailyRecord
	cursor int
	keys   KeyMap
}

func New(record models.DailyRecord) Model {
	return Model{
		record: record,
		keys:   DefaultKeyMap(),
	}
}

func (m *Model) SetRecord(record models.DailyRecord) {
	m.record = record
}

// Selected returns the goal under the cursor
func (m Model) Selected() models.Goal {
	return models.Goals[m.cursor]
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(models.Goals)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		goal := m.Selected()
		return m, func() tea.Msg { return ToggleGoalMsg{Goal: goal} }
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for i, g := range models.Goals {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		if m.record.Done(g) {
			b.WriteString(cursor + doneStyle.Render("[x] "+g.Prompt()))
		} else {
			b.WriteString(cursor + pendingStyle.Render("[ ] "+g.Prompt()))
		}
		if i < len(models.Goals)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
