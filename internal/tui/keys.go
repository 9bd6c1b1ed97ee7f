package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/julianstephens/healthyme/internal/tui/components/checklist"
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Mood   key.Binding
	Notes  key.Binding
	Stats  key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Save, k.Mood, k.Notes, k.Stats},
		{k.Back, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	list := checklist.DefaultKeyMap()
	return KeyMap{
		Up:     list.Up,
		Down:   list.Down,
		Toggle: list.Toggle,
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save progress"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "track mood"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add notes"),
		),
		Stats: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "statistics"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
