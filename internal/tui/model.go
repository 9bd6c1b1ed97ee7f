package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/models"
	"github.com/julianstephens/healthyme/internal/record"
	"github.com/julianstephens/healthyme/internal/tui/components/checklist"
)

const noticeLoadFailed = "Saved data could not be read, starting fresh"

type Model struct {
	store     *record.Store
	state     constants.SessionState
	keys      KeyMap
	help      help.Model
	checklist checklist.Model

	// record is the working copy; toggles only touch this until saved
	record models.DailyRecord

	flash     timer.Model
	flashing  bool
	notice    string
	noticeTmr timer.Model
	notifying bool

	summary string

	form      *huh.Form
	moodForm  *MoodFormModel
	notesForm *NotesFormModel

	width    int
	height   int
	quitting bool
}

func NewModel(store *record.Store) Model {
	rec, status := store.Load()

	m := Model{
		store:     store,
		state:     constants.StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		checklist: checklist.New(rec),
		record:    rec,
	}

	if status == record.StatusCorrupt || status == record.StatusUnreadable {
		m.setNotice(noticeLoadFailed)
	}
	return m
}

// Record returns the in-memory working copy
func (m Model) Record() models.DailyRecord {
	return m.record.Clone()
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateStats:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Toggle, m.keys.Save, m.keys.Mood, m.keys.Notes, m.keys.Stats, m.keys.Quit, m.keys.Help}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	if m.notifying {
		return m.noticeTmr.Init()
	}
	return nil
}

// startFlash replaces any running flash with a fresh timer. The old timer's
// pending ticks carry its ID and are dropped by the new one.
func (m *Model) startFlash() tea.Cmd {
	var stop tea.Cmd
	if m.flashing {
		stop = m.flash.Stop()
	}
	m.flash = timer.NewWithInterval(constants.SavedFlashDuration, constants.SavedFlashDuration)
	m.flashing = true
	return tea.Batch(stop, m.flash.Init())
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTmr = timer.NewWithInterval(constants.NotificationDuration, constants.NotificationDuration)
	m.notifying = true
}

func (m *Model) notify(text string) tea.Cmd {
	var stop tea.Cmd
	if m.notifying {
		stop = m.noticeTmr.Stop()
	}
	m.setNotice(text)
	return tea.Batch(stop, m.noticeTmr.Init())
}

// stopTimers cancels pending flashes and notifications
func (m *Model) stopTimers() tea.Cmd {
	var cmds []tea.Cmd
	if m.flashing {
		cmds = append(cmds, m.flash.Stop())
		m.flashing = false
	}
	if m.notifying {
		cmds = append(cmds, m.noticeTmr.Stop())
		m.notifying = false
		m.notice = ""
	}
	return tea.Batch(cmds...)
}
