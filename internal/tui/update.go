package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/logger"
	"github.com/julianstephens/healthyme/internal/tui/components/checklist"
	"github.com/julianstephens/healthyme/internal/tui/components/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timer.TickMsg, timer.StartStopMsg:
		return m.updateTimers(msg)

	case timer.TimeoutMsg:
		if m.flashing && msg.ID == m.flash.ID() {
			m.flashing = false
		}
		if m.notifying && msg.ID == m.noticeTmr.ID() {
			m.notifying = false
			m.notice = ""
		}
		return m, nil

	case checklist.ToggleGoalMsg:
		m.record.Toggle(msg.Goal)
		m.checklist.SetRecord(m.record)
		var cmd tea.Cmd
		if m.flashing {
			cmd = m.flash.Stop()
			m.flashing = false
		}
		return m, cmd
	}

	switch m.state {
	case constants.StateMood:
		return m.updateMoodForm(msg)
	case constants.StateNotes:
		return m.updateNotesForm(msg)
	case constants.StateStats:
		return m.updateStats(msg)
	default:
		return m.updateToday(msg)
	}
}

func (m Model) updateTimers(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.flashing {
		var cmd tea.Cmd
		m.flash, cmd = m.flash.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.notifying {
		var cmd tea.Cmd
		m.noticeTmr, cmd = m.noticeTmr.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Batch(m.stopTimers(), tea.Quit)
}

func (m Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Save):
		return m, m.save()
	case key.Matches(keyMsg, m.keys.Mood):
		m.moodForm = &MoodFormModel{Mood: m.record.MoodLabel()}
		m.form = NewMoodForm(m.moodForm)
		m.state = constants.StateMood
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Notes):
		m.notesForm = &NotesFormModel{Notes: m.record.NotesText()}
		m.form = NewNotesForm(m.notesForm)
		m.state = constants.StateNotes
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Stats):
		m.summary = m.statsSummary()
		m.state = constants.StateStats
		// the flash belongs to the Today view
		var cmd tea.Cmd
		if m.flashing {
			cmd = m.flash.Stop()
			m.flashing = false
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(keyMsg)
	return m, cmd
}

func (m *Model) save() tea.Cmd {
	saved, err := m.store.Save(m.record)
	if err != nil {
		logger.Warn("Save from TUI failed", "error", err)
		return m.notify(constants.MessageSaveFailed)
	}

	m.record = saved
	m.checklist.SetRecord(saved)
	return m.startFlash()
}

func (m Model) statsSummary() string {
	saved, err := m.store.Snapshot()
	return stats.Summary(saved, err, m.store.Today())
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(keyMsg, m.keys.Back, m.keys.Stats, m.keys.Quit):
		m.state = constants.StateToday
	}
	return m, nil
}

func (m Model) updateMoodForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		rec, err := m.store.SetMood(m.moodForm.Mood)
		if err != nil {
			logger.Warn("Failed to save mood", "error", err)
			// Stay in the form so the user can retry or cancel with ESC
			m.form.State = huh.StateNormal
			cmds = append(cmds, m.notify(constants.MessageMoodFailed))
			break
		}
		m.record.Mood = rec.Mood
		m.checklist.SetRecord(m.record)
		m.state = constants.StateToday
		cmds = append(cmds, m.notify(fmt.Sprintf(constants.MessageMoodSaved, rec.MoodLabel())))
	case huh.StateAborted:
		m.state = constants.StateToday
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateNotesForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		rec, err := m.store.SetNotes(m.notesForm.Notes)
		if err != nil {
			logger.Warn("Failed to save notes", "error", err)
			m.form.State = huh.StateNormal
			cmds = append(cmds, m.notify(constants.MessageNotesFailed))
			break
		}
		m.record.Notes = rec.Notes
		m.checklist.SetRecord(m.record)
		m.state = constants.StateToday
		cmds = append(cmds, m.notify(constants.MessageNotesSaved))
	case huh.StateAborted:
		m.state = constants.StateToday
	}
	return m, tea.Batch(cmds...)
}
