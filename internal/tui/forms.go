package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/healthyme/internal/models"
)

type MoodFormModel struct {
	Mood string
}

type NotesFormModel struct {
	Notes string
}

func NewMoodForm(fm *MoodFormModel) *huh.Form {
	options := make([]huh.Option[string], 0, len(models.Moods))
	for _, mood := range models.Moods {
		options = append(options, huh.NewOption(mood, mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewNotesForm(fm *NotesFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Daily Notes").
				Description("Add any notes about your day").
				CharLimit(2000).
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}
