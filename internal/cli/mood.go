package cli

import (
	"fmt"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/tui"
)

type MoodCmd struct {
	Label string `arg:"" optional:"" help:"Mood label. Prompts with the standard moods when omitted."`
}

func (c *MoodCmd) Run(ctx *Context) error {
	label := c.Label
	if label == "" {
		today, _ := ctx.Store.Load()
		fm := &tui.MoodFormModel{Mood: today.MoodLabel()}
		if err := tui.NewMoodForm(fm).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		label = fm.Mood
	}

	saved, err := ctx.Store.SetMood(label)
	if err != nil {
		return err
	}
	ctx.printf(constants.MessageMoodSaved+"\n", saved.MoodLabel())
	return nil
}
