package cli

import (
	"strings"

	"github.com/julianstephens/healthyme/internal/constants"
)

type NotesCmd struct {
	Text  []string `arg:"" optional:"" help:"Notes for today. Prints the current notes when omitted."`
	Clear bool     `help:"Remove today's notes."`
}

func (c *NotesCmd) Run(ctx *Context) error {
	if !c.Clear && len(c.Text) == 0 {
		today, _ := ctx.Store.Load()
		if notes := today.NotesText(); notes != "" {
			ctx.println(notes)
		} else {
			ctx.println("No notes for today.")
		}
		return nil
	}

	text := strings.Join(c.Text, " ")
	if c.Clear {
		text = ""
	}
	if _, err := ctx.Store.SetNotes(text); err != nil {
		return err
	}

	if c.Clear {
		ctx.println("Notes cleared.")
	} else {
		ctx.println(constants.MessageNotesSaved)
	}
	return nil
}
