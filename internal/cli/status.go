package cli

import (
	"github.com/julianstephens/healthyme/internal/record"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	today, _ := ctx.Store.Load()

	ctx.printf("HealthyMe - %s\n\n", today.Date)
	ctx.println(formatChecklist(today))
	if mood := today.MoodLabel(); mood != "" {
		ctx.printf("\nMood: %s\n", mood)
	}
	if notes := today.NotesText(); notes != "" {
		ctx.printf("Notes: %s\n", notes)
	}
	ctx.printf("\n%s\n", record.MessageFor(today))
	return nil
}
