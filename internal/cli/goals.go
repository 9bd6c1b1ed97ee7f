package cli

import (
	"github.com/julianstephens/healthyme/internal/models"
	"github.com/julianstephens/healthyme/internal/record"
)

type CheckCmd struct {
	Goal string `arg:"" help:"Goal to mark done (water, exercise, sleep)."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	return setGoal(ctx, c.Goal, true)
}

type UncheckCmd struct {
	Goal string `arg:"" help:"Goal to mark not done (water, exercise, sleep)."`
}

func (c *UncheckCmd) Run(ctx *Context) error {
	return setGoal(ctx, c.Goal, false)
}

func setGoal(ctx *Context, name string, done bool) error {
	goal, err := models.ParseGoal(name)
	if err != nil {
		return err
	}

	saved, err := ctx.Store.SetGoal(goal, done)
	if err != nil {
		return err
	}

	state := "not done"
	if done {
		state = "done"
	}
	ctx.printf("Marked %s as %s.\n", goal.Label(), state)
	ctx.println(record.MessageFor(saved))
	return nil
}
