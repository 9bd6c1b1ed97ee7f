package cli

import (
	"github.com/julianstephens/healthyme/internal/tui/components/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	saved, err := ctx.Store.Snapshot()
	ctx.println(stats.Summary(saved, err, ctx.Store.Today()))
	return nil
}
