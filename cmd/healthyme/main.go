package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/healthyme/internal/cli"
	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/errors"
	"github.com/julianstephens/healthyme/internal/logger"
	"github.com/julianstephens/healthyme/internal/record"
	"github.com/julianstephens/healthyme/internal/storage"
	"github.com/julianstephens/healthyme/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Data     string `help:"Data file path. A .db or .sqlite extension selects SQLite storage." env:"HEALTHYME_DATA" default:"${data_path}"`
	Timezone string `help:"IANA timezone used to decide what 'today' is." env:"HEALTHYME_TIMEZONE" default:"${timezone}"`
	Debug    bool   `help:"Enable debug logging to stderr." env:"HEALTHYME_DEBUG"`

	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive checklist." default:"1"`
	Status  cli.StatusCmd  `cmd:"" help:"Show today's checklist."`
	Check   cli.CheckCmd   `cmd:"" help:"Mark a goal as done."`
	Uncheck cli.UncheckCmd `cmd:"" help:"Mark a goal as not done."`
	Mood    cli.MoodCmd    `cmd:"" help:"Record today's mood."`
	Notes   cli.NotesCmd   `cmd:"" help:"Show or set today's notes."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show statistics for the saved record."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily health habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":   constants.Version,
			"data_path": constants.DefaultDataPath,
			"timezone":  constants.DefaultTimezone,
		},
	)

	dataPath, err := storage.ExpandPath(CLI.Data)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(dataPath),
	}); err != nil {
		// Logging is optional; commands still work without it
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	opts := []record.Option{}
	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		// doctor reports the bad timezone itself
		if ctx.Command() != "doctor" {
			errors.Fatal(err)
		}
	} else {
		opts = append(opts, record.WithLocation(loc))
	}

	store := record.New(storage.Open(dataPath), opts...)
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Config: cli.Config{
			DataPath: dataPath,
			Timezone: CLI.Timezone,
			Debug:    CLI.Debug,
		},
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
