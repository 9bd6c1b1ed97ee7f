package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/healthyme/internal/constants"
	"github.com/julianstephens/healthyme/internal/storage"
	"github.com/julianstephens/healthyme/internal/utils"
)

type DoctorCmd struct{}

// errWarning marks a check that reports a problem without failing the run
var errWarning = errors.New("warning")

type check struct {
	name string
	run  func(*Context) error
}

var doctorChecks = []check{
	{name: "Data file readable", run: checkDataFile},
	{name: "Record is current", run: checkRecordFresh},
	{name: "Data directory writable", run: checkDataDirWritable},
	{name: "Log directory present", run: checkLogDir},
	{name: "Timezone valid", run: checkTimezone},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	for _, c := range doctorChecks {
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errWarning):
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %v\n", errors.Unwrap(err))
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

// warning wraps msg so that errors.Is(err, errWarning) holds and Unwrap yields msg
type warning struct{ msg error }

func (w warning) Error() string        { return w.msg.Error() }
func (w warning) Unwrap() error        { return w.msg }
func (w warning) Is(target error) bool { return target == errWarning }

func warnf(format string, args ...interface{}) error {
	return warning{msg: fmt.Errorf(format, args...)}
}

func checkDataFile(ctx *Context) error {
	_, err := ctx.Store.Snapshot()
	if errors.Is(err, storage.ErrNotFound) {
		return warnf("no data saved yet at %s", ctx.Store.Path())
	}
	return err
}

func checkRecordFresh(ctx *Context) error {
	saved, err := ctx.Store.Snapshot()
	if err != nil {
		return warnf("no readable record to check")
	}
	today := ctx.Store.Today()
	if saved.Date == today {
		return nil
	}
	days, err := utils.DaysBetween(saved.Date, today)
	if err != nil {
		return err
	}
	if days < 0 {
		return fmt.Errorf("record is dated %s, after today (%s); check the clock and timezone", saved.Date, today)
	}
	return warnf("last saved %s (%d days ago); it resets on next load", saved.Date, days)
}

func checkDataDirWritable(ctx *Context) error {
	dir := filepath.Dir(ctx.Store.Path())
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return warnf("%s does not exist yet; it is created on first save", dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, constants.AppName+"-doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func checkLogDir(ctx *Context) error {
	dir := filepath.Join(filepath.Dir(ctx.Store.Path()), constants.LogDirName)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return warnf("%s not found; logging may be disabled", dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func checkTimezone(ctx *Context) error {
	if !utils.ValidateTimezone(ctx.Config.Timezone) {
		return fmt.Errorf("unknown timezone %q", ctx.Config.Timezone)
	}
	return nil
}
