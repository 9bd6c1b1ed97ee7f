package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/healthyme/internal/models"
	"github.com/julianstephens/healthyme/internal/record"
)

// Config holds the resolved global flags
type Config struct {
	DataPath string
	Timezone string
	Debug    bool
}

type Context struct {
	Store  *record.Store
	Config Config
	// Out receives command output; nil means stdout
	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// formatChecklist renders the three goals as checkbox lines
func formatChecklist(r models.DailyRecord) string {
	var lines []string
	for _, g := range models.Goals {
		box := "[ ]"
		if r.Done(g) {
			box = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s", box, g.Prompt()))
	}
	return strings.Join(lines, "\n")
}
