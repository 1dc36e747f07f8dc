// Package conout renders user-facing output: status banners, detail
// blocks and transfer progress. Logging is a separate concern handled
// by pkg/slog.
package conout

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/negative-space-software/fileshare-cli/pkg/colors"

	"golang.org/x/term"
)

const ruleWidth = 60

type consoleColorSet struct {
	ok, info, warn, err, system, reset []byte
}

type Console struct {
	out io.Writer
	col consoleColorSet
}

// NewConsole builds a Console writing to out. Colors are enabled only
// when out is a terminal.
func NewConsole(out io.Writer) *Console {
	c := &Console{out: out}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.col = consoleColorSet{
			ok:     colors.Console.Ok,
			info:   colors.Console.Info,
			warn:   colors.Console.Warn,
			err:    colors.Console.Error,
			system: colors.Console.System,
			reset:  colors.Reset,
		}
	}
	return c
}

// WithoutColors disables color output regardless of the terminal
func (c *Console) WithoutColors() {
	c.col = consoleColorSet{}
}

func (c *Console) PrintlnInfoStep(m string, args ...interface{}) {
	msg := fmt.Sprintf(m, args...)
	fmt.Fprintf(c.out, "[%s*%s] %s\n", c.col.info, c.col.reset, msg)
}

func (c *Console) PrintlnOkStep(m string, args ...interface{}) {
	msg := fmt.Sprintf(m, args...)
	fmt.Fprintf(c.out, "[%s+%s] %s\n", c.col.ok, c.col.reset, msg)
}

func (c *Console) PrintlnWarnStep(m string, args ...interface{}) {
	msg := fmt.Sprintf(m, args...)
	fmt.Fprintf(c.out, "[%s!%s] %s\n", c.col.warn, c.col.reset, msg)
}

func (c *Console) PrintlnErrorStep(m string, args ...interface{}) {
	msg := fmt.Sprintf(m, args...)
	fmt.Fprintf(c.out, "[%s-%s] %s\n", c.col.err, c.col.reset, msg)
}

func (c *Console) Println(m string) {
	fmt.Fprintf(c.out, "%s\n", m)
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Rule prints a fixed-width separator line
func (c *Console) Rule() {
	fmt.Fprintf(c.out, "%s%s%s\n", c.col.system, strings.Repeat("-", ruleWidth), c.col.reset)
}

// Details renders a labeled detail block under a title, with labels
// aligned in a column
func (c *Console) Details(title string, rows [][2]string) {
	fmt.Fprintf(c.out, "%s%s%s\n", c.col.system, title, c.col.reset)
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "  %s:\t%s\n", row[0], row[1])
	}
	_ = tw.Flush()
}
