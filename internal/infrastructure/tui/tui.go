package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console prints user facing results, in color when writing to a terminal
type Console struct {
	out     io.Writer
	colored bool
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out, colored: IsTerminal(out)}
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) paint(attrs ...color.Attribute) *color.Color {
	p := color.New(attrs...)
	if c.colored {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p
}

// Fixed prints the confirmation for a rewritten file
func (c *Console) Fixed(name string) {
	c.paint(color.FgHiGreen).Fprintf(c.out, "✅ Fixed escaped quotes in %s\n", name)
}

// DryRun reports what a fix would change without having written anything
func (c *Console) DryRun(name string, replaced int) {
	c.paint(color.FgHiYellow, color.Bold).Fprint(c.out, "dry-run: ")
	c.paint(color.FgHiWhite).Fprintf(c.out, "%d escaped quote(s) would be replaced in %s\n", replaced, name)
}

// Line prints a plain line
func (c *Console) Line(a ...any) {
	fmt.Fprintln(c.out, a...)
}
