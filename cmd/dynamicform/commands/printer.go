package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

type printer struct {
	w io.Writer
}

func (p printer) success(format string, a ...any) {
	green.Fprintf(p.w, "✓ %s\n", fmt.Sprintf(format, a...))
}

func (p printer) step(format string, a ...any) {
	cyan.Fprintf(p.w, "→ %s\n", fmt.Sprintf(format, a...))
}

func (p printer) warning(format string, a ...any) {
	yellow.Fprintf(p.w, "! %s\n", fmt.Sprintf(format, a...))
}

// fail prints title and explanation and returns an error carrying title, so
// cobra can stay silent.
func (p printer) fail(title string, err error) error {
	red.Fprintf(p.w, "%s\n", title)
	if err != nil {
		fmt.Fprintf(p.w, "  %v\n", err)
	}
	return fmt.Errorf("%s: %w", title, err)
}
