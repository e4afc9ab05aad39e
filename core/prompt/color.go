package prompt

import (
	"github.com/fatih/color"
	"github.com/pipeshell/psh/core/config"
)

var (
	ColorGreen    = color.New(color.FgGreen)
	ColorBlue     = color.New(color.FgBlue)
	ColorBoldCyan = color.New(color.FgCyan, color.Bold)
	ColorRed      = color.New(color.FgRed)
)

// ColorPrinter decides whether output is colored.
type ColorPrinter struct {
	mode       string
	isTerminal bool
}

// NewColorPrinter creates a printer for one of the config.Color* modes,
// auto colors only when writing to a terminal.
func NewColorPrinter(mode string, isTerminal bool) *ColorPrinter {
	return &ColorPrinter{mode: mode, isTerminal: isTerminal}
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c == nil || c.mode == config.ColorNever:
		return false
	case c.mode == config.ColorAlways:
		return true
	default:
		return c.isTerminal
	}
}

func (c *ColorPrinter) Sprint(col *color.Color, s string) string {
	if !c.ShouldColor() {
		return s
	}

	// Colors are package level, copy so enabling doesn't leak to other users.
	forced := *col
	forced.EnableColor()
	return forced.Sprint(s)
}
