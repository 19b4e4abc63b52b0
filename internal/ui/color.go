package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a lipgloss renderer for w. Color is stripped when
// noColor is set or w is not a terminal.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor || !IsTTY(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
