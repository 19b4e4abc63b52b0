// Package ui renders todo collections for the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style
	Frame                                         lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymEdit, SymCursor       string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// NewTheme builds the named theme ("classic", "neon" or "mono") on r.
// Unknown names fall back to classic. A nil r uses the default renderer.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := r.NewStyle

	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    s().Foreground(lipgloss.Color("8")),
			Accent:   s().Foreground(lipgloss.Color("14")),
			Success:  s().Foreground(lipgloss.Color("10")),
			Error:    s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("11")),
			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Foreground(lipgloss.Color("13")),
			Help:     s().Faint(true),
			Frame:    s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymEdit: "✎", SymCursor: "❯ ",
		}
	case "mono":
		return Theme{
			Name:     "mono",
			Title:    s(),
			Muted:    s(),
			Accent:   s(),
			Success:  s(),
			Error:    s(),
			Pending:  s(),
			Done:     s(),
			Selected: s(),
			Help:     s(),
			Frame:    s().Border(asciiBorder).Padding(0, 1),

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymEdit: "*", SymCursor: "> ",
		}
	default:
		return Theme{
			Name:     "classic",
			Title:    s().Bold(true),
			Muted:    s().Faint(true),
			Accent:   s().Foreground(lipgloss.Color("12")),
			Success:  s().Foreground(lipgloss.Color("42")),
			Error:    s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("214")),
			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Reverse(true),
			Help:     s().Faint(true),
			Frame:    s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymEdit: "✎", SymCursor: "> ",
		}
	}
}

// Box returns the checkbox symbol for done.
func (t Theme) Box(done bool) string {
	if done {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
