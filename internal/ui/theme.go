package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// Styles are bound to a renderer for one output, so colour is dropped
// automatically when that output is not a terminal or NO_COLOR is set.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Packed, Selected                              lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string

	r *lipgloss.Renderer
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme builds the named theme for output w. Unknown names get classic.
func NewTheme(name string, w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())

	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        r.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("11")),
			Packed:       r.NewStyle().Faint(true).Strikethrough(true),
			Selected:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			r: r,
		}
	case "mono":
		r.SetColorProfile(termenv.Ascii)
		plain := r.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Packed:       plain,
			Selected:     plain,
			Border:       lipgloss.ASCIIBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			r: r,
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        r.NewStyle().Bold(true),
			Muted:        r.NewStyle().Faint(true),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("214")),
			Packed:       r.NewStyle().Faint(true).Strikethrough(true),
			Selected:     r.NewStyle().Bold(true).Reverse(true),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			r: r,
		}
	}
}

// NewStyle returns a blank style bound to the theme's renderer.
func (t Theme) NewStyle() lipgloss.Style {
	if t.r == nil {
		return lipgloss.NewStyle()
	}
	return t.r.NewStyle()
}

// Frame is the bordered box used for panels and the TUI shell.
func (t Theme) Frame() lipgloss.Style {
	return t.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
