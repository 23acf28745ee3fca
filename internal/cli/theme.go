package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain"
)

// palette holds the colors for one theme.
type palette struct {
	Accent  string
	Text    string
	Muted   string
	High    string
	Medium  string
	Low     string
	Done    string
	Overdue string
}

var (
	darkPalette = palette{
		Accent:  "#A5B4FC",
		Text:    "#E5E7EB",
		Muted:   "#9CA3AF",
		High:    "#FF6B6B",
		Medium:  "#F59E0B",
		Low:     "#7EE2B8",
		Done:    "#6B7280",
		Overdue: "#EF4444",
	}
	lightPalette = palette{
		Accent:  "#6B21A8",
		Text:    "#111827",
		Muted:   "#6B7280",
		High:    "#DC2626",
		Medium:  "#B45309",
		Low:     "#065F46",
		Done:    "#9CA3AF",
		Overdue: "#B91C1C",
	}
)

// Theme is the set of styles used to print tasks.
type Theme struct {
	Dark bool

	Header  lipgloss.Style
	Title   lipgloss.Style
	ID      lipgloss.Style
	Muted   lipgloss.Style
	Done    lipgloss.Style
	Tag     lipgloss.Style
	Overdue lipgloss.Style
	Rule    lipgloss.Style

	priorities map[domain.Priority]lipgloss.Style
}

// NewTheme builds the dark or light theme for output written to w. Color is
// dropped automatically when w is not a terminal.
func NewTheme(w io.Writer, dark bool) Theme {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(dark)

	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Theme{
		Dark: dark,

		Header: r.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Title: r.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Bold(true),
		ID: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Done: r.NewStyle().
			Foreground(lipgloss.Color(p.Done)).
			Strikethrough(true),
		Tag: r.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		Overdue: r.NewStyle().
			Foreground(lipgloss.Color(p.Overdue)).
			Bold(true),
		Rule: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),

		priorities: map[domain.Priority]lipgloss.Style{
			domain.PriorityHigh:   r.NewStyle().Foreground(lipgloss.Color(p.High)).Bold(true),
			domain.PriorityMedium: r.NewStyle().Foreground(lipgloss.Color(p.Medium)),
			domain.PriorityLow:    r.NewStyle().Foreground(lipgloss.Color(p.Low)),
		},
	}
}

// Priority returns the style for a priority badge.
func (t Theme) Priority(p domain.Priority) lipgloss.Style {
	if style, ok := t.priorities[p]; ok {
		return style
	}
	return t.Muted
}

// Name is the word accepted by `tb theme` for this theme.
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}
