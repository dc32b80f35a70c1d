package theme

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles derived from a palette. Sections render
// through these rather than hard-coding colors, so a toggle restyles the
// whole page from one place.
type Styles struct {
	Body      lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Heading   lipgloss.Style
	Link      lipgloss.Style
	Selected  lipgloss.Style
	Box       lipgloss.Style
	FocusBox  lipgloss.Style
	StatusBar lipgloss.Style

	// Raw hex colors for components that build their own escapes.
	GaugeFilled string
	GaugeEmpty  string
}

// NewStyles derives the style set from a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Heading)),
		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(p.Accent)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)).
			Background(lipgloss.Color(p.Highlight)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)),
		FocusBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderFocus)),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),

		GaugeFilled: p.GaugeFilled,
		GaugeEmpty:  p.GaugeEmpty,
	}
}
