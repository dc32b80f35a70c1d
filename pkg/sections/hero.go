package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Hero is the banner at the top of the page: name, title, tagline, and the
// portrait once its asynchronous render arrives.
type Hero struct {
	profile  content.Profile
	portrait string // escape-sequence art, set when the async render lands
}

// NewHero creates the hero section.
func NewHero(p content.Profile) *Hero {
	return &Hero{profile: p}
}

// ID returns the anchor name.
func (h *Hero) ID() string { return "hero" }

// Title returns the heading; the hero renders without one.
func (h *Hero) Title() string { return "" }

// SetPortrait installs the rendered portrait art. An empty string keeps the
// text-only layout.
func (h *Hero) SetPortrait(art string) {
	h.portrait = art
}

// Render draws the banner.
func (h *Hero) Render(st theme.Styles, width int) string {
	var lines []string

	name := st.Heading.Render(h.profile.Name)
	lines = append(lines, name)

	if h.profile.Title != "" {
		role := h.profile.Title
		if h.profile.Affiliation != "" {
			role += " · " + h.profile.Affiliation
		}
		lines = append(lines, st.Body.Render(components.Truncate(role, width)))
	}
	if h.profile.Tagline != "" {
		lines = append(lines, "")
		for _, l := range components.Wrap(h.profile.Tagline, width) {
			lines = append(lines, st.Dim.Render(l))
		}
	}
	if h.profile.CVURL != "" {
		lines = append(lines, "", st.Link.Render("CV ↗ "+h.profile.CVURL))
	}

	text := strings.Join(lines, "\n")
	if h.portrait == "" {
		return text
	}

	// Portrait to the left of the text block when it fits.
	return lipgloss.JoinHorizontal(lipgloss.Top, h.portrait, "  ", text)
}
