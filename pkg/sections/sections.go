// Package sections renders the anchored blocks of the portfolio page: hero,
// papers, bio, skills, timeline, and contact. Sections are stateless
// renderers over the read-only content records; the one exception is the
// paper list's row selection.
package sections

import (
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Section is one anchored block of the page.
type Section interface {
	// ID is the stable anchor name used for navigation.
	ID() string
	// Title is the human heading shown above the block.
	Title() string
	// Render draws the section body at the given width.
	Render(st theme.Styles, width int) string
}

// heading renders the standard section heading with an underline rule.
func heading(st theme.Styles, title string, width int) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render(title))
	b.WriteByte('\n')
	rule := width
	if rule > 60 {
		rule = 60
	}
	if rule < 1 {
		rule = 1
	}
	b.WriteString(st.Dim.Render(strings.Repeat("─", rule)))
	return b.String()
}
