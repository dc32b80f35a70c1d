package sections

import (
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Bio is the biography section.
type Bio struct {
	text string
}

// NewBio creates the biography section.
func NewBio(text string) *Bio {
	return &Bio{text: text}
}

func (b *Bio) ID() string    { return "bio" }
func (b *Bio) Title() string { return "About" }

// Render draws the wrapped biography.
func (b *Bio) Render(st theme.Styles, width int) string {
	var sb strings.Builder
	sb.WriteString(heading(st, b.Title(), width))
	for _, l := range components.Wrap(b.text, width) {
		sb.WriteString("\n")
		sb.WriteString(st.Body.Render(l))
	}
	return sb.String()
}
