package sections

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Timeline is the CV section: positions newest-first, rendered as a
// year-ranged list.
type Timeline struct {
	entries []content.TimelineEntry
}

// NewTimeline creates the CV timeline section.
func NewTimeline(entries []content.TimelineEntry) *Timeline {
	return &Timeline{entries: entries}
}

func (t *Timeline) ID() string    { return "cv" }
func (t *Timeline) Title() string { return "CV" }

// Render draws the timeline.
func (t *Timeline) Render(st theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(heading(st, t.Title(), width))

	for _, e := range t.entries {
		end := e.End
		if end == "" {
			end = "now"
		}
		span := fmt.Sprintf("%s–%s", e.Start, end)

		b.WriteString("\n")
		b.WriteString(st.Accent.Render(components.PadRight(span, 11)))

		head := e.Title
		if e.Org != "" {
			head += ", " + e.Org
		}
		b.WriteString(st.Body.Render(components.Truncate(head, width-11)))

		if e.Detail != "" {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", 11))
			b.WriteString(st.Dim.Render(components.Truncate(e.Detail, width-11)))
		}
	}
	return b.String()
}
