package sections

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// skillBarWidth is the gauge width for one skill level bar.
const skillBarWidth = 12

// Skills is the skills grid: one titled group per column of the content,
// rendered as label-aligned level bars.
type Skills struct {
	groups []content.SkillGroup
}

// NewSkills creates the skills section.
func NewSkills(groups []content.SkillGroup) *Skills {
	return &Skills{groups: groups}
}

func (s *Skills) ID() string    { return "skills" }
func (s *Skills) Title() string { return "Skills" }

// Render draws the grid.
func (s *Skills) Render(st theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(heading(st, s.Title(), width))

	for gi, group := range s.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(st.Accent.Render(group.Group))

		labelW := 0
		for _, item := range group.Items {
			if w := components.Width(item.Name); w > labelW {
				labelW = w
			}
		}

		for _, item := range group.Items {
			b.WriteString("\n")
			b.WriteString(st.Body.Render(components.PadRight(item.Name, labelW+2)))
			b.WriteString(s.bar(st, item.Level))
			b.WriteString(st.Dim.Render(fmt.Sprintf(" %d/10", item.Level)))
		}
	}
	return b.String()
}

// bar renders one level bar using the palette's gauge colors.
func (s *Skills) bar(st theme.Styles, level int) string {
	g := components.NewGauge(components.GaugeStyle{
		Width:       skillBarWidth,
		FilledColor: st.GaugeFilled,
		EmptyColor:  st.GaugeEmpty,
	})
	return g.Render(float64(level), 10, 0)
}
