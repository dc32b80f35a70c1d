package sections

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Papers is the research-paper listing. Rows are selectable; the selected
// paper opens in a detail modal. Each row is zone-marked so mouse clicks
// can select and open it.
type Papers struct {
	papers   []content.Paper
	selected int
	zones    *zone.Manager
}

// NewPapers creates the paper listing. zones may be nil when mouse support
// is off.
func NewPapers(papers []content.Paper, zones *zone.Manager) *Papers {
	return &Papers{papers: papers, zones: zones}
}

// ID returns the anchor name.
func (p *Papers) ID() string { return "papers" }

// Title returns the heading.
func (p *Papers) Title() string { return "Papers" }

// Len returns the number of papers.
func (p *Papers) Len() int { return len(p.papers) }

// Selected returns the currently selected paper index.
func (p *Papers) Selected() int { return p.selected }

// SelectedPaper returns the selected record, or false when the list is empty.
func (p *Papers) SelectedPaper() (content.Paper, bool) {
	if len(p.papers) == 0 {
		return content.Paper{}, false
	}
	return p.papers[p.selected], true
}

// Select moves the selection to index i, clamped to the list bounds.
func (p *Papers) Select(i int) {
	if len(p.papers) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.papers) {
		i = len(p.papers) - 1
	}
	p.selected = i
}

// MoveSelection shifts the selection by delta, clamped.
func (p *Papers) MoveSelection(delta int) {
	p.Select(p.selected + delta)
}

// ZoneID returns the bubblezone mark id for row i.
func (p *Papers) ZoneID(i int) string {
	return fmt.Sprintf("paper-%d", i)
}

// Render draws the paper list.
func (p *Papers) Render(st theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(heading(st, p.Title(), width))

	if len(p.papers) == 0 {
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("No publications yet."))
		return b.String()
	}

	for i, paper := range p.papers {
		b.WriteString("\n")

		year := "    "
		if paper.Year != 0 {
			year = fmt.Sprintf("%d", paper.Year)
		}
		row := fmt.Sprintf("%s  %s", year, paper.Title)
		if len(paper.Tags) > 0 {
			row += "  " + "[" + strings.Join(paper.Tags, ", ") + "]"
		}
		row = components.Truncate(row, width)

		if i == p.selected {
			row = st.Selected.Render(components.PadRight(row, width))
		} else {
			row = st.Body.Render(row)
		}
		if p.zones != nil {
			row = p.zones.Mark(p.ZoneID(i), row)
		}
		b.WriteString(row)
	}

	b.WriteString("\n")
	b.WriteString(st.Dim.Render("enter: details"))
	return b.String()
}

// RenderDetail draws the modal body for the selected paper at the given
// width. The caller wraps it in the modal frame.
func (p *Papers) RenderDetail(st theme.Styles, width int) string {
	paper, ok := p.SelectedPaper()
	if !ok {
		return ""
	}

	var lines []string
	for _, l := range components.Wrap(paper.Title, width) {
		lines = append(lines, st.Heading.Render(l))
	}

	if len(paper.Authors) > 0 {
		lines = append(lines, st.Body.Render(components.Truncate(strings.Join(paper.Authors, ", "), width)))
	}

	meta := paper.Venue
	if paper.Year != 0 {
		if meta != "" {
			meta += " "
		}
		meta += fmt.Sprintf("%d", paper.Year)
	}
	if meta != "" {
		lines = append(lines, st.Dim.Render(meta))
	}

	if paper.Abstract != "" {
		lines = append(lines, "")
		for _, l := range components.Wrap(paper.Abstract, width) {
			lines = append(lines, st.Body.Render(l))
		}
	}
	if paper.PDFURL != "" {
		lines = append(lines, "", st.Link.Render("PDF ↗ "+paper.PDFURL))
	}

	return strings.Join(lines, "\n")
}
