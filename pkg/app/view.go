package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/folio/pkg/components"
)

// loadBarWidth is the loading overlay's progress bar width in cells.
const loadBarWidth = 30

// View renders the whole screen: the loading overlay until the gate
// resolves, then the scrolling page with its chrome.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var out string
	switch {
	case m.phase == phaseLoading:
		out = m.viewLoading()
	case m.modalOpen:
		out = m.viewModal()
	default:
		out = m.viewPage()
	}

	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// viewLoading draws the centered loading overlay: spinner, name, and the
// animated progress bar.
func (m Model) viewLoading() string {
	name := "folio"
	if m.portfolio != nil && m.portfolio.Profile.Name != "" {
		name = m.portfolio.Profile.Name
	}

	bar := components.NewGauge(components.GaugeStyle{
		Width:       loadBarWidth,
		ShowPercent: true,
		FilledColor: m.styles.GaugeFilled,
		EmptyColor:  m.styles.GaugeEmpty,
	})

	inner := strings.Join([]string{
		m.spin.View() + " " + m.styles.Heading.Render(name),
		"",
		bar.Render(float64(m.gate.Progress()), 100, 0),
	}, "\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.styles.Box.Render(inner))
}

// viewPage draws the ready page: scroll indicator, viewport, status bar.
func (m Model) viewPage() string {
	var b strings.Builder
	b.WriteString(m.scrollBar.ViewAs(m.scroll.Progress))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	return b.String()
}

// viewModal draws the paper detail modal centered over a blank backdrop.
func (m Model) viewModal() string {
	w := m.width - 8
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}

	body := m.papers.RenderDetail(m.styles, w)
	body += "\n\n" + m.styles.Dim.Render("esc: close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.styles.FocusBox.Width(w+2).Render(body))
}

// viewStatusBar draws the bottom hint line, truncated to the width.
func (m Model) viewStatusBar() string {
	hints := "tab:section  n/p:paper  enter:details  t:theme  g:top  q:quit"
	if m.scroll.ShowBackToTop {
		hints = "↑ g:top  |  " + hints
	}
	// The toggle note is transient: it rides the theme transition window
	// and disappears when the cleanup timer clears it.
	if m.status != "" && m.themes.Transitioning() {
		hints = m.status + "  |  " + hints
	}
	line := components.PadRight(components.Truncate(hints, m.width), m.width)
	return m.styles.StatusBar.Render(line)
}

// Anchor offset debug line, used by the verbose log rather than the UI.
func (m Model) debugOffsets() string {
	parts := make([]string, 0, len(m.anchors))
	for _, id := range m.anchors {
		parts = append(parts, fmt.Sprintf("%s=%d", id, m.offsets[id]))
	}
	return strings.Join(parts, " ")
}
