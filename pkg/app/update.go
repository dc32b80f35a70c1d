package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/portrait"
	"gitlab.com/tinyland/lab/folio/pkg/readygate"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// wheelLines is how many rows one wheel notch scrolls.
const wheelLines = 3

// portrait render bounds in cells.
const (
	portraitMaxCols = 24
	portraitMaxRows = 12
)

// Update is the single dispatch point for every event in the app.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - chromeRows
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.scrollBar.Width = msg.Width
		m.rebuildPage()
		return m, nil

	case ContentLoadedMsg:
		return m.handleContentLoaded(msg)

	case portrait.LoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("portrait render failed", "error", msg.Err)
		} else if m.hero != nil && msg.Art != "" {
			m.hero.SetPortrait(msg.Art)
			m.rebuildPage()
		}
		// The portrait precondition is met either way; a broken image
		// must not hold the page hostage.
		return m, m.gate.Update(readygate.SignalMsg{Signal: readygate.SignalPortrait})

	case readygate.SignalMsg:
		return m, m.gate.Update(msg)

	case readygate.ResolvedMsg:
		m.phase = phaseReady
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case FrameMsg:
		if st, changed := m.tracker.Frame(); changed {
			m.scroll = st
		}
		return m, FrameCmd(m.frame)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Whatever is left belongs to the gate's private timers.
	return m, m.gate.Update(msg)
}

// handleContentLoaded installs the portfolio, builds the page sections, and
// kicks off the portrait render.
func (m Model) handleContentLoaded(msg ContentLoadedMsg) (tea.Model, tea.Cmd) {
	p := msg.Portfolio
	if msg.Err != nil {
		m.logger.Warn("content load failed, using embedded default", "error", msg.Err)
		p, _ = content.Default()
	}
	if p == nil {
		p = &content.Portfolio{}
	}
	m.portfolio = p
	m.buildSections()
	m.rebuildPage()
	gateCmd := m.gate.Update(readygate.SignalMsg{Signal: readygate.SignalContent})

	path := m.portraitPath()
	if m.renderer == nil {
		path = ""
	}
	return m, tea.Batch(gateCmd, portrait.LoadCmd(m.renderer, path, portraitMaxCols, portraitMaxRows))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen {
		switch msg.String() {
		case "esc", "enter", "q":
			m.modalOpen = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "t":
		return m.toggleTheme(), nil
	case "tab":
		m.jumpAnchor(1)
		return m, nil
	case "shift+tab":
		m.jumpAnchor(-1)
		return m, nil
	case "g", "home":
		m.vp.GotoTop()
		m.anchorIdx = 0
		m.tracker.Observe(m.vp.YOffset)
		return m, nil
	case "G", "end":
		m.vp.GotoBottom()
		m.tracker.Observe(m.vp.YOffset)
		return m, nil
	case "n", "right":
		if m.papers != nil {
			m.papers.MoveSelection(1)
			m.rebuildPage()
		}
		return m, nil
	case "p", "left":
		if m.papers != nil {
			m.papers.MoveSelection(-1)
			m.rebuildPage()
		}
		return m, nil
	case "enter":
		if m.papers != nil {
			if _, ok := m.papers.SelectedPaper(); ok {
				m.modalOpen = true
			}
		}
		return m, nil
	}

	// Everything else is viewport movement: arrows, page keys, j/k.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	m.tracker.Observe(m.vp.YOffset)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.ScrollUp(wheelLines)
		m.tracker.Observe(m.vp.YOffset)

	case tea.MouseButtonWheelDown:
		m.vp.ScrollDown(wheelLines)
		m.tracker.Observe(m.vp.YOffset)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease || m.zones == nil || m.papers == nil || m.modalOpen {
			break
		}
		for i := 0; i < m.papers.Len(); i++ {
			if m.zones.Get(m.papers.ZoneID(i)).InBounds(msg) {
				m.papers.Select(i)
				m.modalOpen = true
				m.rebuildPage()
				break
			}
		}
	}
	return m, nil
}

// toggleTheme flips the mode, rebuilds the styles, and repaints the page.
func (m Model) toggleTheme() Model {
	mode := m.themes.Toggle()
	m.styles = theme.NewStyles(paletteFor(m.cfg, m.themes))
	m.rebuildPage()
	m.status = "theme: " + mode.String()
	return m
}

// buildSections constructs the page sections from the loaded portfolio.
func (m *Model) buildSections() {
	m.hero = sections.NewHero(m.portfolio.Profile)
	m.papers = sections.NewPapers(m.portfolio.Papers, m.zones)
	m.page = []sections.Section{
		m.hero,
		m.papers,
		sections.NewBio(m.portfolio.Bio),
		sections.NewSkills(m.portfolio.Skills),
		sections.NewTimeline(m.portfolio.Timeline),
		sections.NewContact(m.portfolio.Contact),
	}
	m.anchors = m.anchors[:0]
	for _, s := range m.page {
		m.anchors = append(m.anchors, s.ID())
	}
	m.anchorIdx = 0
}

// rebuildPage rerenders every section into the viewport content and records
// each section's line offset for anchor navigation.
func (m *Model) rebuildPage() {
	if len(m.page) == 0 || m.width <= 0 {
		return
	}
	bodyW := m.width - 2
	if bodyW < 20 {
		bodyW = 20
	}

	var b strings.Builder
	line := 0
	for i, s := range m.page {
		if i > 0 {
			b.WriteString("\n\n\n")
		}
		m.offsets[s.ID()] = line
		block := s.Render(m.styles, bodyW)
		b.WriteString(block)
		line += strings.Count(block, "\n") + 3
	}

	page := b.String()
	m.vp.SetContent(page)
	m.tracker.SetRange(strings.Count(page, "\n")+1, m.vp.Height)
	m.logger.Debug("page rebuilt", "lines", strings.Count(page, "\n")+1, "anchors", m.debugOffsets())
}
