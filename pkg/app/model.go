package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/folio/pkg/config"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/portrait"
	"gitlab.com/tinyland/lab/folio/pkg/readygate"
	"gitlab.com/tinyland/lab/folio/pkg/scrolltrack"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// phase is the model's top-level state.
type phase int

const (
	phaseLoading phase = iota
	phaseReady
)

// defaultFrameRate is used when the config leaves frame_rate at zero.
const defaultFrameRate = 30

// chrome rows reserved outside the viewport: the scroll indicator on top
// and the status bar on the bottom.
const chromeRows = 2

// Model is the folio root bubbletea model.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	themes *theme.Controller
	styles theme.Styles
	zones  *zone.Manager

	gate    *readygate.Gate
	tracker *scrolltrack.Tracker

	vp        viewport.Model
	spin      spinner.Model
	scrollBar progress.Model

	renderer *portrait.Renderer

	portfolio *content.Portfolio
	page      []sections.Section
	hero      *sections.Hero
	papers    *sections.Papers
	anchors   []string
	offsets   map[string]int
	anchorIdx int

	phase     phase
	modalOpen bool
	width     int
	height    int
	scroll    scrolltrack.State
	frame     time.Duration
	status    string
}

// New assembles the root model. renderer may be nil when portrait support
// is off; zones may be nil when mouse support is off.
func New(cfg *config.Config, themes *theme.Controller, renderer *portrait.Renderer, zones *zone.Manager, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	fps := cfg.Display.FrameRate
	if fps <= 0 {
		fps = defaultFrameRate
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	bar := progress.New(progress.WithoutPercentage())

	return Model{
		cfg:       cfg,
		logger:    logger,
		themes:    themes,
		styles:    theme.NewStyles(paletteFor(cfg, themes)),
		zones:     zones,
		gate:      readygate.New(cfg.GateOptions()),
		tracker:   scrolltrack.New(cfg.BackToTopRows()),
		vp:        viewport.New(0, 0),
		spin:      sp,
		scrollBar: bar,
		renderer:  renderer,
		offsets:   map[string]int{},
		frame:     time.Second / time.Duration(fps),
	}
}

// Init starts the gate timers, the async content load, the spinner, and the
// frame ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.gate.Init(),
		LoadContentCmd(m.cfg.Content.Path),
		m.spin.Tick,
		FrameCmd(m.frame),
	)
}

// Ready reports whether the loading overlay has been dismissed.
func (m Model) Ready() bool { return m.phase == phaseReady }

// ModalOpen reports whether the paper detail modal is showing.
func (m Model) ModalOpen() bool { return m.modalOpen }

// Mode returns the active theme mode.
func (m Model) Mode() theme.Mode { return m.themes.Mode() }

// CurrentAnchor returns the section id tab navigation last jumped to.
func (m Model) CurrentAnchor() string {
	if len(m.anchors) == 0 {
		return ""
	}
	return m.anchors[m.anchorIdx]
}

// ScrollState returns the last published scroll state.
func (m Model) ScrollState() scrolltrack.State { return m.scroll }

// paletteFor resolves the active palette. A configured palette name pins
// that palette; a bare mode name (or none) follows the controller's mode so
// the toggle keeps working.
func paletteFor(cfg *config.Config, themes *theme.Controller) theme.Palette {
	name := cfg.Theme.Name
	if _, isMode := theme.ParseMode(name); isMode || name == "" {
		return themes.Palette()
	}
	return theme.Get(name, themes.Mode())
}

// portraitPath resolves the portrait image path: the config overrides the
// content profile.
func (m Model) portraitPath() string {
	if !m.cfg.Display.PortraitEnabled {
		return ""
	}
	if m.cfg.Display.Portrait != "" {
		return m.cfg.Display.Portrait
	}
	if m.portfolio != nil {
		return m.portfolio.Profile.Portrait
	}
	return ""
}
