// Package app is the folio root model: the Elm-architecture skeleton that
// owns the loading gate, the scrolling page of sections, the theme
// controller, and the paper detail modal.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/content"
)

// ContentLoadedMsg carries the parsed portfolio back into the update loop.
// Err is non-nil when the content file could not be read or parsed; the
// model then falls back to the embedded default.
type ContentLoadedMsg struct {
	Portfolio *content.Portfolio
	Err       error
}

// FrameMsg drives the render frame: coalesced scroll publication and the
// back-to-top check happen once per frame, never per input event.
type FrameMsg struct {
	Time time.Time
}

// FrameCmd schedules the next frame tick.
func FrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// LoadContentCmd parses the portfolio file off the update loop and delivers
// the result as a ContentLoadedMsg.
func LoadContentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := content.Load(path)
		return ContentLoadedMsg{Portfolio: p, Err: err}
	}
}
