package portrait

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg carries the rendered portrait (or the failure) back into the
// update loop. Err is informational only: receivers treat a failed load the
// same as a finished one.
type LoadedMsg struct {
	Art string
	Err error
}

// LoadCmd renders the portrait file off the update loop and delivers a
// LoadedMsg when done. An empty path resolves immediately with empty art,
// which keeps the hero layout stable for text-only setups.
func LoadCmd(r *Renderer, path string, maxCols, maxRows int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return LoadedMsg{}
		}
		art, err := r.RenderFile(path, maxCols, maxRows)
		return LoadedMsg{Art: art, Err: err}
	}
}
