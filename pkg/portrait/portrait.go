// Package portrait loads the hero portrait and renders it to terminal
// escape sequences. Rendering happens off the update loop as a bubbletea
// command; the result message feeds the loading gate whether the render
// succeeded or not, because a missing picture must never hold the page.
package portrait

import (
	"fmt"
	"image"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/folio/pkg/terminal"
)

// Renderer converts images to terminal output for one detected protocol.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
}

// NewRenderer builds a renderer for the given protocol and terminal size.
func NewRenderer(proto terminal.GraphicsProtocol, size terminal.Size) *Renderer {
	return &Renderer{
		protocol: proto,
		cellW:    size.CellW,
		cellH:    size.CellH,
	}
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// RenderFile loads, orients, resizes, and renders an image file into an
// escape-sequence string sized at most maxCols x maxRows cells.
func (r *Renderer) RenderFile(path string, maxCols, maxRows int) (string, error) {
	if r.protocol == terminal.ProtocolNone {
		return "", fmt.Errorf("portrait: no graphics protocol available")
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("portrait: open %s: %w", path, err)
	}
	return r.Render(img, maxCols, maxRows)
}

// Render renders an already-decoded image at most maxCols x maxRows cells.
func (r *Renderer) Render(img image.Image, maxCols, maxRows int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("portrait: nil image")
	}

	resized := resizeToFit(img, maxCols, maxRows, r.cellW, r.cellH)

	switch r.protocol {
	case terminal.ProtocolKitty:
		return renderTermimg(resized, termimg.Kitty, maxCols, maxRows)
	case terminal.ProtocolITerm2:
		return renderTermimg(resized, termimg.ITerm2, maxCols, maxRows)
	case terminal.ProtocolSixel:
		return renderTermimg(resized, termimg.Sixel, maxCols, maxRows)
	case terminal.ProtocolHalfblocks:
		return renderHalfblocks(resized)
	default:
		return renderHalfblocks(resized)
	}
}

// renderTermimg delegates to go-termimg for the pixel protocols.
func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("portrait: go-termimg rejected the image")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}
