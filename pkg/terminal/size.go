package terminal

import (
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
)

// Default cell pixel dimensions used when the terminal does not report
// pixel sizes. Common for 80-column terminals with standard fonts.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Size holds terminal dimensions in both character cells and pixels.
type Size struct {
	Cols   int // character columns
	Rows   int // character rows
	PixelW int // total pixel width (0 if unknown)
	PixelH int // total pixel height (0 if unknown)
	CellW  int // pixel width per cell
	CellH  int // pixel height per cell
}

// GetSize returns the current terminal dimensions. Strategies in order:
//  1. TIOCGWINSZ ioctl on stdout, then stderr (cells and, when the
//     emulator reports them, pixels)
//  2. x/term size query on stdout
//  3. COLUMNS/LINES environment variables
//  4. 80x24
//
// CellW/CellH always come back usable: defaults fill in when pixel
// dimensions are unavailable.
func GetSize() Size {
	var s Size
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s = sizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return withCellDefaults(s)
		}
	}

	if w, h, err := xterm.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return withCellDefaults(Size{Cols: w, Rows: h})
	}

	return withCellDefaults(sizeFromEnv())
}

// sizeFromEnv reads COLUMNS/LINES, defaulting to 80x24.
func sizeFromEnv() Size {
	s := Size{Cols: 80, Rows: 24}
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		s.Cols = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		s.Rows = v
	}
	return s
}

// withCellDefaults derives per-cell pixel sizes, falling back to defaults.
func withCellDefaults(s Size) Size {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	if s.CellW <= 0 {
		s.CellW = DefaultCellW
	}
	if s.CellH <= 0 {
		s.CellH = DefaultCellH
	}
	return s
}
