// Package components holds the small render helpers shared by the loading
// overlay and the page sections.
package components

import (
	"fmt"
	"math"
	"strings"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{
	' ',
	'▏', // ▏
	'▎', // ▎
	'▍', // ▍
	'▌', // ▌
	'▋', // ▋
	'▊', // ▊
	'▉', // ▉
	'█', // █
}

// GaugeStyle configures a horizontal bar gauge.
type GaugeStyle struct {
	Width       int    // bar width in cells
	ShowPercent bool   // append "73%" after the bar
	FilledColor string // hex color for the filled portion
	EmptyColor  string // hex color for the empty portion
}

// Gauge renders horizontal bars with sub-cell precision. It backs both the
// loading overlay's progress bar and the skill-level bars.
type Gauge struct {
	style GaugeStyle
}

// NewGauge creates a Gauge with the given style.
func NewGauge(style GaugeStyle) *Gauge {
	if style.Width <= 0 {
		style.Width = 20
	}
	if style.FilledColor == "" {
		style.FilledColor = "#4caf50"
	}
	if style.EmptyColor == "" {
		style.EmptyColor = "#333333"
	}
	return &Gauge{style: style}
}

// Render renders the bar for value out of maxValue at the given width.
// A non-positive width falls back to the style width.
func (g *Gauge) Render(value, maxValue float64, width int) string {
	if width <= 0 {
		width = g.style.Width
	}

	ratio := 0.0
	if maxValue > 0 {
		ratio = value / maxValue
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	var b strings.Builder
	b.WriteString(gaugeBar(ratio, width, g.style.FilledColor, g.style.EmptyColor))
	if g.style.ShowPercent {
		fmt.Fprintf(&b, " %d%%", int(math.Round(ratio*100)))
	}
	return b.String()
}

// gaugeBar builds the colored bar string with sub-cell precision.
func gaugeBar(ratio float64, width int, fillColor, emptyColor string) string {
	totalUnits := width * 8
	filledUnits := int(math.Round(ratio * float64(totalUnits)))
	if filledUnits < 0 {
		filledUnits = 0
	}
	if filledUnits > totalUnits {
		filledUnits = totalUnits
	}

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	emptyCells := width - fullCells
	if partialEighths > 0 {
		emptyCells--
	}
	if emptyCells < 0 {
		emptyCells = 0
	}

	var b strings.Builder
	if fullCells > 0 {
		b.WriteString(colorize(strings.Repeat(string(gaugeBlocks[8]), fullCells), fillColor))
	}
	if partialEighths > 0 {
		b.WriteString(colorize(string(gaugeBlocks[partialEighths]), fillColor))
	}
	if emptyCells > 0 {
		b.WriteString(colorize(strings.Repeat(string(gaugeBlocks[8]), emptyCells), emptyColor))
	}
	return b.String()
}

// colorize wraps text in a 24-bit foreground escape. Returns the text
// unchanged if the hex color is empty or malformed.
func colorize(text, hexColor string) string {
	r, g, b, ok := parseHex(hexColor)
	if !ok {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// parseHex parses "#RRGGBB" into component bytes.
func parseHex(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
