package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the rendered cell width of a string, ignoring ANSI escapes.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts a string to at most width cells, appending an ellipsis when
// anything was removed. ANSI escapes are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads a string with spaces to exactly width cells. Strings wider
// than width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Wrap breaks a paragraph into lines of at most width cells on word
// boundaries. Words longer than the width get a line of their own.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			if ansi.StringWidth(line)+1+ansi.StringWidth(w) <= width {
				line += " " + w
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
