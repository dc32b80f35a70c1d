package components

import (
	"strings"
	"testing"
)

func TestGaugeEmptyAndFull(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, FilledColor: "#ff0000", EmptyColor: "#222222"})

	// An empty bar renders all ten cells in the empty color.
	empty := g.Render(0, 10, 0)
	if strings.Contains(empty, "\x1b[38;2;255;0;0m") {
		t.Errorf("empty bar used the filled color: %q", empty)
	}

	full := g.Render(10, 10, 0)
	if strings.Count(full, string(gaugeBlocks[8])) != 10 {
		t.Errorf("full bar has %d full blocks, want 10", strings.Count(full, string(gaugeBlocks[8])))
	}
	if strings.Contains(full, "\x1b[38;2;34;34;34m") {
		t.Errorf("full bar used the empty color: %q", full)
	}
}

func TestGaugeSubCellPrecision(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10})
	// 5.5/10 at width 10 = 44 eighths: 5 full cells plus a 4/8 partial.
	out := g.Render(5.5, 10, 0)
	if !strings.Contains(out, string(gaugeBlocks[4])) {
		t.Errorf("expected a 4/8 partial block in %q", out)
	}
}

func TestGaugeShowPercent(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 10, ShowPercent: true})
	out := g.Render(73, 100, 0)
	if !strings.HasSuffix(out, " 73%") {
		t.Errorf("percent label missing: %q", out)
	}
}

func TestGaugeClampsRatio(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 5, ShowPercent: true})
	if out := g.Render(20, 10, 0); !strings.HasSuffix(out, " 100%") {
		t.Errorf("overfull bar = %q", out)
	}
	if out := g.Render(-3, 10, 0); !strings.HasSuffix(out, " 0%") {
		t.Errorf("negative bar = %q", out)
	}
}

func TestGaugeColors(t *testing.T) {
	g := NewGauge(GaugeStyle{Width: 4, FilledColor: "#ff0000", EmptyColor: "#003300"})
	out := g.Render(2, 4, 0)
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("filled color escape missing in %q", out)
	}
	if !strings.Contains(out, "\x1b[38;2;0;51;0m") {
		t.Errorf("empty color escape missing in %q", out)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := parseHex("#1a2b3c")
	if !ok || r != 0x1a || g != 0x2b || b != 0x3c {
		t.Errorf("parseHex = %d,%d,%d,%v", r, g, b, ok)
	}
	for _, bad := range []string{"", "#fff", "1a2b3c", "#zzzzzz"} {
		if _, _, _, ok := parseHex(bad); ok {
			t.Errorf("parseHex accepted %q", bad)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 20); got != "hello world" {
		t.Errorf("Truncate no-op = %q", got)
	}
	got := Truncate("hello world", 8)
	if Width(got) > 8 {
		t.Errorf("Truncate result %q wider than 8", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate result %q missing ellipsis", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate to 0 = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight shortened a wide string: %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		if Width(l) > 10 {
			t.Errorf("line %q wider than 10", l)
		}
	}
	joined := strings.Join(lines, " ")
	if joined != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("Wrap lost words: %q", joined)
	}

	if lines := Wrap("", 10); len(lines) != 1 || lines[0] != "" {
		t.Errorf("Wrap(\"\") = %v", lines)
	}

	// A word longer than the width gets its own line.
	lines = Wrap("a supercalifragilistic b", 5)
	var found bool
	for _, l := range lines {
		if l == "supercalifragilistic" {
			found = true
		}
	}
	if !found {
		t.Errorf("long word split unexpectedly: %v", lines)
	}
}
