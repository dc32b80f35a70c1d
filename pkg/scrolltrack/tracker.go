// Package scrolltrack throttles raw scroll events to frame granularity.
//
// Wheel and key events can arrive far faster than the screen repaints. The
// tracker records every raw offset but publishes a derived state at most
// once per frame tick, so downstream consumers (the header progress bar, the
// back-to-top hint) pay a bounded cost no matter how hard the user scrolls.
package scrolltrack

// DefaultBackToTopRows is the scroll depth at which the back-to-top hint
// appears, in terminal rows. Roughly a screen and a half on a typical
// 80x24 terminal.
const DefaultBackToTopRows = 18

// State is the published scroll-derived state. Progress maps the offset onto
// [0, 1] across the scrollable range; no smoothing is applied here, easing
// is purely the renderer's concern.
type State struct {
	Offset        int
	Progress      float64
	ShowBackToTop bool
}

// Tracker coalesces raw scroll offsets into one publish per frame.
// Zero value is not usable; construct with New.
type Tracker struct {
	threshold int

	offset     int // latest raw offset, rows
	maxScroll  int // content height minus viewport height
	pending    bool
	state      State
}

// New creates a tracker with the given back-to-top threshold in rows.
// A non-positive threshold falls back to DefaultBackToTopRows.
func New(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultBackToTopRows
	}
	return &Tracker{threshold: threshold}
}

// SetRange records the scrollable range: total content lines and the visible
// viewport height. Content that fits on screen reports zero progress.
func (t *Tracker) SetRange(contentLines, viewportLines int) {
	max := contentLines - viewportLines
	if max < 0 {
		max = 0
	}
	if max != t.maxScroll {
		t.maxScroll = max
		t.pending = true
	}
}

// Observe records a raw scroll offset. Any number of observations may land
// between two frames; only the latest is published.
func (t *Tracker) Observe(offset int) {
	if offset < 0 {
		offset = 0
	}
	t.offset = offset
	t.pending = true
}

// Frame publishes the derived state if any observation arrived since the
// previous frame. It returns the current state and whether a publish
// happened this frame. At most one publish occurs per Frame call.
func (t *Tracker) Frame() (State, bool) {
	if !t.pending {
		return t.state, false
	}
	t.pending = false

	s := State{
		Offset:        t.offset,
		ShowBackToTop: t.offset >= t.threshold,
	}
	if t.maxScroll > 0 {
		s.Progress = float64(t.offset) / float64(t.maxScroll)
		if s.Progress > 1 {
			s.Progress = 1
		}
	}
	t.state = s
	return s, true
}

// State returns the last published state without consuming the pending flag.
func (t *Tracker) State() State {
	return t.state
}
