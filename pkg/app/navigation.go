package app

// jumpAnchor cycles the anchor index by delta, wrapping, and scrolls to the
// section it lands on.
func (m *Model) jumpAnchor(delta int) {
	if len(m.anchors) == 0 {
		return
	}
	m.anchorIdx = (m.anchorIdx + delta + len(m.anchors)) % len(m.anchors)
	m.jumpTo(m.anchors[m.anchorIdx])
}

// jumpTo scrolls the viewport to a named anchor. An unknown anchor is a
// no-op, never an error.
func (m *Model) jumpTo(id string) {
	off, ok := m.offsets[id]
	if !ok {
		return
	}
	m.vp.SetYOffset(off)
	m.tracker.Observe(m.vp.YOffset)
}
