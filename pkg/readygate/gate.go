// Package readygate implements the loading gate shown in front of the
// portfolio. The gate waits on three independent completion signals (content
// parsed, portrait rendered, minimum display delay) and resolves once all
// three are satisfied, or unconditionally once a hard timeout elapses. While
// waiting it animates a progress value for the loading bar.
//
// The gate is driven entirely by bubbletea messages so that tests can replay
// any interleaving of signal arrivals deterministically.
package readygate

import (
	"math/rand/v2"
	"time"
)

// Signal identifies one of the gate's asynchronous preconditions.
type Signal int

const (
	// SignalContent fires when the portfolio content has been parsed.
	SignalContent Signal = iota
	// SignalPortrait fires when the hero portrait has been rendered, or its
	// load has failed. Failure counts as satisfied: the gate must never
	// block the page on a missing image.
	SignalPortrait
	// SignalMinDelay fires after the minimum display delay. Satisfied at
	// construction under reduced motion.
	SignalMinDelay

	signalCount
)

// Timing defaults. ReducedTick is faster than Tick because reduced motion
// advances in larger fixed steps and should finish the bar sooner.
const (
	DefaultMinDelay    = 600 * time.Millisecond
	DefaultHardTimeout = 5 * time.Second
	DefaultTick        = 180 * time.Millisecond
	DefaultReducedTick = 120 * time.Millisecond

	// holdDuration keeps the full bar on screen briefly before the gate
	// reports ready, so the 100% state is actually visible.
	holdDuration = 200 * time.Millisecond

	// progressCeiling is the highest value the animated bar may reach
	// before every signal is satisfied.
	progressCeiling = 95

	reducedStep = 20
)

// Options configures a Gate. Zero values fall back to the defaults above.
type Options struct {
	MinDelay      time.Duration
	HardTimeout   time.Duration
	Tick          time.Duration
	ReducedMotion bool
}

// Gate aggregates the three completion signals into a single ready state.
// Each signal transitions one way; the gate itself resolves exactly once and
// never resets within a session.
type Gate struct {
	opts      Options
	satisfied [signalCount]bool
	progress  int
	holding   bool
	ready     bool

	// randInt is swappable in tests for deterministic progress steps.
	randInt func(n int) int
}

// New creates a gate in its initial state (progress 0, not ready). Under
// reduced motion the minimum-delay signal is satisfied immediately.
func New(opts Options) *Gate {
	if opts.MinDelay <= 0 {
		opts.MinDelay = DefaultMinDelay
	}
	if opts.HardTimeout <= 0 {
		opts.HardTimeout = DefaultHardTimeout
	}
	if opts.Tick <= 0 {
		if opts.ReducedMotion {
			opts.Tick = DefaultReducedTick
		} else {
			opts.Tick = DefaultTick
		}
	}

	g := &Gate{
		opts:    opts,
		randInt: rand.IntN,
	}
	if opts.ReducedMotion {
		g.satisfied[SignalMinDelay] = true
	}
	return g
}

// Satisfy marks a signal as complete. Signals are monotonic: repeated calls
// are no-ops, and nothing changes once the gate has started resolving.
func (g *Gate) Satisfy(s Signal) {
	if g.holding || g.ready {
		return
	}
	if s < 0 || s >= signalCount {
		return
	}
	g.satisfied[s] = true
}

// ForceResolve marks every signal satisfied. This is the hard-timeout path:
// the gate resolves even if some inputs never completed. Deliberate; the
// gate's one job is to never leave the loading overlay up indefinitely.
func (g *Gate) ForceResolve() {
	for i := Signal(0); i < signalCount; i++ {
		g.Satisfy(i)
	}
}

// AllSatisfied reports whether every signal has completed.
func (g *Gate) AllSatisfied() bool {
	for _, ok := range g.satisfied {
		if !ok {
			return false
		}
	}
	return true
}

// Satisfied reports whether a single signal has completed.
func (g *Gate) Satisfied(s Signal) bool {
	if s < 0 || s >= signalCount {
		return false
	}
	return g.satisfied[s]
}

// Advance bumps the animated progress value by one step, capped below 100
// until the gate resolves. Steps are random (3-7) so the bar reads as live,
// or a fixed larger step under reduced motion.
func (g *Gate) Advance() {
	if g.holding || g.ready {
		return
	}
	step := 3 + g.randInt(5)
	if g.opts.ReducedMotion {
		step = reducedStep
	}
	g.progress += step
	if g.progress > progressCeiling {
		g.progress = progressCeiling
	}
}

// Progress returns the current loading bar value in [0, 100].
func (g *Gate) Progress() int {
	return g.progress
}

// Ready reports whether the gate has resolved. Once true it stays true.
func (g *Gate) Ready() bool {
	return g.ready
}

// Resolving reports whether the gate is in the brief full-bar hold between
// all signals completing and Ready flipping true.
func (g *Gate) Resolving() bool {
	return g.holding
}

// beginHold snaps progress to 100 and enters the display hold. Returns false
// if the gate is not yet (or no longer) in a state to resolve.
func (g *Gate) beginHold() bool {
	if g.holding || g.ready || !g.AllSatisfied() {
		return false
	}
	g.holding = true
	g.progress = 100
	return true
}

// finishHold completes the resolution. Idempotent.
func (g *Gate) finishHold() {
	if !g.holding {
		return
	}
	g.ready = true
}
