package readygate

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SignalMsg reports an asynchronous precondition as complete. External
// loaders (content parse, portrait render) deliver one of these into the
// update loop when they finish, regardless of success or failure.
type SignalMsg struct {
	Signal Signal
}

// ResolvedMsg is emitted once when the gate finishes its display hold and
// flips ready. The root model uses it to dismiss the loading overlay.
type ResolvedMsg struct{}

// tickMsg advances the animated progress bar.
type tickMsg struct{}

// minDelayMsg satisfies the minimum-delay signal.
type minDelayMsg struct{}

// timeoutMsg is the hard-timeout fallback.
type timeoutMsg struct{}

// holdDoneMsg ends the brief full-bar hold.
type holdDoneMsg struct{}

// Init returns the command batch that starts the gate's timers: the progress
// ticker, the minimum-delay one-shot (skipped under reduced motion), and the
// hard-timeout one-shot. Bubbletea timers cannot be revoked once scheduled,
// so late messages are instead discarded by Update's resolved guards.
func (g *Gate) Init() tea.Cmd {
	cmds := []tea.Cmd{
		g.tickCmd(),
		tea.Tick(g.opts.HardTimeout, func(time.Time) tea.Msg { return timeoutMsg{} }),
	}
	if !g.opts.ReducedMotion {
		cmds = append(cmds, tea.Tick(g.opts.MinDelay, func(time.Time) tea.Msg { return minDelayMsg{} }))
	}
	return tea.Batch(cmds...)
}

// Update processes one gate message. Messages not owned by the gate return a
// nil command and leave the state untouched.
func (g *Gate) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if g.holding || g.ready {
			// Resolved while this tick was in flight; stop rescheduling.
			return nil
		}
		g.Advance()
		if g.AllSatisfied() {
			return g.resolveCmd()
		}
		return g.tickCmd()

	case SignalMsg:
		g.Satisfy(msg.Signal)
		return g.resolveCmd()

	case minDelayMsg:
		g.Satisfy(SignalMinDelay)
		return g.resolveCmd()

	case timeoutMsg:
		g.ForceResolve()
		return g.resolveCmd()

	case holdDoneMsg:
		if !g.holding || g.ready {
			return nil
		}
		g.finishHold()
		return func() tea.Msg { return ResolvedMsg{} }
	}
	return nil
}

// tickCmd schedules the next progress animation step.
func (g *Gate) tickCmd() tea.Cmd {
	return tea.Tick(g.opts.Tick, func(time.Time) tea.Msg { return tickMsg{} })
}

// resolveCmd starts the display hold if every signal is now satisfied.
func (g *Gate) resolveCmd() tea.Cmd {
	if !g.beginHold() {
		return nil
	}
	return tea.Tick(holdDuration, func(time.Time) tea.Msg { return holdDoneMsg{} })
}
