package theme

import (
	"sync"
	"time"

	"gitlab.com/tinyland/lab/folio/pkg/prefs"
)

// transitionWindow is how long the transitioning flag stays set after a
// toggle, giving the renderer a window to animate the palette swap.
const transitionWindow = 400 * time.Millisecond

// Store persists the mode preference between sessions. Save errors are
// swallowed by the controller: a blocked store degrades to an in-memory
// preference for the current session, never to a visible failure.
type Store interface {
	Load() (string, error)
	Save(mode string) error
}

// Controller is the single writer of the active mode. All reads go through
// Mode(); all changes go through Toggle(). Nothing else in the program
// touches the preference store.
type Controller struct {
	mu            sync.Mutex
	mode          Mode
	transitioning bool
	cleanup       *time.Timer
	store         Store
	subs          []func(Mode)

	// afterFunc is swappable in tests.
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewController resolves the initial mode and returns a controller.
// Resolution order: persisted preference, then the terminal background
// probe, then light. store and probeDark may both be nil.
func NewController(store Store, probeDark func() bool) *Controller {
	c := &Controller{
		store:     store,
		afterFunc: time.AfterFunc,
	}
	c.mode = resolveInitial(store, probeDark)
	return c
}

// resolveInitial applies the preference resolution order.
func resolveInitial(store Store, probeDark func() bool) Mode {
	if store != nil {
		if s, err := store.Load(); err == nil {
			if m, ok := ParseMode(s); ok {
				return m
			}
		}
	}
	if probeDark != nil && probeDark() {
		return Dark
	}
	return Light
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Palette returns the built-in palette for the active mode.
func (c *Controller) Palette() Palette {
	return ForMode(c.Mode())
}

// Transitioning reports whether a toggle happened within the last 400ms.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitioning
}

// Subscribe registers fn to be called with the new mode after every toggle.
// Callbacks run on the toggling goroutine, outside the controller lock.
func (c *Controller) Subscribe(fn func(Mode)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Toggle flips the mode, persists it, notifies subscribers, and opens the
// transition window. A toggle inside an open window reschedules the single
// pending cleanup timer rather than stacking a second one, so the flag
// clears 400ms after the most recent toggle.
func (c *Controller) Toggle() Mode {
	c.mu.Lock()

	if c.mode == Dark {
		c.mode = Light
	} else {
		c.mode = Dark
	}
	mode := c.mode

	c.transitioning = true
	if c.cleanup != nil {
		c.cleanup.Stop()
	}
	c.cleanup = c.afterFunc(transitionWindow, func() {
		c.mu.Lock()
		c.transitioning = false
		c.cleanup = nil
		c.mu.Unlock()
	})

	subs := make([]func(Mode), len(c.subs))
	copy(subs, c.subs)
	store := c.store
	c.mu.Unlock()

	if store != nil {
		_ = store.Save(mode.String()) // storage unavailable is not a failure
	}
	for _, fn := range subs {
		fn(mode)
	}
	return mode
}

// Close releases the pending cleanup timer, if any. Call on teardown so no
// callback fires into a defunct controller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleanup != nil {
		c.cleanup.Stop()
		c.cleanup = nil
	}
	c.transitioning = false
}

// FileStore adapts the prefs package to the Store interface.
type FileStore struct {
	Path string
}

// Load returns the persisted theme name, or empty when none was saved.
func (fs FileStore) Load() (string, error) {
	p, err := prefs.Load(fs.Path)
	if err != nil {
		return "", err
	}
	return p.Theme, nil
}

// Save writes the theme name. The theme is currently the only preference,
// so the whole file is rewritten.
func (fs FileStore) Save(mode string) error {
	return prefs.Save(fs.Path, prefs.Prefs{Theme: mode})
}
