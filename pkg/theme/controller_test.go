package theme

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu      sync.Mutex
	val     string
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.val, m.loadErr
}

func (m *memStore) Save(mode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.val = mode
	return nil
}

// captureTimers replaces the controller's timer factory and records every
// scheduled cleanup without letting it fire on its own.
type captureTimers struct {
	durations []time.Duration
	callbacks []func()
}

func (ct *captureTimers) afterFunc(d time.Duration, fn func()) *time.Timer {
	ct.durations = append(ct.durations, d)
	ct.callbacks = append(ct.callbacks, fn)
	return time.NewTimer(time.Hour) // inert; stopped or leaked into the test's lifetime
}

func newTestController(store Store, probeDark func() bool) (*Controller, *captureTimers) {
	c := NewController(store, probeDark)
	ct := &captureTimers{}
	c.afterFunc = ct.afterFunc
	return c, ct
}

func TestInitialModePersistedWinsOverProbe(t *testing.T) {
	// Persisted dark, probe says light: persisted wins.
	c := NewController(&memStore{val: "dark"}, func() bool { return false })
	if c.Mode() != Dark {
		t.Errorf("Mode() = %v, want Dark from the store", c.Mode())
	}

	// Persisted light, probe says dark: persisted still wins.
	c = NewController(&memStore{val: "light"}, func() bool { return true })
	if c.Mode() != Light {
		t.Errorf("Mode() = %v, want Light from the store", c.Mode())
	}
}

func TestInitialModeFallsBackToProbe(t *testing.T) {
	c := NewController(&memStore{}, func() bool { return true })
	if c.Mode() != Dark {
		t.Errorf("Mode() = %v, want Dark from the probe", c.Mode())
	}
}

func TestInitialModeDefaultsToLight(t *testing.T) {
	if c := NewController(nil, nil); c.Mode() != Light {
		t.Errorf("Mode() = %v, want Light with no store and no probe", c.Mode())
	}
	broken := &memStore{loadErr: errors.New("denied")}
	if c := NewController(broken, nil); c.Mode() != Light {
		t.Errorf("Mode() = %v, want Light with a broken store", c.Mode())
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	store := &memStore{}
	c, _ := newTestController(store, nil)

	if got := c.Toggle(); got != Dark {
		t.Fatalf("first Toggle() = %v, want Dark", got)
	}
	if store.val != "dark" {
		t.Errorf("store holds %q, want %q", store.val, "dark")
	}

	if got := c.Toggle(); got != Light {
		t.Fatalf("second Toggle() = %v, want Light", got)
	}
	if store.val != "light" {
		t.Errorf("store holds %q, want %q", store.val, "light")
	}
}

func TestToggleSurvivesStoreFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only filesystem")}
	c, _ := newTestController(store, nil)

	if got := c.Toggle(); got != Dark {
		t.Fatalf("Toggle() = %v, want Dark despite save failure", got)
	}
	if c.Mode() != Dark {
		t.Error("in-memory mode lost after save failure")
	}
}

func TestToggleOpensTransitionWindow(t *testing.T) {
	c, ct := newTestController(&memStore{}, nil)

	c.Toggle()
	if !c.Transitioning() {
		t.Fatal("not transitioning right after toggle")
	}
	if len(ct.durations) != 1 || ct.durations[0] != transitionWindow {
		t.Fatalf("scheduled %v, want one cleanup at %v", ct.durations, transitionWindow)
	}

	ct.callbacks[0]()
	if c.Transitioning() {
		t.Error("still transitioning after the cleanup fired")
	}
}

func TestRapidTogglesDebounceCleanup(t *testing.T) {
	c, ct := newTestController(&memStore{}, nil)

	c.Toggle()
	first := c.cleanup
	c.Toggle() // inside the window

	if len(ct.callbacks) != 2 {
		t.Fatalf("scheduled %d cleanups, want 2 (second replaces first)", len(ct.callbacks))
	}
	if c.cleanup == first {
		t.Fatal("second toggle did not reschedule the cleanup timer")
	}

	// Only the cleanup from the second toggle is live; it fires 400ms after
	// the second call and clears the flag exactly once.
	if !c.Transitioning() {
		t.Fatal("transition window closed early")
	}
	ct.callbacks[1]()
	if c.Transitioning() {
		t.Error("still transitioning after the rescheduled cleanup fired")
	}
	if c.cleanup != nil {
		t.Error("cleanup timer still pending after it fired")
	}
}

func TestSubscribersNotifiedOnToggle(t *testing.T) {
	c, _ := newTestController(&memStore{}, nil)

	var got []Mode
	c.Subscribe(func(m Mode) { got = append(got, m) })

	c.Toggle()
	c.Toggle()

	if len(got) != 2 || got[0] != Dark || got[1] != Light {
		t.Errorf("subscriber saw %v, want [Dark Light]", got)
	}
}

func TestCloseReleasesPendingCleanup(t *testing.T) {
	c, _ := newTestController(&memStore{}, nil)
	c.Toggle()
	c.Close()
	if c.Transitioning() {
		t.Error("still transitioning after Close")
	}
	if c.cleanup != nil {
		t.Error("cleanup timer retained after Close")
	}
}

func TestPreferenceRoundTripThroughFileStore(t *testing.T) {
	path := t.TempDir() + "/prefs.toml"
	store := FileStore{Path: path}

	c := NewController(store, func() bool { return false })
	c.Toggle() // -> dark, persisted

	// A fresh session with the opposite probe answer still resolves dark.
	again := NewController(store, func() bool { return false })
	if again.Mode() != Dark {
		t.Errorf("reloaded Mode() = %v, want Dark from the preference file", again.Mode())
	}
}
