// Package theme owns the light/dark appearance of the portfolio: the binary
// mode preference, the palette registry, and the single controller through
// which the mode is ever changed.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Mode is the binary appearance preference.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns "light" or "dark", matching the persisted representation.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode maps a persisted string back to a Mode. The second return is
// false for anything that is not exactly "light" or "dark".
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

// Palette defines the color set for one mode of the portfolio.
type Palette struct {
	Name string
	Mode Mode

	Background string // hex color e.g. "#fdfdfd"
	Foreground string
	Dim        string // secondary text
	Accent     string // links, highlights, focused elements

	Border      string
	BorderFocus string
	Heading     string // section headings

	GaugeFilled string // skill level bars
	GaugeEmpty  string

	Highlight string // selected paper row
}

var (
	mu       sync.RWMutex
	registry = map[string]Palette{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named palette, falling back to the built-in palette for the
// given mode when the name is unknown.
func Get(name string, m Mode) Palette {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := registry[strings.ToLower(name)]; ok {
		return p
	}
	return registry[m.String()]
}

// ForMode returns the built-in palette for a mode.
func ForMode(m Mode) Palette {
	mu.RLock()
	defer mu.RUnlock()
	return registry[m.String()]
}

// Names returns all registered palette names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a palette to the registry under its lowercase name.
// Later registrations with the same name win, which lets a user TOML
// palette shadow a built-in.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}
