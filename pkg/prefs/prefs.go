// Package prefs persists the small set of user preferences that survive
// between sessions. Currently that is a single entry: the theme choice.
package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

// Prefs is the on-disk preference set.
type Prefs struct {
	// Theme is "dark" or "light". Empty means no preference was ever saved.
	Theme string `toml:"theme"`
}

// Path returns the standard preference file location:
// $XDG_STATE_HOME/folio/prefs.toml, or ~/.local/state/folio/prefs.toml.
func Path() string {
	home, _ := os.UserHomeDir()
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "folio", "prefs.toml")
}

// Load reads preferences from path. A missing file is not an error: it
// returns zero Prefs so callers fall through to their next resolution step.
func Load(path string) (Prefs, error) {
	var p Prefs
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("prefs: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("prefs: parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path atomically, creating parent directories
// as needed. A torn write must never leave a corrupt preference file behind.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("prefs: write %s: %w", path, err)
	}
	return nil
}
