package config

import (
	"fmt"

	"gitlab.com/tinyland/lab/folio/pkg/readygate"
	"gitlab.com/tinyland/lab/folio/pkg/scrolltrack"
	"gitlab.com/tinyland/lab/folio/pkg/terminal"
)

// Config is the top-level folio configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Gate    GateConfig    `toml:"gate"`
	Theme   ThemeConfig   `toml:"theme"`
	Content ContentConfig `toml:"content"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// ReducedMotion minimizes animation: no loading-bar randomness, no
	// minimum display delay. Also settable via FOLIO_REDUCED_MOTION.
	ReducedMotion bool `toml:"reduced_motion"`

	// Portrait is the path to the hero portrait image. Empty disables it.
	Portrait        string `toml:"portrait"`
	PortraitEnabled bool   `toml:"portrait_enabled"`

	// Graphics forces a protocol (none|halfblocks|kitty|iterm2|sixel)
	// instead of detecting one from the environment.
	Graphics string `toml:"graphics"`

	// BackToTopRows is the scroll depth at which the back-to-top hint
	// appears. 0 means the package default.
	BackToTopRows int `toml:"back_to_top_rows"`

	// FrameRate is the UI refresh rate in frames per second.
	FrameRate int `toml:"frame_rate"`
}

// GateConfig tunes the loading gate timers. Zero values mean defaults.
type GateConfig struct {
	MinDelay    Duration `toml:"min_delay"`
	HardTimeout Duration `toml:"hard_timeout"`
	Tick        Duration `toml:"tick"`
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Name string `toml:"name"` // palette name; empty follows the mode

	// Palette is an optional TOML palette file. A palette named "light" or
	// "dark" shadows the built-in for that mode.
	Palette string `toml:"palette"`
}

// ContentConfig points at the portfolio content file.
type ContentConfig struct {
	Path string `toml:"path"` // empty uses the embedded default
}

// Validate checks configured values for sanity.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.General.LogLevel)
	}
	if c.Display.FrameRate < 0 || c.Display.FrameRate > 120 {
		return fmt.Errorf("config: frame_rate %d out of range 0-120", c.Display.FrameRate)
	}
	if c.Display.BackToTopRows < 0 {
		return fmt.Errorf("config: back_to_top_rows must not be negative")
	}
	if c.Display.Graphics != "" {
		if _, ok := terminal.ParseProtocol(c.Display.Graphics); !ok {
			return fmt.Errorf("config: unknown graphics protocol %q", c.Display.Graphics)
		}
	}
	if c.Gate.HardTimeout.Duration > 0 && c.Gate.MinDelay.Duration > c.Gate.HardTimeout.Duration {
		return fmt.Errorf("config: gate min_delay %v exceeds hard_timeout %v",
			c.Gate.MinDelay.Duration, c.Gate.HardTimeout.Duration)
	}
	return nil
}

// GateOptions maps the gate section onto readygate options, resolving the
// effective reduced-motion preference.
func (c *Config) GateOptions() readygate.Options {
	return readygate.Options{
		MinDelay:      c.Gate.MinDelay.Duration,
		HardTimeout:   c.Gate.HardTimeout.Duration,
		Tick:          c.Gate.Tick.Duration,
		ReducedMotion: c.Display.ReducedMotion,
	}
}

// BackToTopRows returns the configured threshold or the package default.
func (c *Config) BackToTopRows() int {
	if c.Display.BackToTopRows > 0 {
		return c.Display.BackToTopRows
	}
	return scrolltrack.DefaultBackToTopRows
}
