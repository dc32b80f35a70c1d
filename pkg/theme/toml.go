package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLPalette is the TOML-serializable representation of a Palette.
type thTOMLPalette struct {
	Name  string      `toml:"name"`
	Mode  string      `toml:"mode"`
	Base  thTOMLBase  `toml:"base"`
	Frame thTOMLFrame `toml:"frame"`
	Gauge thTOMLGauge `toml:"gauge"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
	Heading    string `toml:"heading"`
	Highlight  string `toml:"highlight"`
}

type thTOMLFrame struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
}

type thTOMLGauge struct {
	Filled string `toml:"filled"`
	Empty  string `toml:"empty"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML palette definition from raw bytes.
func LoadFromTOML(data []byte) (Palette, error) {
	var tp thTOMLPalette
	if err := toml.Unmarshal(data, &tp); err != nil {
		return Palette{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	mode, ok := ParseMode(tp.Mode)
	if !ok {
		return Palette{}, fmt.Errorf("theme: invalid mode %q (expected light or dark)", tp.Mode)
	}

	p := Palette{
		Name: tp.Name,
		Mode: mode,

		Background: tp.Base.Background,
		Foreground: tp.Base.Foreground,
		Dim:        tp.Base.Dim,
		Accent:     tp.Base.Accent,
		Heading:    tp.Base.Heading,
		Highlight:  tp.Base.Highlight,

		Border:      tp.Frame.Border,
		BorderFocus: tp.Frame.BorderFocus,

		GaugeFilled: tp.Gauge.Filled,
		GaugeEmpty:  tp.Gauge.Empty,
	}

	if err := thValidatePalette(p); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// SaveToTOML serializes a palette to TOML bytes.
func SaveToTOML(p Palette) ([]byte, error) {
	tp := thTOMLPalette{
		Name: p.Name,
		Mode: p.Mode.String(),
		Base: thTOMLBase{
			Background: p.Background,
			Foreground: p.Foreground,
			Dim:        p.Dim,
			Accent:     p.Accent,
			Heading:    p.Heading,
			Highlight:  p.Highlight,
		},
		Frame: thTOMLFrame{
			Border:      p.Border,
			BorderFocus: p.BorderFocus,
		},
		Gauge: thTOMLGauge{
			Filled: p.GaugeFilled,
			Empty:  p.GaugeEmpty,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tp); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidatePalette checks that every color field is present and valid hex.
func thValidatePalette(p Palette) error {
	if p.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := map[string]string{
		"background":   p.Background,
		"foreground":   p.Foreground,
		"dim":          p.Dim,
		"accent":       p.Accent,
		"heading":      p.Heading,
		"highlight":    p.Highlight,
		"border":       p.Border,
		"border_focus": p.BorderFocus,
		"filled":       p.GaugeFilled,
		"empty":        p.GaugeEmpty,
	}

	for field, value := range colorFields {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
