package theme

import (
	"strings"
	"testing"
)

func TestGetBuiltins(t *testing.T) {
	light := Get("light", Light)
	if light.Name != "light" || light.Mode != Light {
		t.Errorf("Get(\"light\") = %q mode %v", light.Name, light.Mode)
	}
	dark := Get("dark", Dark)
	if dark.Name != "dark" || dark.Mode != Dark {
		t.Errorf("Get(\"dark\") = %q mode %v", dark.Name, dark.Mode)
	}
	if light.Background == dark.Background {
		t.Error("light and dark share a background color")
	}
}

func TestGetUnknownFallsBackToMode(t *testing.T) {
	p := Get("no-such-palette", Dark)
	if p.Name != "dark" {
		t.Errorf("unknown name resolved to %q, want the dark fallback", p.Name)
	}
	p = Get("no-such-palette", Light)
	if p.Name != "light" {
		t.Errorf("unknown name resolved to %q, want the light fallback", p.Name)
	}
}

func TestNamesIncludesBuiltins(t *testing.T) {
	names := Names()
	var haveLight, haveDark bool
	for _, n := range names {
		if n == "light" {
			haveLight = true
		}
		if n == "dark" {
			haveDark = true
		}
	}
	if !haveLight || !haveDark {
		t.Errorf("Names() = %v, missing a built-in", names)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"DARK", Dark, true},
		{"", Light, false},
		{"auto", Light, false},
	}
	for _, tc := range cases {
		got, ok := ParseMode(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	orig := thDarkPalette()
	orig.Name = "midnight"

	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}

	got, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if got != orig {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, orig)
	}
}

func TestLoadFromTOMLRejectsBadHex(t *testing.T) {
	p := thLightPalette()
	p.Accent = "blue"
	data, err := SaveToTOML(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromTOML(data); err == nil {
		t.Error("accepted a non-hex color")
	} else if !strings.Contains(err.Error(), "accent") {
		t.Errorf("error %v does not name the offending field", err)
	}
}

func TestLoadFromTOMLRejectsMissingField(t *testing.T) {
	_, err := LoadFromTOML([]byte("name = \"sparse\"\nmode = \"dark\"\n"))
	if err == nil {
		t.Error("accepted a palette with no colors")
	}
}

func TestLoadFromTOMLRejectsBadMode(t *testing.T) {
	p := thLightPalette()
	data, _ := SaveToTOML(p)
	mangled := strings.Replace(string(data), "\"light\"", "\"sepia\"", 1)
	if _, err := LoadFromTOML([]byte(mangled)); err == nil {
		t.Error("accepted an unknown mode")
	}
}

func TestRegisterShadowsBuiltin(t *testing.T) {
	custom := thDarkPalette()
	custom.Name = "ink"
	custom.Accent = "#ff00ff"
	Register(custom)

	got := Get("ink", Light)
	if got.Accent != "#ff00ff" {
		t.Errorf("custom palette not registered: accent = %q", got.Accent)
	}
}
