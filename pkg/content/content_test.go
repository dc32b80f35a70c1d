package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultParsesAndValidates(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if p.Profile.Name == "" {
		t.Error("default profile has no name")
	}
	if len(p.Papers) == 0 {
		t.Error("default content has no papers")
	}
	if len(p.Skills) == 0 {
		t.Error("default content has no skills")
	}
	if len(p.Timeline) == 0 {
		t.Error("default content has no timeline")
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	d, _ := Default()
	if p.Profile.Name != d.Profile.Name {
		t.Error("Load(\"\") did not return the embedded default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file returned nil error")
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
profile:
  name: A. Tester
papers:
  - title: One Paper
    year: 2021
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Profile.Name != "A. Tester" || len(p.Papers) != 1 {
		t.Errorf("unexpected portfolio: %+v", p)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Portfolio {
		return &Portfolio{
			Profile: Profile{Name: "X"},
			Papers:  []Paper{{Title: "P", Year: 2020}},
			Skills:  []SkillGroup{{Group: "G", Items: []Skill{{Name: "S", Level: 5}}}},
			Timeline: []TimelineEntry{
				{Title: "T", Start: "2019"},
			},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Portfolio)
		wantErr string
	}{
		{"valid", func(p *Portfolio) {}, ""},
		{"missing profile name", func(p *Portfolio) { p.Profile.Name = "" }, "profile.name"},
		{"untitled paper", func(p *Portfolio) { p.Papers[0].Title = "" }, "papers[0]"},
		{"absurd year", func(p *Portfolio) { p.Papers[0].Year = 999 }, "year"},
		{"unnamed group", func(p *Portfolio) { p.Skills[0].Group = "" }, "skills[0]"},
		{"level too high", func(p *Portfolio) { p.Skills[0].Items[0].Level = 11 }, "out of range"},
		{"level negative", func(p *Portfolio) { p.Skills[0].Items[0].Level = -1 }, "out of range"},
		{"untitled position", func(p *Portfolio) { p.Timeline[0].Title = "" }, "timeline[0]"},
		{"missing start", func(p *Portfolio) { p.Timeline[0].Start = "" }, "no start"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(p)
			err := p.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate accepted invalid content")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestYearZeroMeansUnset(t *testing.T) {
	p := &Portfolio{
		Profile: Profile{Name: "X"},
		Papers:  []Paper{{Title: "Preprint"}},
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate rejected a paper with no year: %v", err)
	}
}
