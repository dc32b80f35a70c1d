// Package content defines the static portfolio records: who the site is
// about, the papers, the CV timeline, the skills grid, and the contact
// links. Records are read-only configuration data loaded once at startup;
// nothing in the program mutates them.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Profile is the hero-banner subject.
type Profile struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Affiliation string `yaml:"affiliation"`
	Tagline     string `yaml:"tagline"`
	Portrait    string `yaml:"portrait"` // opaque path, not validated here
	CVURL       string `yaml:"cv_url"`   // opaque URL
}

// Paper is one research-paper record.
type Paper struct {
	Title    string   `yaml:"title"`
	Authors  []string `yaml:"authors"`
	Venue    string   `yaml:"venue"`
	Year     int      `yaml:"year"`
	Tags     []string `yaml:"tags"`
	Abstract string   `yaml:"abstract"`
	PDFURL   string   `yaml:"pdf_url"`
}

// Skill is one entry in the skills grid. Level is 0-10.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// SkillGroup is a titled column of the skills grid.
type SkillGroup struct {
	Group string  `yaml:"group"`
	Items []Skill `yaml:"items"`
}

// TimelineEntry is one position in the CV timeline.
type TimelineEntry struct {
	Title  string `yaml:"title"`
	Org    string `yaml:"org"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"` // empty means present
	Detail string `yaml:"detail"`
}

// Link is a labeled contact URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Contact is the contact section.
type Contact struct {
	Email string `yaml:"email"`
	Links []Link `yaml:"links"`
}

// Portfolio is the full content tree.
type Portfolio struct {
	Profile  Profile         `yaml:"profile"`
	Bio      string          `yaml:"bio"`
	Papers   []Paper         `yaml:"papers"`
	Skills   []SkillGroup    `yaml:"skills"`
	Timeline []TimelineEntry `yaml:"timeline"`
	Contact  Contact         `yaml:"contact"`
}

// Default returns the embedded portfolio content.
func Default() (*Portfolio, error) {
	return parse(defaultContent)
}

// Load reads a portfolio from a YAML file. An empty path returns the
// embedded default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("content: parse YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks structural sanity. Asset URLs are deliberately not
// checked: a broken link renders as-is rather than failing the page.
func (p *Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return fmt.Errorf("content: profile.name is required")
	}
	for i, paper := range p.Papers {
		if paper.Title == "" {
			return fmt.Errorf("content: papers[%d] has no title", i)
		}
		if paper.Year != 0 && (paper.Year < 1900 || paper.Year > 2200) {
			return fmt.Errorf("content: papers[%d] year %d out of range", i, paper.Year)
		}
	}
	for gi, group := range p.Skills {
		if group.Group == "" {
			return fmt.Errorf("content: skills[%d] has no group name", gi)
		}
		for si, s := range group.Items {
			if s.Name == "" {
				return fmt.Errorf("content: skills[%d].items[%d] has no name", gi, si)
			}
			if s.Level < 0 || s.Level > 10 {
				return fmt.Errorf("content: skill %q level %d out of range 0-10", s.Name, s.Level)
			}
		}
	}
	for i, e := range p.Timeline {
		if e.Title == "" {
			return fmt.Errorf("content: timeline[%d] has no title", i)
		}
		if e.Start == "" {
			return fmt.Errorf("content: timeline[%d] (%q) has no start", i, e.Title)
		}
	}
	return nil
}
