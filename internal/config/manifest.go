package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/framekit/internal/errs"
)

//go:embed compositions.yaml
var defaultManifest []byte

// Entry overrides the static declaration of a composition. Zero fields keep
// the declared value.
type Entry struct {
	ID               string `yaml:"id" json:"id" jsonschema:"required"`
	Disabled         bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	DurationInFrames int    `yaml:"duration_in_frames,omitempty" json:"durationInFrames,omitempty"`
	FPS              int    `yaml:"fps,omitempty" json:"fps,omitempty"`
	Width            int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height           int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// Manifest selects the compositions to register
type Manifest struct {
	Version      string   `yaml:"version" json:"version"`
	Settings     Settings `yaml:"settings" json:"settings"`
	Compositions []Entry  `yaml:"compositions" json:"compositions"`
}

// DefaultManifest returns the embedded manifest
func DefaultManifest() (*Manifest, error) {
	return Parse(defaultManifest)
}

// Load reads a manifest from a YAML file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes manifest YAML and rejects duplicate or empty ids
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: manifest: %v", errs.ErrConfiguration, err)
	}
	if m.Settings.Workers < 0 {
		return nil, fmt.Errorf("%w: manifest: workers must not be negative", errs.ErrConfiguration)
	}

	seen := make(map[string]bool, len(m.Compositions))
	for i, e := range m.Compositions {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: manifest entry %d has no id", errs.ErrConfiguration, i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: manifest lists %q twice", errs.ErrConfiguration, e.ID)
		}
		seen[e.ID] = true
	}
	return &m, nil
}

// Entry returns the override for id, if any
func (m *Manifest) Entry(id string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	for _, e := range m.Compositions {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Apply merges the override for c.ID into c
func (m *Manifest) Apply(c Composition) Composition {
	e, ok := m.Entry(c.ID)
	if !ok {
		return c
	}
	if e.DurationInFrames > 0 {
		c.DurationInFrames = e.DurationInFrames
	}
	if e.FPS > 0 {
		c.FPS = e.FPS
	}
	if e.Width > 0 {
		c.Width = e.Width
	}
	if e.Height > 0 {
		c.Height = e.Height
	}
	return c
}

// Enabled reports whether id should be registered. Compositions missing from
// the manifest are enabled.
func (m *Manifest) Enabled(id string) bool {
	e, ok := m.Entry(id)
	return !ok || !e.Disabled
}
