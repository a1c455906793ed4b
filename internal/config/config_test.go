package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/framekit/internal/errs"
)

func TestCompositionValidate(t *testing.T) {
	valid := Composition{ID: "intro", DurationInFrames: 90, FPS: 30, Width: 1920, Height: 1080}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid composition rejected: %v", err)
	}
	if valid.Seconds() != 3 {
		t.Errorf("Seconds = %v, want 3", valid.Seconds())
	}
	if valid.Frames(1.5) != 45 {
		t.Errorf("Frames(1.5) = %d, want 45", valid.Frames(1.5))
	}

	tests := []struct {
		name   string
		mutate func(*Composition)
	}{
		{"empty id", func(c *Composition) { c.ID = " " }},
		{"zero duration", func(c *Composition) { c.DurationInFrames = 0 }},
		{"negative fps", func(c *Composition) { c.FPS = -30 }},
		{"zero width", func(c *Composition) { c.Width = 0 }},
		{"zero height", func(c *Composition) { c.Height = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	if err != nil {
		t.Fatalf("DefaultManifest failed: %v", err)
	}
	if len(m.Compositions) == 0 {
		t.Fatal("default manifest lists no compositions")
	}
	if m.Settings.StrictDurations {
		t.Error("default manifest should keep duration checks permissive")
	}
}

func TestManifestApply(t *testing.T) {
	m, err := Parse([]byte(`
version: "1.0"
compositions:
  - id: intro
    fps: 60
    duration_in_frames: 180
  - id: outro
    disabled: true
`))
	if err != nil {
		t.Fatal(err)
	}

	base := Composition{ID: "intro", DurationInFrames: 90, FPS: 30, Width: 1920, Height: 1080}
	got := m.Apply(base)
	if got.FPS != 60 || got.DurationInFrames != 180 || got.Width != 1920 {
		t.Errorf("Apply = %+v", got)
	}
	if other := m.Apply(Composition{ID: "other", FPS: 24}); other.FPS != 24 {
		t.Error("compositions absent from the manifest must be unchanged")
	}

	if !m.Enabled("intro") || m.Enabled("outro") || !m.Enabled("unlisted") {
		t.Error("Enabled mismatch")
	}
}

func TestManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "compositions: {"},
		{"missing id", "compositions:\n  - fps: 30\n"},
		{"duplicate id", "compositions:\n  - id: a\n  - id: a\n"},
		{"negative workers", "settings:\n  workers: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte("settings:\n  workers: 3\n  strict_durations: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Settings.Workers != 3 || !m.Settings.StrictDurations {
		t.Errorf("settings not decoded: %+v", m.Settings)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema failed: %v", err)
	}
	s := string(data)
	for _, want := range []string{"Composition Manifest", "compositions", "durationInFrames", "strictDurations"} {
		if !strings.Contains(s, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}
