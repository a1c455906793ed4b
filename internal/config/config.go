// Package config holds the static parameters of compositions and the
// manifest that selects and overrides them at process start.
package config

import (
	"fmt"
	"strings"

	"github.com/ivlev/framekit/internal/errs"
)

// Composition is the immutable configuration of one composition
type Composition struct {
	ID               string `yaml:"id" json:"id" jsonschema:"required"`
	DurationInFrames int    `yaml:"duration_in_frames" json:"durationInFrames"`
	FPS              int    `yaml:"fps" json:"fps"`
	Width            int    `yaml:"width" json:"width"`
	Height           int    `yaml:"height" json:"height"`
}

// Validate checks that every field is set and positive
func (c Composition) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: composition id is empty", errs.ErrConfiguration)
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"duration_in_frames", c.DurationInFrames},
		{"fps", c.FPS},
		{"width", c.Width},
		{"height", c.Height},
	} {
		if f.value <= 0 {
			return fmt.Errorf("%w: composition %q: %s must be positive, got %d",
				errs.ErrConfiguration, c.ID, f.name, f.value)
		}
	}
	return nil
}

// Seconds returns the composition duration in seconds
func (c Composition) Seconds() float64 {
	return float64(c.DurationInFrames) / float64(c.FPS)
}

// Frames converts seconds to a whole number of frames at the composition fps
func (c Composition) Frames(seconds float64) int {
	return int(seconds*float64(c.FPS) + 0.5)
}

// Settings tunes how the registry and the evaluation harness behave
type Settings struct {
	// Workers bounds parallel frame evaluation, 0 picks from the CPU count
	Workers int `yaml:"workers" json:"workers,omitempty"`
	// StrictDurations turns a plan/duration mismatch into a registration error
	StrictDurations bool `yaml:"strict_durations" json:"strictDurations,omitempty"`
	ShowStats       bool `yaml:"show_stats" json:"showStats,omitempty"`
}
