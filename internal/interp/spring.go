package interp

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/ivlev/framekit/internal/errs"
)

const (
	// restThreshold is how close to target, in both displacement and
	// velocity, a spring must be to count as settled
	restThreshold = 1e-4

	// maxSettleSeconds bounds the integration for very soft springs
	maxSettleSeconds = 600
)

// SpringConfig parameterizes a damped spring in physical units
type SpringConfig struct {
	Damping           float64 `yaml:"damping"`
	Stiffness         float64 `yaml:"stiffness"`
	Mass              float64 `yaml:"mass"`
	OvershootClamping bool    `yaml:"overshoot_clamping"`
}

// DefaultSpring is the entrance spring used across the scenes
var DefaultSpring = SpringConfig{
	Damping:           12,
	Stiffness:         150,
	Mass:              1,
	OvershootClamping: true,
}

// Validate reports whether the spring can settle
func (c SpringConfig) Validate() error {
	if !(c.Stiffness > 0) {
		return fmt.Errorf("%w: spring stiffness must be positive, got %v", errs.ErrConfiguration, c.Stiffness)
	}
	if !(c.Damping > 0) {
		return fmt.Errorf("%w: spring damping must be positive, got %v", errs.ErrConfiguration, c.Damping)
	}
	if !(c.Mass > 0) {
		return fmt.Errorf("%w: spring mass must be positive, got %v", errs.ErrConfiguration, c.Mass)
	}
	return nil
}

// AngularFrequency returns the undamped natural frequency sqrt(k/m)
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns c / (2*sqrt(k*m)); below 1 the spring overshoots
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring evaluates a 0 -> 1 spring response sampled once per frame.
// It is an immutable value and safe for concurrent use.
type Spring struct {
	cfg      SpringConfig
	fps      int
	step     harmonica.Spring
	maxSteps int
}

// NewSpring validates cfg and precomputes the per-frame integrator
func NewSpring(fps int, cfg SpringConfig) (Spring, error) {
	if fps <= 0 {
		return Spring{}, fmt.Errorf("%w: fps must be positive, got %d", errs.ErrConfiguration, fps)
	}
	if err := cfg.Validate(); err != nil {
		return Spring{}, err
	}
	return Spring{
		cfg:      cfg,
		fps:      fps,
		step:     harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
		maxSteps: fps * maxSettleSeconds,
	}, nil
}

// Config returns the spring parameters
func (s Spring) Config() SpringConfig {
	return s.cfg
}

// At returns the spring progress elapsed frames after it started.
// The response is integrated from rest on every call, so the result depends
// only on elapsed and the spring parameters.
func (s Spring) At(elapsed int) float64 {
	if elapsed <= 0 || s.fps == 0 {
		return 0
	}

	pos, vel := 0.0, 0.0
	for i := 0; i < elapsed; i++ {
		if i >= s.maxSteps {
			break
		}
		pos, vel = s.step.Update(pos, vel, 1)
		if s.cfg.OvershootClamping && pos >= 1 {
			return 1
		}
		if math.Abs(1-pos) < restThreshold && math.Abs(vel) < restThreshold {
			return 1
		}
	}
	return pos
}

// Interpolate maps the spring progress onto [from, to]
func (s Spring) Interpolate(elapsed int, from, to float64) float64 {
	return lerp(from, to, s.At(elapsed))
}

// SpringProgress is the one-shot form of NewSpring(...).At(elapsed) with unit
// mass and overshoot clamping.
func SpringProgress(elapsed, fps int, damping, stiffness float64) (float64, error) {
	s, err := NewSpring(fps, SpringConfig{
		Damping:           damping,
		Stiffness:         stiffness,
		Mass:              1,
		OvershootClamping: true,
	})
	if err != nil {
		return 0, err
	}
	return s.At(elapsed), nil
}
