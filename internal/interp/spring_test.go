package interp

import (
	"errors"
	"testing"

	"github.com/ivlev/framekit/internal/errs"
)

func TestSpringProgressBeforeStart(t *testing.T) {
	for _, elapsed := range []int{-5, -1, 0} {
		got, err := SpringProgress(elapsed, 30, 12, 150)
		if err != nil {
			t.Fatalf("SpringProgress failed: %v", err)
		}
		if got != 0 {
			t.Errorf("SpringProgress(%d) = %v, want 0", elapsed, got)
		}
	}
}

func TestSpringMonotonicAndConverges(t *testing.T) {
	configs := []SpringConfig{
		DefaultSpring,
		{Damping: 10, Stiffness: 100, Mass: 1, OvershootClamping: true},
		{Damping: 200, Stiffness: 100, Mass: 1}, // overdamped
		{Damping: 20, Stiffness: 100, Mass: 1},  // critically damped
	}

	for _, cfg := range configs {
		s, err := NewSpring(30, cfg)
		if err != nil {
			t.Fatalf("NewSpring(%+v) failed: %v", cfg, err)
		}

		prev := 0.0
		for e := 0; e <= 240; e++ {
			v := s.At(e)
			if v < prev {
				t.Fatalf("%+v: not monotonic at %d: %v < %v", cfg, e, v, prev)
			}
			if v > 1 {
				t.Fatalf("%+v: exceeded 1 at %d: %v", cfg, e, v)
			}
			prev = v
		}
		t.Logf("zeta=%.2f progress@10=%.3f progress@60=%.3f", cfg.DampingRatio(), s.At(10), s.At(60))
	}

	got, _ := SpringProgress(60, 30, 12, 150)
	if got <= 0.98 {
		t.Errorf("default spring at 60 frames = %v, want > 0.98", got)
	}
}

func TestSpringIsPure(t *testing.T) {
	s, err := NewSpring(30, DefaultSpring)
	if err != nil {
		t.Fatal(err)
	}
	first := s.At(7)
	s.At(100)
	s.At(3)
	if again := s.At(7); again != first {
		t.Errorf("At(7) changed between calls: %v != %v", first, again)
	}
}

func TestSpringWithoutClampingOvershoots(t *testing.T) {
	cfg := DefaultSpring
	cfg.OvershootClamping = false
	s, err := NewSpring(30, cfg)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0.0
	for e := 0; e < 60; e++ {
		if v := s.At(e); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Errorf("underdamped spring without clamping should overshoot, peak %v", peak)
	}
	if v := s.At(1000); v != 1 {
		t.Errorf("spring should settle to 1, got %v", v)
	}
}

func TestSpringConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		cfg  SpringConfig
	}{
		{"zero fps", 0, DefaultSpring},
		{"zero stiffness", 30, SpringConfig{Damping: 1, Stiffness: 0, Mass: 1}},
		{"zero damping", 30, SpringConfig{Damping: 0, Stiffness: 100, Mass: 1}},
		{"zero mass", 30, SpringConfig{Damping: 10, Stiffness: 100, Mass: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpring(tt.fps, tt.cfg); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}
