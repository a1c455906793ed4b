// Package engine is a reference rendering host: it evaluates frame ranges of
// registered compositions in parallel and dumps the resulting states.
package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"reflect"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/registry"
	"github.com/ivlev/framekit/internal/scene"
	"github.com/ivlev/framekit/internal/system"
)

type Project struct {
	Registry  *registry.Registry
	Workers   int
	Logger    *log.Logger
	ShowStats bool
}

// NewProject sizes the worker pool from settings.Workers, or from the host
// CPU count when it is zero.
func NewProject(reg *registry.Registry, settings config.Settings, logger *log.Logger) *Project {
	if logger == nil {
		logger = log.Default()
	}
	return &Project{
		Registry:  reg,
		Workers:   system.Workers(settings.Workers),
		Logger:    logger,
		ShowStats: settings.ShowStats,
	}
}

// Report describes one Render call
type Report struct {
	Composition string
	Frames      int
	Workers     int
	Elapsed     time.Duration
	Memory      system.Memory
}

// FPS is the effective evaluation rate
func (r Report) FPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}

func (r Report) String() string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Composition: %s\n"+
			"Frames: %d | Workers: %d\n"+
			"Total Time: %.3fs\n"+
			"Effective FPS: %.2f\n"+
			"Memory: %s\n"+
			"----------------------------\n",
		r.Composition, r.Frames, r.Workers, r.Elapsed.Seconds(), r.FPS(), r.Memory,
	)
}

// Render evaluates frames [from, to) of composition id. The result is
// indexed by frame-from regardless of the order workers finish in. Frames
// past the declared duration are allowed and hold the last segment.
func (p *Project) Render(ctx context.Context, id string, from, to int) ([]scene.VisualState, Report, error) {
	report := Report{Composition: id, Workers: p.workers()}
	if from < 0 || to < from {
		return nil, report, fmt.Errorf("%w: frame range [%d, %d)", errs.ErrOutOfRange, from, to)
	}
	entry, err := p.Registry.Resolve(id)
	if err != nil {
		return nil, report, err
	}

	start := time.Now()
	states := make([]scene.VisualState, to-from)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(report.Workers)
	for i := range states {
		frame := from + i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := entry.Evaluator.Evaluate(frame)
			if err != nil {
				return fmt.Errorf("%s frame %d: %w", id, frame, err)
			}
			states[frame-from] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.Logger.Printf("[!] render %s failed: %v", id, err)
		return nil, report, err
	}

	report.Frames = len(states)
	report.Elapsed = time.Since(start)
	if p.ShowStats {
		report.Memory = system.MemoryReport()
		p.Logger.Print(report.String())
	}
	return states, report, nil
}

// Mismatch is a frame whose state differed between evaluations
type Mismatch struct {
	Composition string
	Frame       int
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("composition %s frame %d is not deterministic", m.Composition, m.Frame)
}

// Verify evaluates frames sequentially, then again in reverse from parallel
// workers, and returns every frame whose two states differ.
func (p *Project) Verify(ctx context.Context, id string, frames []int) ([]Mismatch, error) {
	entry, err := p.Registry.Resolve(id)
	if err != nil {
		return nil, err
	}

	want := make([]scene.VisualState, len(frames))
	for i, f := range frames {
		if want[i], err = entry.Evaluator.Evaluate(f); err != nil {
			return nil, fmt.Errorf("%s frame %d: %w", id, f, err)
		}
	}

	got := make([]scene.VisualState, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i := len(frames) - 1; i >= 0; i-- {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := entry.Evaluator.Evaluate(frames[i])
			if err != nil {
				return fmt.Errorf("%s frame %d: %w", id, frames[i], err)
			}
			got[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Mismatch
	for i := range frames {
		if !reflect.DeepEqual(want[i], got[i]) {
			m := Mismatch{Composition: id, Frame: frames[i]}
			p.Logger.Printf("[!] %v", m)
			out = append(out, m)
		}
	}
	return out, nil
}

// VerifyAll runs Verify over every frame of every registered composition
func (p *Project) VerifyAll(ctx context.Context) ([]Mismatch, error) {
	var out []Mismatch
	for _, e := range p.Registry.List() {
		frames := make([]int, e.Config.DurationInFrames)
		for i := range frames {
			frames[i] = i
		}
		m, err := p.Verify(ctx, e.Config.ID, frames)
		if err != nil {
			return out, err
		}
		out = append(out, m...)
		p.Logger.Printf("[*] %s: %d frames verified", e.Config.ID, len(frames))
	}
	return out, nil
}

// WriteTimeline dumps states as a YAML sequence
func WriteTimeline(w io.Writer, states []scene.VisualState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(states); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Project) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return 1
}
