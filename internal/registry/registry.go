// Package registry holds the compositions available to a host, in
// registration order, and resolves them by id.
package registry

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/scene"
	"github.com/ivlev/framekit/internal/timeline"
)

// Entry pairs a composition configuration with its evaluator
type Entry struct {
	Config    config.Composition
	Evaluator scene.Evaluator
}

// Registry is filled once at startup and read concurrently afterwards.
// Register after Seal fails with ErrSealed.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
	sealed  bool
	strict  bool
	logger  *log.Logger
}

// Option configures a Registry
type Option func(*Registry)

// Strict makes a segment plan that disagrees with the declared duration a
// registration error instead of a warning.
func Strict(strict bool) Option {
	return func(r *Registry) { r.strict = strict }
}

// Logger sets where warnings go. nil keeps log.Default().
func Logger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		index:  make(map[string]int),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates cfg and adds the composition. Evaluators that expose
// their segment plan are checked against cfg.DurationInFrames.
func (r *Registry) Register(cfg config.Composition, ev scene.Evaluator) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if ev == nil {
		return fmt.Errorf("%w: composition %q has no evaluator", errs.ErrConfiguration, cfg.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", errs.ErrSealed, cfg.ID)
	}
	if _, ok := r.index[cfg.ID]; ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateID, cfg.ID)
	}

	if p, ok := ev.(scene.Planner); ok {
		if err := p.Plan().CheckDuration(cfg.DurationInFrames); err != nil {
			var mismatch *timeline.DurationMismatch
			if r.strict || !errors.As(err, &mismatch) {
				return fmt.Errorf("%w: composition %q: %v", errs.ErrConfiguration, cfg.ID, err)
			}
			r.logger.Printf("[!] composition %s: %v", cfg.ID, err)
		}
	}

	r.index[cfg.ID] = len(r.entries)
	r.entries = append(r.entries, Entry{Config: cfg, Evaluator: ev})
	return nil
}

// Seal freezes the registry
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// List returns the registered entries in registration order
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Resolve looks up a composition by id
func (r *Registry) Resolve(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", errs.ErrNotFound, id)
	}
	return r.entries[i], nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
