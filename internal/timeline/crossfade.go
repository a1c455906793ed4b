package timeline

import (
	"fmt"
	"math"

	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/interp"
)

// FadeWindow is the number of frames at each end of a segment used for the
// opacity ramp.
type FadeWindow struct {
	In  int `yaml:"in"`
	Out int `yaml:"out"`
}

// Validate rejects negative windows
func (w FadeWindow) Validate() error {
	if w.In < 0 || w.Out < 0 {
		return fmt.Errorf("%w: fade window must be non-negative, got in=%d out=%d", errs.ErrConfiguration, w.In, w.Out)
	}
	return nil
}

// Opacity returns the crossfade opacity for a resolved frame
func Opacity(r Resolution, w FadeWindow) float64 {
	return OpacityAt(r.Local, r.Length, w)
}

// OpacityAt ramps 0 -> 1 over the first In frames of a segment and 1 -> 0
// over the last Out frames. When the ramps overlap the lower one wins, so
// the result never leaves [0,1].
func OpacityAt(local, length int, w FadeWindow) float64 {
	l, n := float64(local), float64(length)

	rising := 1.0
	if w.In > 0 {
		rising = interp.Ramp(l, 0, float64(w.In))
	}
	falling := 1.0
	if w.Out > 0 {
		falling = 1 - interp.Ramp(l, n-float64(w.Out), n)
	}
	return math.Min(rising, falling)
}

// Composer pairs a plan with fade windows
type Composer struct {
	plan    *Plan
	windows []FadeWindow
}

// NewComposer accepts either one window shared by every segment or exactly
// one window per segment.
func NewComposer(plan *Plan, windows ...FadeWindow) (*Composer, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: composer needs a plan", errs.ErrConfiguration)
	}

	switch len(windows) {
	case 0:
		windows = []FadeWindow{{}}
	case 1, plan.Len():
	default:
		return nil, fmt.Errorf("%w: %d fade windows for %d segments", errs.ErrConfiguration, len(windows), plan.Len())
	}

	ws := make([]FadeWindow, len(windows))
	for i, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		ws[i] = w
	}
	return &Composer{plan: plan, windows: ws}, nil
}

// Plan returns the underlying segment plan
func (c *Composer) Plan() *Plan {
	return c.plan
}

// Window returns the fade window of segment i
func (c *Composer) Window(i int) FadeWindow {
	if len(c.windows) == 1 {
		return c.windows[0]
	}
	return c.windows[i]
}

// At resolves frame and computes the opacity of its segment
func (c *Composer) At(frame int) (Resolution, float64, error) {
	r, err := c.plan.Resolve(frame)
	if err != nil {
		return Resolution{}, 0, err
	}
	return r, Opacity(r, c.Window(r.Index)), nil
}
