// Package scene defines the frame-state evaluators of every composition.
//
// An evaluator is a pure function of the frame index and the static tables
// captured at construction. Evaluators keep no state between calls, so a
// host may evaluate any frame in any order, repeatedly, from any goroutine.
package scene

import (
	"fmt"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/director"
	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/timeline"
)

// ElementKind tells the renderer how to draw an element
type ElementKind string

const (
	KindText   ElementKind = "text"
	KindShape  ElementKind = "shape"
	KindPanel  ElementKind = "panel"
	KindImage  ElementKind = "image"
	KindModule ElementKind = "module"
)

// Element is one drawable item of a frame
type Element struct {
	ID       string      `yaml:"id"`
	Kind     ElementKind `yaml:"kind"`
	Text     string      `yaml:"text,omitempty"`
	Asset    string      `yaml:"asset,omitempty"`
	Color    string      `yaml:"color,omitempty"`
	Opacity  float64     `yaml:"opacity"`
	X        float64     `yaml:"x"`
	Y        float64     `yaml:"y"`
	W        float64     `yaml:"w,omitempty"`
	H        float64     `yaml:"h,omitempty"`
	Scale    float64     `yaml:"scale"`
	Rotation float64     `yaml:"rotation,omitempty"`
}

// VisualState is the complete description of one frame
type VisualState struct {
	Composition     string               `yaml:"composition"`
	Frame           int                  `yaml:"frame"`
	Segment         int                  `yaml:"segment"`
	SegmentProgress float64              `yaml:"segment_progress"`
	Opacity         float64              `yaml:"opacity"`
	Background      string               `yaml:"background"`
	Camera          director.CameraState `yaml:"camera"`
	Elements        []Element            `yaml:"elements"`
}

// Element returns the element with the given id
func (s VisualState) Element(id string) (Element, bool) {
	for _, e := range s.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Evaluator computes the visual state of a frame
type Evaluator interface {
	Evaluate(frame int) (VisualState, error)
}

// EvaluatorFunc adapts a function to Evaluator
type EvaluatorFunc func(frame int) (VisualState, error)

func (f EvaluatorFunc) Evaluate(frame int) (VisualState, error) {
	return f(frame)
}

// Planner is implemented by evaluators that drive a segment plan, so the
// registry can compare the plan with the declared duration.
type Planner interface {
	Plan() *timeline.Plan
}

// Definition is the static declaration of a composition
type Definition struct {
	Config config.Composition
	New    func(cfg config.Composition) (Evaluator, error)
}

// Catalog returns every composition declared in this package, in
// presentation order.
func Catalog() []Definition {
	return []Definition{
		{
			Config: config.Composition{ID: TitleCardID, DurationInFrames: 150, FPS: 30, Width: 1920, Height: 1080},
			New:    func(c config.Composition) (Evaluator, error) { return NewTitleCard(c) },
		},
		{
			Config: config.Composition{ID: SlideDeckID, DurationInFrames: 360, FPS: 30, Width: 1920, Height: 1080},
			New:    func(c config.Composition) (Evaluator, error) { return NewSlideDeck(c, nil) },
		},
		{
			Config: config.Composition{ID: CodeWalkthroughID, DurationInFrames: 300, FPS: 30, Width: 1920, Height: 1080},
			New:    func(c config.Composition) (Evaluator, error) { return NewCodeWalkthrough(c, nil) },
		},
		{
			Config: config.Composition{ID: QROutroID, DurationInFrames: 120, FPS: 30, Width: 1080, Height: 1080},
			New:    func(c config.Composition) (Evaluator, error) { return NewQROutro(c, "") },
		},
	}
}

// segmentFrame is the segment-level context shared by every scene's Evaluate
type segmentFrame struct {
	res     timeline.Resolution
	opacity float64
}

func resolve(c *timeline.Composer, index int) (segmentFrame, error) {
	if index < 0 {
		return segmentFrame{}, fmt.Errorf("%w: frame %d", errs.ErrOutOfRange, index)
	}
	r, op, err := c.At(index)
	if err != nil {
		return segmentFrame{}, err
	}
	return segmentFrame{res: r, opacity: op}, nil
}

func newState(cfg config.Composition, index int, f segmentFrame, background string) VisualState {
	return VisualState{
		Composition:     cfg.ID,
		Frame:           index,
		Segment:         f.res.Index,
		SegmentProgress: f.res.Progress,
		Opacity:         f.opacity,
		Background:      background,
		Camera: director.CameraState{
			X:    float64(cfg.Width) / 2,
			Y:    float64(cfg.Height) / 2,
			Zoom: 1,
		},
	}
}
