package scene

import (
	_ "embed"
	"fmt"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/director"
	"github.com/ivlev/framekit/internal/effects"
	"github.com/ivlev/framekit/internal/interp"
	"github.com/ivlev/framekit/internal/timeline"
)

const SlideDeckID = "slide-deck"

//go:embed storyboard.yaml
var defaultStoryboard []byte

var slideDeckColors = map[string]string{
	"background": "#101418",
	"title":      "whitesmoke",
	"body":       "silver",
	"progress":   "tomato",
}

// SlideDeck shows storyboard slides one per segment. Each slide crossfades
// in and out, follows its camera keyframes and slowly pushes in.
type SlideDeck struct {
	cfg       config.Composition
	composer  *timeline.Composer
	spring    interp.Spring
	palette   Palette
	slides    []director.Slide
	keyframes [][]director.Keyframe // retimed to the planned slide lengths
	anchors   []effects.Anchor
	bodies    []effects.Typewriter
	zoom      effects.KenBurns
	fade      timeline.FadeWindow
}

// NewSlideDeck builds a deck from a storyboard, or the embedded one when sb
// is nil. The deck duration is split across slides by weight.
func NewSlideDeck(cfg config.Composition, sb *director.Storyboard) (*SlideDeck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sb == nil {
		var err error
		if sb, err = director.ParseStoryboard(defaultStoryboard); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.ID, err)
		}
	}

	fade := timeline.FadeWindow{In: cfg.Frames(0.4), Out: cfg.Frames(0.4)}
	d := &director.Director{MinDwell: fade.In + fade.Out + 1}
	lengths, err := d.Weighted(cfg.DurationInFrames, sb.Weights())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	plan, err := timeline.NewPlan(lengths...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	composer, err := timeline.NewComposer(plan, fade)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	spring, err := interp.NewSpring(cfg.FPS, interp.DefaultSpring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	palette, err := NewPalette(slideDeckColors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}

	deck := &SlideDeck{
		cfg:      cfg,
		composer: composer,
		spring:   spring,
		palette:  palette,
		slides:   sb.Slides,
		zoom:     effects.DefaultKenBurns,
		fade:     fade,
	}
	for i, sl := range sb.Slides {
		anchor, err := effects.PickAnchor("random", i)
		if err != nil {
			return nil, err
		}
		deck.anchors = append(deck.anchors, anchor)
		deck.keyframes = append(deck.keyframes, sl.ScaleKeyframes(lengths[i]))
		deck.bodies = append(deck.bodies, effects.Typewriter{
			Text:          sl.Body,
			StartFrame:    cfg.Frames(0.6),
			FramesPerChar: 1,
		})
	}
	return deck, nil
}

func (s *SlideDeck) Plan() *timeline.Plan { return s.composer.Plan() }

func (s *SlideDeck) Evaluate(index int) (VisualState, error) {
	f, err := resolve(s.composer, index)
	if err != nil {
		return VisualState{}, err
	}
	st := newState(s.cfg, index, f, s.palette["background"])

	i, local := f.res.Index, f.res.Local
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)

	cam := director.Camera(s.keyframes[i], local)
	cam.Zoom *= s.zoom.Zoom(local, f.res.Length, s.fade.Out)
	st.Camera = cam

	ox, oy := s.anchors[i].Offset(w, h, cam.Zoom)
	slide := s.slides[i]
	p := s.spring.At(local)

	st.Elements = append(st.Elements,
		Element{
			ID:      fmt.Sprintf("slide-%d-title", slide.ID),
			Kind:    KindText,
			Text:    slide.Title,
			Color:   s.palette["title"],
			Opacity: p * f.opacity,
			X:       w*0.1 - ox - (1-p)*80,
			Y:       h*0.25 - oy,
			Scale:   1,
		},
		Element{
			ID:      fmt.Sprintf("slide-%d-body", slide.ID),
			Kind:    KindText,
			Text:    s.bodies[i].Reveal(local),
			Color:   s.palette["body"],
			Opacity: f.opacity,
			X:       w*0.1 - ox,
			Y:       h*0.45 - oy,
			Scale:   1,
		},
		Element{
			ID:      "progress",
			Kind:    KindShape,
			Color:   s.palette["progress"],
			Opacity: 1,
			X:       0,
			Y:       h - 8,
			W:       w * deckProgress(s.composer.Plan(), f.res),
			H:       8,
			Scale:   1,
		},
	)
	return st, nil
}

// deckProgress is the fraction of the whole deck elapsed at a resolution
func deckProgress(p *timeline.Plan, r timeline.Resolution) float64 {
	return interp.Ramp(float64(r.Start+r.Local), 0, float64(p.Total()))
}
