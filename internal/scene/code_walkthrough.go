package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/effects"
	"github.com/ivlev/framekit/internal/interp"
	"github.com/ivlev/framekit/internal/timeline"
)

const CodeWalkthroughID = "code-walkthrough"

const (
	lineHeight    = 36.0
	panelViewport = 600.0
)

var walkthroughColors = map[string]string{
	"background": "#1e1e2e",
	"text":       "gainsboro",
	"accent":     "deepskyblue",
	"error":      "crimson",
	"highlight":  "limegreen",
}

// DefaultPanels is the walkthrough shown when no panels are supplied
var DefaultPanels = []Content{
	{
		Kind:  ContentError,
		Title: "the bug",
		Lines: []string{
			"panic: frame counter drifted",
			"  at render loop, frame 212",
			"  state carried over from frame 211",
		},
	},
	{
		Kind:  ContentCode,
		Title: "the fix",
		Lines: []string{
			"func (s *Scene) Evaluate(frame int) (State, error) {",
			"\tres, err := s.plan.Resolve(frame)",
			"\tif err != nil {",
			"\t\treturn State{}, err",
			"\t}",
			"\topacity := timeline.Opacity(res, s.fade)",
			"\tp := s.spring.At(res.Local)",
			"\treturn State{",
			"\t\tSegment: res.Index,",
			"\t\tOpacity: opacity,",
			"\t\tRise:    (1 - p) * 60,",
			"\t}, nil",
			"}",
			"",
			"// no fields are written during Evaluate",
			"// so frames can be computed in any order",
			"",
			"func render(s *Scene, frames []int) {",
			"\tfor _, f := range frames {",
			"\t\tstate, _ := s.Evaluate(f)",
			"\t\tdraw(state)",
			"\t}",
			"}",
		},
	},
	{
		Kind:   ContentCompare,
		Title:  "before and after",
		Before: "frame = frame + 1",
		After:  "state = evaluate(frame)",
	},
	{
		Kind:    ContentImage,
		Title:   "the result",
		Asset:   "assets/timeline.png",
		Caption: "identical output on every run",
	},
}

// CodeWalkthrough shows one content panel per segment, typing its text and
// scrolling when the text overflows the panel.
type CodeWalkthrough struct {
	cfg      config.Composition
	composer *timeline.Composer
	spring   interp.Spring
	palette  Palette
	panels   []Content
	typing   []effects.Typewriter
	zoom     effects.KenBurns
}

// NewCodeWalkthrough builds the walkthrough. panels defaults to
// DefaultPanels; every panel gets an equal share of the duration.
func NewCodeWalkthrough(cfg config.Composition, panels []Content) (*CodeWalkthrough, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if panels == nil {
		panels = DefaultPanels
	}
	for _, p := range panels {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.ID, err)
		}
	}

	perPanel := cfg.Frames(2.5)
	lengths := make([]int, len(panels))
	for i := range lengths {
		lengths[i] = perPanel
	}
	plan, err := timeline.NewPlan(lengths...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	composer, err := timeline.NewComposer(plan, timeline.FadeWindow{In: cfg.Frames(0.25), Out: cfg.Frames(0.25)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	spring, err := interp.NewSpring(cfg.FPS, interp.SpringConfig{Damping: 14, Stiffness: 180, Mass: 1, OvershootClamping: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	palette, err := NewPalette(walkthroughColors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}

	s := &CodeWalkthrough{
		cfg:      cfg,
		composer: composer,
		spring:   spring,
		palette:  palette,
		panels:   panels,
		zoom:     effects.KenBurns{Speed: 0.002, Peak: 1.2},
	}

	// typing finishes a third of a second before the fade-out
	typingFrames := float64(perPanel - cfg.Frames(0.25) - cfg.Frames(0.6))
	for _, p := range panels {
		n := len([]rune(p.Text()))
		fpc := 1.0
		if n > 0 && typingFrames > 0 {
			fpc = math.Min(2, typingFrames/float64(n))
		}
		s.typing = append(s.typing, effects.Typewriter{Text: p.Text(), StartFrame: cfg.Frames(0.3), FramesPerChar: fpc})
	}
	return s, nil
}

func (s *CodeWalkthrough) Plan() *timeline.Plan { return s.composer.Plan() }

func (s *CodeWalkthrough) Evaluate(index int) (VisualState, error) {
	f, err := resolve(s.composer, index)
	if err != nil {
		return VisualState{}, err
	}
	st := newState(s.cfg, index, f, s.palette["background"])

	i, local := f.res.Index, f.res.Local
	panel := s.panels[i]
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	p := s.spring.At(local)

	left, top := w*0.15, h*0.2
	st.Elements = append(st.Elements,
		Element{
			ID:      "panel",
			Kind:    KindPanel,
			Color:   s.palette[panel.AccentRole()],
			Opacity: f.opacity,
			X:       left + s.shake(panel, local),
			Y:       top + (1-p)*40,
			W:       w * 0.7,
			H:       panelViewport + 80,
			Scale:   0.95 + 0.05*p,
		},
		Element{
			ID:      "panel-title",
			Kind:    KindText,
			Text:    panel.Title,
			Color:   s.palette[panel.AccentRole()],
			Opacity: p * f.opacity,
			X:       left + 24,
			Y:       top + 16,
			Scale:   1,
		},
	)

	body := top + 80
	switch panel.Kind {
	case ContentError, ContentCode:
		st.Elements = append(st.Elements, s.lines(panel, i, f, left+24, body)...)
	case ContentCompare:
		st.Elements = append(st.Elements, s.compare(panel, f, left+24, body, w*0.7-48)...)
	case ContentImage:
		st.Elements = append(st.Elements,
			Element{
				ID:      "image",
				Kind:    KindImage,
				Asset:   panel.Asset,
				Opacity: f.opacity,
				X:       left + 24,
				Y:       body,
				W:       w*0.7 - 48,
				H:       panelViewport - 80,
				Scale:   s.zoom.Zoom(local, f.res.Length, s.composer.Window(i).Out),
			},
			Element{
				ID:      "caption",
				Kind:    KindText,
				Text:    s.typing[i].Reveal(local),
				Color:   s.palette["text"],
				Opacity: f.opacity,
				X:       left + 24,
				Y:       body + panelViewport - 60,
				Scale:   1,
			},
		)
	}
	return st, nil
}

// lines splits the revealed text back into lines and scrolls them so the
// panel viewport follows the typing.
func (s *CodeWalkthrough) lines(panel Content, i int, f segmentFrame, x, top float64) []Element {
	revealed := strings.Split(s.typing[i].Reveal(f.res.Local), "\n")
	content := float64(len(panel.Lines)) * lineHeight
	scroll := effects.Scroll(f.res.Local, f.res.Length, content, panelViewport)

	out := make([]Element, 0, len(panel.Lines))
	for n := range panel.Lines {
		text := ""
		if n < len(revealed) {
			text = revealed[n]
		}
		y := top + float64(n)*lineHeight - scroll
		out = append(out, Element{
			ID:      fmt.Sprintf("line-%d", n),
			Kind:    KindText,
			Text:    text,
			Color:   s.palette["text"],
			Opacity: f.opacity * lineVisibility(y-top),
			X:       x,
			Y:       y,
			Scale:   1,
		})
	}
	return out
}

// lineVisibility fades lines out at the top and bottom edge of the viewport
func lineVisibility(offset float64) float64 {
	in := interp.Ramp(offset, -lineHeight, 0)
	out := 1 - interp.Ramp(offset, panelViewport-lineHeight, panelViewport)
	return math.Min(in, out)
}

// compare wipes from the before text to the after text across the panel
func (s *CodeWalkthrough) compare(panel Content, f segmentFrame, x, y, width float64) []Element {
	wipe := interp.EaseInOutCubic(interp.Ramp(f.res.Progress, 0.3, 0.7))
	return []Element{
		{
			ID:      "before",
			Kind:    KindText,
			Text:    panel.Before,
			Color:   s.palette["error"],
			Opacity: f.opacity * (1 - wipe),
			X:       x,
			Y:       y,
			Scale:   1,
		},
		{
			ID:      "after",
			Kind:    KindText,
			Text:    panel.After,
			Color:   s.palette["highlight"],
			Opacity: f.opacity * wipe,
			X:       x,
			Y:       y + 2*lineHeight,
			Scale:   1,
		},
		{
			ID:      "divider",
			Kind:    KindShape,
			Color:   s.palette["accent"],
			Opacity: f.opacity,
			X:       x + width*wipe,
			Y:       y - lineHeight,
			W:       4,
			H:       4 * lineHeight,
			Scale:   1,
		},
	}
}

// shake jitters error panels while their entrance spring is still moving
func (s *CodeWalkthrough) shake(panel Content, local int) float64 {
	if panel.Kind != ContentError {
		return 0
	}
	return effects.Drift(local, 1.5, 12*(1-s.spring.At(local)), 0)
}
