package scene

import (
	"fmt"
	"strings"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/effects"
	"github.com/ivlev/framekit/internal/interp"
	"github.com/ivlev/framekit/internal/timeline"
)

const TitleCardID = "title-card"

// Title card constants
var titleCard = struct {
	Title         string
	Subtitle      string
	Colors        map[string]string
	EntranceSecs  float64
	TypingSecs    float64
	HoldSecs      float64
	StaggerFrames int
	RiseOffset    float64
}{
	Title:    "Frame Driven Motion",
	Subtitle: "every frame is a pure function of its index",
	Colors: map[string]string{
		"background": "midnightblue",
		"title":      "white",
		"subtitle":   "lightsteelblue",
		"orb":        "gold",
	},
	EntranceSecs:  1.5,
	TypingSecs:    2,
	HoldSecs:      1.5,
	StaggerFrames: 4,
	RiseOffset:    60,
}

// TitleCard springs the title in word by word, types the subtitle, then
// fades out over the hold segment.
type TitleCard struct {
	cfg      config.Composition
	composer *timeline.Composer
	spring   interp.Spring
	palette  Palette
	words    []string
	subtitle effects.Typewriter
}

// NewTitleCard builds the segment plan and tables for cfg
func NewTitleCard(cfg config.Composition) (*TitleCard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entrance := cfg.Frames(titleCard.EntranceSecs)
	typing := cfg.Frames(titleCard.TypingSecs)
	hold := cfg.Frames(titleCard.HoldSecs)
	plan, err := timeline.NewPlan(entrance, typing, hold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	composer, err := timeline.NewComposer(plan,
		timeline.FadeWindow{In: cfg.Frames(0.3)},
		timeline.FadeWindow{},
		timeline.FadeWindow{Out: cfg.Frames(0.5)},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}

	spring, err := interp.NewSpring(cfg.FPS, interp.DefaultSpring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	palette, err := NewPalette(titleCard.Colors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}

	text := titleCard.Subtitle
	return &TitleCard{
		cfg:      cfg,
		composer: composer,
		spring:   spring,
		palette:  palette,
		words:    strings.Fields(titleCard.Title),
		subtitle: effects.Typewriter{
			Text:          text,
			StartFrame:    cfg.Frames(0.2),
			FramesPerChar: float64(typing-cfg.Frames(0.4)) / float64(len([]rune(text))),
		},
	}, nil
}

func (s *TitleCard) Plan() *timeline.Plan { return s.composer.Plan() }

func (s *TitleCard) Evaluate(index int) (VisualState, error) {
	f, err := resolve(s.composer, index)
	if err != nil {
		return VisualState{}, err
	}
	st := newState(s.cfg, index, f, s.palette["background"])

	w, h := float64(s.cfg.Width), float64(s.cfg.Height)

	st.Elements = append(st.Elements, Element{
		ID:      "orb",
		Kind:    KindShape,
		Color:   s.palette["orb"],
		Opacity: 0.35 * f.opacity,
		X:       w*0.7 + effects.Drift(index, 40, w*0.02, 0),
		Y:       h*0.3 + effects.Drift(index, 55, h*0.03, 1.3),
		W:       h * 0.4,
		H:       h * 0.4,
		Scale:   1 + 0.05*effects.Drift(index, 25, 1, 0),
	})

	// words are laid out left to right around the center, 0.6em apart
	lineWidth := 0.0
	for _, word := range s.words {
		lineWidth += float64(len([]rune(word))) + 0.6
	}
	em := w * 0.7 / lineWidth
	x := w/2 - (lineWidth-0.6)*em/2
	for i, word := range s.words {
		p := effects.Stagger(s.spring, index, i, titleCard.StaggerFrames)
		st.Elements = append(st.Elements, Element{
			ID:      fmt.Sprintf("title-%d", i),
			Kind:    KindText,
			Text:    word,
			Color:   s.palette["title"],
			Opacity: p * f.opacity,
			X:       x,
			Y:       h*0.45 + (1-p)*titleCard.RiseOffset,
			Scale:   0.8 + 0.2*p,
		})
		x += (float64(len([]rune(word))) + 0.6) * em
	}

	var subtitle string
	switch {
	case f.res.Index == 1:
		subtitle = s.subtitle.Cursor(f.res.Local, s.cfg.Frames(0.5))
	case f.res.Index > 1:
		subtitle = s.subtitle.Text
	}
	st.Elements = append(st.Elements, Element{
		ID:      "subtitle",
		Kind:    KindText,
		Text:    subtitle,
		Color:   s.palette["subtitle"],
		Opacity: f.opacity,
		X:       w / 2,
		Y:       h * 0.6,
		Scale:   1,
	})

	return st, nil
}
