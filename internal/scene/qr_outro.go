package scene

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/framekit/internal/config"
	"github.com/ivlev/framekit/internal/effects"
	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/interp"
	"github.com/ivlev/framekit/internal/timeline"
)

const QROutroID = "qr-outro"

// DefaultQRContent is encoded when NewQROutro is given no content
const DefaultQRContent = "https://github.com/ivlev/framekit"

const (
	qrBlockSize  = 3  // modules per block side; blocks reveal together
	qrRevealSeed = 17 // seed for per-block delays
	qrRampFrames = 6  // frames for a block to fade in
)

var qrColors = map[string]string{
	"background": "ivory",
	"module":     "black",
	"cta":        "darkslategray",
}

type qrModule struct {
	row, col int
	delay    int
}

// QROutro reveals a QR code block by block in a stable pseudo-random order,
// then springs in a call to action.
type QROutro struct {
	cfg      config.Composition
	composer *timeline.Composer
	spring   interp.Spring
	palette  Palette
	size     int // modules per side
	modules  []qrModule
	cta      effects.Typewriter
}

// NewQROutro encodes content (DefaultQRContent when empty) once and
// precomputes the delay of every dark module.
func NewQROutro(cfg config.Composition, content string) (*QROutro, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if content == "" {
		content = DefaultQRContent
	}

	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: encode qr: %v", errs.ErrConfiguration, cfg.ID, err)
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()

	backdrop, hold := cfg.Frames(0.7), cfg.Frames(1)
	reveal := cfg.DurationInFrames - backdrop - hold
	plan, err := timeline.NewPlan(backdrop, reveal, hold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	composer, err := timeline.NewComposer(plan,
		timeline.FadeWindow{In: cfg.Frames(0.3)},
		timeline.FadeWindow{},
		timeline.FadeWindow{Out: cfg.Frames(0.3)},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	spring, err := interp.NewSpring(cfg.FPS, interp.DefaultSpring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}
	palette, err := NewPalette(qrColors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.ID, err)
	}

	size := len(bitmap)
	blocksPerRow := (size + qrBlockSize - 1) / qrBlockSize
	maxDelay := reveal - qrRampFrames
	if maxDelay < 0 {
		maxDelay = 0
	}

	s := &QROutro{
		cfg:      cfg,
		composer: composer,
		spring:   spring,
		palette:  palette,
		size:     size,
		cta:      effects.Typewriter{Text: "scan to get the source", FramesPerChar: 0.5},
	}
	for r, row := range bitmap {
		for c, dark := range row {
			if !dark {
				continue
			}
			block := (r/qrBlockSize)*blocksPerRow + c/qrBlockSize
			s.modules = append(s.modules, qrModule{
				row:   r,
				col:   c,
				delay: effects.BlockDelay(block, qrRevealSeed, maxDelay),
			})
		}
	}
	return s, nil
}

func (s *QROutro) Plan() *timeline.Plan { return s.composer.Plan() }

// Size returns the number of modules per side of the code
func (s *QROutro) Size() int { return s.size }

func (s *QROutro) Evaluate(index int) (VisualState, error) {
	f, err := resolve(s.composer, index)
	if err != nil {
		return VisualState{}, err
	}
	st := newState(s.cfg, index, f, s.palette["background"])

	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	side := 0.6 * min(w, h)
	cell := side / float64(s.size)
	left, top := (w-side)/2, (h-side)/2-0.05*h

	// frames since the reveal segment began; negative before it
	plan := s.composer.Plan()
	elapsed := f.res.Start + f.res.Local - plan.Start(1)

	st.Elements = make([]Element, 0, len(s.modules)+1)
	for _, m := range s.modules {
		op := interp.Ramp(float64(elapsed-m.delay), 0, qrRampFrames)
		st.Elements = append(st.Elements, Element{
			ID:      fmt.Sprintf("module-%d-%d", m.row, m.col),
			Kind:    KindModule,
			Color:   s.palette["module"],
			Opacity: op * f.opacity,
			X:       left + float64(m.col)*cell,
			Y:       top + float64(m.row)*cell,
			W:       cell,
			H:       cell,
			Scale:   0.6 + 0.4*op,
		})
	}

	ctaText := ""
	p := 0.0
	if f.res.Index == plan.Len()-1 {
		ctaText = s.cta.Reveal(f.res.Local)
		p = s.spring.At(f.res.Local)
	}
	st.Elements = append(st.Elements, Element{
		ID:      "cta",
		Kind:    KindText,
		Text:    ctaText,
		Color:   s.palette["cta"],
		Opacity: p * f.opacity,
		X:       w / 2,
		Y:       top + side + 0.06*h + (1-p)*30,
		Scale:   1,
	})
	return st, nil
}
