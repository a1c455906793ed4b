// Package effects holds the per-element motion helpers scenes combine into a
// frame state. Every helper is a pure function of its arguments.
package effects

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/ivlev/framekit/internal/errs"
	"github.com/ivlev/framekit/internal/interp"
)

// Drift is a continuous sine oscillation independent of segment boundaries
func Drift(frame int, period, amplitude, phase float64) float64 {
	if period == 0 {
		return 0
	}
	return math.Sin(float64(frame)/period+phase) * amplitude
}

// Stagger returns the spring progress of element index whose entrance is
// delayed by index*staggerFrames.
func Stagger(s interp.Spring, frame, index, staggerFrames int) float64 {
	return s.At(frame - index*staggerFrames)
}

// Typewriter reveals Text one rune per FramesPerChar frames starting at
// StartFrame (segment-local).
type Typewriter struct {
	Text          string
	StartFrame    int
	FramesPerChar float64
}

// Reveal returns the visible prefix of the text at a segment-local frame
func (t Typewriter) Reveal(local int) string {
	runes := []rune(t.Text)
	return string(runes[:t.Count(local)])
}

// Count returns the number of visible runes at a segment-local frame
func (t Typewriter) Count(local int) int {
	n := len([]rune(t.Text))
	if n == 0 {
		return 0
	}
	fpc := t.FramesPerChar
	if fpc <= 0 {
		fpc = 1
	}
	start := float64(t.StartFrame)
	end := start + fpc*float64(n)

	v, err := interp.Lerp(float64(local), []float64{start, end}, []float64{0, float64(n)}, interp.Clamped)
	if err != nil {
		return 0
	}
	return int(math.Floor(v))
}

// Done reports whether the whole text is visible
func (t Typewriter) Done(local int) bool {
	return t.Count(local) == len([]rune(t.Text))
}

// Cursor returns the text with a caret that blinks every blinkFrames frames
func (t Typewriter) Cursor(local, blinkFrames int) string {
	text := t.Reveal(local)
	if blinkFrames <= 0 || (local/blinkFrames)%2 == 0 {
		return text + "▌"
	}
	return text
}

// KenBurns zooms in at Speed per frame up to Peak, holds, and returns to 1
// OutroFrames before the segment's fade-out begins.
type KenBurns struct {
	Speed       float64 `yaml:"speed"`
	Peak        float64 `yaml:"peak"`
	OutroFrames int     `yaml:"outro_frames"`
}

// DefaultKenBurns mirrors the slow push-in used for slides
var DefaultKenBurns = KenBurns{Speed: 0.001, Peak: 1.5, OutroFrames: 15}

// Zoom returns the zoom factor at a segment-local frame
func (k KenBurns) Zoom(local, length, fadeOut int) float64 {
	speed := k.Speed
	if speed <= 0 {
		speed = 0.001
	}
	peak := k.Peak
	if peak <= 1 {
		peak = 1.5
	}

	active := float64(length - fadeOut)
	if active <= 0 {
		active = float64(length)
	}
	outro := float64(k.OutroFrames)
	if outro > active/2 {
		outro = active / 2
	}

	onPeak := (peak - 1) / speed
	if limit := (active - outro) / 2; onPeak > limit && limit > 0 {
		onPeak = limit
	}
	actualPeak := 1 + speed*onPeak

	outroStart := active - outro
	if outroStart < onPeak {
		outroStart = onPeak
	}

	z, err := interp.Lerp(float64(local),
		[]float64{0, onPeak, outroStart, active},
		[]float64{1, actualPeak, actualPeak, 1},
		interp.Clamped)
	if err != nil {
		return 1
	}
	return z
}

// Anchor names where a zoom is pinned
type Anchor string

const (
	AnchorCenter      Anchor = "center"
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
)

var anchors = []Anchor{AnchorCenter, AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}

// PickAnchor resolves a zoom mode to an anchor. "random" picks from the
// anchor list by hashing index, so the choice is stable across calls.
func PickAnchor(mode string, index int) (Anchor, error) {
	switch m := strings.ToLower(mode); m {
	case "", string(AnchorCenter):
		return AnchorCenter, nil
	case string(AnchorTopLeft), string(AnchorTopRight), string(AnchorBottomLeft), string(AnchorBottomRight):
		return Anchor(m), nil
	case "random":
		return anchors[Hash(index, 99)%uint32(len(anchors))], nil
	default:
		return "", fmt.Errorf("%w: unknown zoom mode %q", errs.ErrConfiguration, mode)
	}
}

// Offset returns the top-left of a w*h viewport zoomed by zoom and pinned at a
func (a Anchor) Offset(w, h, zoom float64) (x, y float64) {
	if zoom <= 0 {
		zoom = 1
	}
	vw, vh := w/zoom, h/zoom
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopRight:
		return w - vw, 0
	case AnchorBottomLeft:
		return 0, h - vh
	case AnchorBottomRight:
		return w - vw, h - vh
	default:
		return w/2 - vw/2, h/2 - vh/2
	}
}

// Hash is FNV-1a over index and seed. Scenes use it wherever they need
// variety that must not change between evaluations.
func Hash(index int, seed uint32) uint32 {
	h := fnv.New32a()
	var buf [12]byte
	v := uint64(index)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	for i := 0; i < 4; i++ {
		buf[8+i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum32()
}

// BlockDelay returns a stable delay in [0, maxDelay] for block index
func BlockDelay(index int, seed uint32, maxDelay int) int {
	if maxDelay <= 0 {
		return 0
	}
	return int(Hash(index, seed) % uint32(maxDelay+1))
}

// Scroll returns the eased scroll offset at a segment-local frame for content
// taller than the viewport. It is 0 when the content fits.
func Scroll(local, length int, content, viewport float64) float64 {
	overflow := content - viewport
	if overflow <= 0 || length <= 0 {
		return 0
	}
	return interp.EaseInOutCubic(float64(local)/float64(length)) * overflow
}
