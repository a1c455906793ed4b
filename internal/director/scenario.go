// Package director turns a frame budget into segment lengths and describes
// per-slide camera paths.
package director

// Storyboard describes the slides of a deck composition
type Storyboard struct {
	Version string  `yaml:"version"`
	Slides  []Slide `yaml:"slides"`
}

// Slide represents a single slide with its camera keyframes
type Slide struct {
	ID        int        `yaml:"id"`
	Title     string     `yaml:"title"`
	Body      string     `yaml:"body,omitempty"`
	Weight    float64    `yaml:"weight,omitempty"` // Relative share of the deck duration
	Frames    int        `yaml:"frames,omitempty"` // Nominal length the keyframes were authored against
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe represents a camera position at a slide-local frame
type Keyframe struct {
	Frame int       `yaml:"frame"` // Frame offset within the slide
	Focus string    `yaml:"focus"` // Description of focus region
	Rect  Rectangle `yaml:"rect"`  // Target rectangle
	Zoom  float64   `yaml:"zoom"`  // Zoom level (1.0 = no zoom)
}

// Rectangle represents a bounding box
type Rectangle struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Center returns the midpoint of the rectangle
func (r Rectangle) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Weights returns each slide's weight, defaulting to 1
func (s *Storyboard) Weights() []float64 {
	w := make([]float64, len(s.Slides))
	for i, sl := range s.Slides {
		w[i] = sl.Weight
		if w[i] <= 0 {
			w[i] = 1
		}
	}
	return w
}

// ScaleKeyframes returns the slide's keyframes retimed from its nominal
// length to length frames. Slides without a nominal length are unchanged.
func (s Slide) ScaleKeyframes(length int) []Keyframe {
	out := make([]Keyframe, len(s.Keyframes))
	copy(out, s.Keyframes)
	if s.Frames <= 0 || length <= 0 {
		return out
	}
	for i := range out {
		out[i].Frame = out[i].Frame * length / s.Frames
	}
	return out
}
