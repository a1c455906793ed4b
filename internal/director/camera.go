package director

import (
	"sort"

	"github.com/ivlev/framekit/internal/interp"
)

// CameraState represents the camera position and zoom at a specific frame
type CameraState struct {
	X    float64 `yaml:"x"`    // Pan X position (center point in pixels)
	Y    float64 `yaml:"y"`    // Pan Y position (center point in pixels)
	Zoom float64 `yaml:"zoom"` // Zoom level (1.0 = no zoom)
}

// Camera calculates the camera state at a slide-local frame by easing
// between the surrounding keyframes. Keyframes must be sorted by frame.
func Camera(keyframes []Keyframe, frame int) CameraState {
	if len(keyframes) == 0 {
		return CameraState{X: 0, Y: 0, Zoom: 1.0}
	}

	// If before first keyframe, use first keyframe
	if frame <= keyframes[0].Frame {
		return stateOf(keyframes[0])
	}

	// If after last keyframe, use last keyframe
	last := keyframes[len(keyframes)-1]
	if frame >= last.Frame {
		return stateOf(last)
	}

	// first keyframe strictly after frame
	next := sort.Search(len(keyframes), func(i int) bool {
		return keyframes[i].Frame > frame
	})
	prevKf, nextKf := keyframes[next-1], keyframes[next]

	t := interp.Ramp(float64(frame), float64(prevKf.Frame), float64(nextKf.Frame))
	t = interp.EaseInOutCubic(t)

	a, b := stateOf(prevKf), stateOf(nextKf)
	return CameraState{
		X:    interp.Mix(a.X, b.X, t),
		Y:    interp.Mix(a.Y, b.Y, t),
		Zoom: interp.Mix(a.Zoom, b.Zoom, t),
	}
}

func stateOf(kf Keyframe) CameraState {
	x, y := kf.Rect.Center()
	return CameraState{X: x, Y: y, Zoom: kf.Zoom}
}
