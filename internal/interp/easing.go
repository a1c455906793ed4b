package interp

// EaseInOutCubic applies a smooth in-out curve to t, clamped to [0,1]
func EaseInOutCubic(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// Smoothstep returns 3t^2 - 2t^3 for t clamped to [0,1]
func Smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Mix blends a and b by t without clamping
func Mix(a, b, t float64) float64 {
	return lerp(a, b, t)
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
