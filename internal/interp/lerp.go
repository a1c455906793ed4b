package interp

import (
	"fmt"

	"github.com/ivlev/framekit/internal/errs"
)

// Extrapolate selects what happens to a value outside the breakpoint range
type Extrapolate int

const (
	// Clamp holds the nearest endpoint output
	Clamp Extrapolate = iota
	// Extend continues the slope of the outermost segment
	Extend
)

func (e Extrapolate) String() string {
	switch e {
	case Clamp:
		return "clamp"
	case Extend:
		return "extend"
	default:
		return fmt.Sprintf("extrapolate(%d)", int(e))
	}
}

// Edges configures extrapolation independently for each side of the range
type Edges struct {
	Left  Extrapolate
	Right Extrapolate
}

// Clamped clamps on both sides. It is also the zero value.
var Clamped = Edges{Left: Clamp, Right: Clamp}

// Extended extends on both sides
var Extended = Edges{Left: Extend, Right: Extend}

// Lerp maps value through the piecewise-linear function defined by the
// input breakpoints and their outputs. Breakpoints must be non-decreasing;
// at a duplicated breakpoint the later output wins.
func Lerp(value float64, input, output []float64, edges Edges) (float64, error) {
	if err := checkRanges(input, output); err != nil {
		return 0, err
	}

	n := len(input)
	if value < input[0] {
		if edges.Left == Extend {
			return extend(value, input, output, firstSpan(input)), nil
		}
		return output[0], nil
	}
	if value > input[n-1] {
		if edges.Right == Extend {
			return extend(value, input, output, lastSpan(input)), nil
		}
		return output[n-1], nil
	}

	i := 0
	for i < n-2 && value >= input[i+1] {
		i++
	}
	return segment(value, input[i], input[i+1], output[i], output[i+1]), nil
}

// Ramp is a clamped 0..1 ramp between from and to. A zero-width ramp is a
// step at from.
func Ramp(value, from, to float64) float64 {
	if value <= from {
		if value == from && to == from {
			return 1
		}
		return 0
	}
	if value >= to {
		return 1
	}
	return (value - from) / (to - from)
}

func checkRanges(input, output []float64) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: input range has %d breakpoints, output range has %d",
			errs.ErrConfiguration, len(input), len(output))
	}
	if len(input) < 2 {
		return fmt.Errorf("%w: need at least 2 breakpoints, got %d", errs.ErrConfiguration, len(input))
	}
	for i := 0; i < len(input)-1; i++ {
		// negated so NaN breakpoints are rejected too
		if !(input[i] <= input[i+1]) {
			return fmt.Errorf("%w: breakpoints must be non-decreasing (input[%d]=%v, input[%d]=%v)",
				errs.ErrConfiguration, i, input[i], i+1, input[i+1])
		}
	}
	return nil
}

// firstSpan returns the index of the first segment with non-zero width, or -1
func firstSpan(input []float64) int {
	for i := 0; i < len(input)-1; i++ {
		if input[i+1] > input[i] {
			return i
		}
	}
	return -1
}

// lastSpan returns the index of the last segment with non-zero width, or -1
func lastSpan(input []float64) int {
	for i := len(input) - 2; i >= 0; i-- {
		if input[i+1] > input[i] {
			return i
		}
	}
	return -1
}

func extend(value float64, input, output []float64, span int) float64 {
	if span < 0 {
		// every breakpoint coincides, there is no slope to continue
		if value < input[0] {
			return output[0]
		}
		return output[len(output)-1]
	}
	return segment(value, input[span], input[span+1], output[span], output[span+1])
}

func segment(value, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y1
	}
	return lerp(y0, y1, (value-x0)/(x1-x0))
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
