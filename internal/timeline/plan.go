// Package timeline partitions a composition into ordered segments and
// resolves which segment a frame falls in.
//
// Segments are half-open: frame == start belongs to the new segment. Frames
// past the end of the plan resolve to the final segment held at progress 1,
// so a host may request any non-negative frame without failing.
package timeline

import (
	"fmt"
	"sort"

	"github.com/ivlev/framekit/internal/errs"
)

// Plan is an immutable ordered list of segment lengths in frames with its
// prefix sums precomputed. A *Plan is safe for concurrent use.
type Plan struct {
	lengths []int
	starts  []int // starts[i] is the first frame of segment i
	total   int
}

// Resolution locates a frame inside a plan
type Resolution struct {
	Index    int     // segment index in [0, Len())
	Start    int     // first frame of the segment
	End      int     // one past the last frame of the segment
	Local    int     // frame - Start inside the plan; past the end it is Length, not frame - Start
	Length   int     // End - Start
	Progress float64 // Local / Length in [0,1]
	Clamped  bool    // frame was past the end of the plan
}

// NewPlan builds a plan from positive segment lengths
func NewPlan(lengths ...int) (*Plan, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: segment plan is empty", errs.ErrConfiguration)
	}

	p := &Plan{
		lengths: make([]int, len(lengths)),
		starts:  make([]int, len(lengths)),
	}
	for i, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: segment %d has non-positive length %d", errs.ErrConfiguration, i, l)
		}
		p.lengths[i] = l
		p.starts[i] = p.total
		p.total += l
	}
	return p, nil
}

// MustPlan is NewPlan for static tables known to be valid
func MustPlan(lengths ...int) *Plan {
	p, err := NewPlan(lengths...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of segments
func (p *Plan) Len() int {
	return len(p.lengths)
}

// Total returns the sum of all segment lengths
func (p *Plan) Total() int {
	return p.total
}

// Lengths returns a copy of the segment lengths
func (p *Plan) Lengths() []int {
	out := make([]int, len(p.lengths))
	copy(out, p.lengths)
	return out
}

// Start returns the first frame of segment i
func (p *Plan) Start(i int) int {
	return p.starts[i]
}

// Resolve finds the segment containing frame by binary search over the
// precomputed starts.
func (p *Plan) Resolve(frame int) (Resolution, error) {
	if frame < 0 {
		return Resolution{}, fmt.Errorf("%w: frame %d", errs.ErrOutOfRange, frame)
	}
	if frame >= p.total {
		return p.clampedEnd(), nil
	}

	// first start strictly greater than frame, minus one
	i := sort.SearchInts(p.starts, frame+1) - 1
	return p.at(i, frame), nil
}

// resolveScan is the linear-scan equivalent of Resolve
func (p *Plan) resolveScan(frame int) (Resolution, error) {
	if frame < 0 {
		return Resolution{}, fmt.Errorf("%w: frame %d", errs.ErrOutOfRange, frame)
	}
	for i := range p.lengths {
		if frame < p.starts[i]+p.lengths[i] {
			return p.at(i, frame), nil
		}
	}
	return p.clampedEnd(), nil
}

func (p *Plan) at(i, frame int) Resolution {
	start, length := p.starts[i], p.lengths[i]
	local := frame - start
	return Resolution{
		Index:    i,
		Start:    start,
		End:      start + length,
		Local:    local,
		Length:   length,
		Progress: float64(local) / float64(length),
	}
}

func (p *Plan) clampedEnd() Resolution {
	last := len(p.lengths) - 1
	start, length := p.starts[last], p.lengths[last]
	return Resolution{
		Index:    last,
		Start:    start,
		End:      start + length,
		Local:    length,
		Length:   length,
		Progress: 1,
		Clamped:  true,
	}
}

// DurationMismatch reports a plan whose sum disagrees with the declared
// composition duration. It is a warning: rendering continues.
type DurationMismatch struct {
	PlanFrames     int
	DeclaredFrames int
}

func (m *DurationMismatch) Error() string {
	return fmt.Sprintf("segment plan covers %d frames, declared duration is %d", m.PlanFrames, m.DeclaredFrames)
}

// CheckDuration returns a *DurationMismatch when the plan does not cover
// exactly the declared duration, nil otherwise.
func (p *Plan) CheckDuration(declared int) error {
	if p.total == declared {
		return nil
	}
	return &DurationMismatch{PlanFrames: p.total, DeclaredFrames: declared}
}
