package director

import (
	"fmt"
	"math"
	"sort"

	"github.com/ivlev/framekit/internal/errs"
)

// Director splits a composition's frame budget into ordered segments
type Director struct {
	MinDwell int // Minimum frames per segment
	MaxDwell int // Maximum frames per segment, 0 for no limit. Applies to Partition and Weighted.
}

// NewDirector creates a new Director with default settings
func NewDirector() *Director {
	return &Director{
		MinDwell: 1,
		MaxDwell: 0,
	}
}

// Partition splits total frames into count segments whose lengths differ by
// at most one frame and sum exactly to total. The extra frames go to the
// earliest segments.
func (d *Director) Partition(total, count int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: cannot partition into %d segments", errs.ErrConfiguration, count)
	}

	base, extra := total/count, total%count
	if err := d.checkDwell(base, count, extra); err != nil {
		return nil, err
	}

	lengths := make([]int, count)
	for i := range lengths {
		lengths[i] = base
		if i < extra {
			lengths[i]++
		}
	}
	return lengths, nil
}

// Weighted splits total frames proportionally to weights using the largest
// remainder method, so the lengths always sum to total.
func (d *Director) Weighted(total int, weights []float64) ([]int, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no weights to partition", errs.ErrConfiguration)
	}
	sum := 0.0
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("%w: weight %d must be positive, got %v", errs.ErrConfiguration, i, w)
		}
		sum += w
	}
	if total < len(weights)*d.minDwell() {
		return nil, fmt.Errorf("%w: %d frames cannot hold %d segments of at least %d frames",
			errs.ErrConfiguration, total, len(weights), d.minDwell())
	}

	type share struct {
		index int
		rem   float64
	}
	lengths := make([]int, len(weights))
	shares := make([]share, len(weights))
	assigned := 0
	for i, w := range weights {
		exact := float64(total) * w / sum
		lengths[i] = int(math.Floor(exact))
		shares[i] = share{index: i, rem: exact - float64(lengths[i])}
		assigned += lengths[i]
	}

	// stable so ties go to the earlier segment
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].rem > shares[j].rem
	})
	for k := 0; assigned < total; k++ {
		lengths[shares[k%len(shares)].index]++
		assigned++
	}

	// lift short segments to the minimum by taking from the longest
	for i := range lengths {
		for lengths[i] < d.minDwell() {
			longest := 0
			for j := range lengths {
				if lengths[j] > lengths[longest] {
					longest = j
				}
			}
			lengths[longest]--
			lengths[i]++
		}
	}
	if d.MaxDwell > 0 {
		for i, l := range lengths {
			if l > d.MaxDwell {
				return nil, fmt.Errorf("%w: segment %d needs %d frames, above the %d frame maximum",
					errs.ErrConfiguration, i, l, d.MaxDwell)
			}
		}
	}
	return lengths, nil
}

func (d *Director) minDwell() int {
	if d.MinDwell < 1 {
		return 1
	}
	return d.MinDwell
}

func (d *Director) checkDwell(base, count, extra int) error {
	if base < d.minDwell() {
		return fmt.Errorf("%w: %d segments of at least %d frames do not fit in %d frames",
			errs.ErrConfiguration, count, d.minDwell(), base*count+extra)
	}
	if d.MaxDwell > 0 {
		longest := base
		if extra > 0 {
			longest++
		}
		if longest > d.MaxDwell {
			return fmt.Errorf("%w: segments of %d frames exceed the %d frame maximum",
				errs.ErrConfiguration, longest, d.MaxDwell)
		}
	}
	return nil
}
