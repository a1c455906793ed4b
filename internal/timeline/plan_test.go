package timeline

import (
	"errors"
	"testing"

	"github.com/ivlev/framekit/internal/errs"
)

func TestResolveBoundaries(t *testing.T) {
	plan := MustPlan(10, 20, 5)

	tests := []struct {
		frame    int
		index    int
		local    int
		progress float64
		clamped  bool
	}{
		{0, 0, 0, 0, false},
		{9, 0, 9, 0.9, false},
		{10, 1, 0, 0, false},
		{29, 1, 19, 0.95, false},
		{30, 2, 0, 0, false},
		{34, 2, 4, 0.8, false},
		{35, 2, 5, 1, true},
		{100, 2, 5, 1, true},
	}

	for _, tt := range tests {
		r, err := plan.Resolve(tt.frame)
		if err != nil {
			t.Fatalf("Resolve(%d) failed: %v", tt.frame, err)
		}
		if r.Index != tt.index || r.Local != tt.local || r.Clamped != tt.clamped {
			t.Errorf("Resolve(%d) = %+v, want index %d local %d clamped %v", tt.frame, r, tt.index, tt.local, tt.clamped)
		}
		if abs(r.Progress-tt.progress) > 1e-9 {
			t.Errorf("Resolve(%d).Progress = %v, want %v", tt.frame, r.Progress, tt.progress)
		}
	}
}

func TestResolveScanAgrees(t *testing.T) {
	plans := [][]int{{1}, {10, 20, 5}, {1, 1, 1, 1}, {7, 3, 90, 12, 1, 44}}

	for _, lengths := range plans {
		plan := MustPlan(lengths...)
		for f := 0; f < plan.Total()+10; f++ {
			a, err := plan.Resolve(f)
			if err != nil {
				t.Fatal(err)
			}
			b, err := plan.resolveScan(f)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				t.Fatalf("plan %v frame %d: binary %+v != scan %+v", lengths, f, a, b)
			}
		}
	}
}

func TestResolveCoversEveryFrameOnce(t *testing.T) {
	plan := MustPlan(4, 6, 3)
	counts := make([]int, plan.Len())
	prev := -1
	prevProgress := 0.0
	for f := 0; f < plan.Total(); f++ {
		r, _ := plan.Resolve(f)
		counts[r.Index]++
		if r.Index == prev && r.Progress < prevProgress {
			t.Errorf("progress decreased inside segment %d at frame %d", r.Index, f)
		}
		if r.Index != prev && r.Progress != 0 {
			t.Errorf("progress did not reset at start of segment %d", r.Index)
		}
		prev, prevProgress = r.Index, r.Progress
	}
	for i, l := range plan.Lengths() {
		if counts[i] != l {
			t.Errorf("segment %d resolved %d frames, want %d", i, counts[i], l)
		}
	}
}

func TestResolveNegativeFrame(t *testing.T) {
	plan := MustPlan(10)
	if _, err := plan.Resolve(-1); !errors.Is(err, errs.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := plan.resolveScan(-1); !errors.Is(err, errs.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange from scan, got %v", err)
	}
}

func TestNewPlanErrors(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
	}{
		{"empty", nil},
		{"zero length", []int{10, 0}},
		{"negative length", []int{-3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlan(tt.lengths...); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestCheckDuration(t *testing.T) {
	plan := MustPlan(10, 20)
	if err := plan.CheckDuration(30); err != nil {
		t.Errorf("unexpected mismatch: %v", err)
	}

	err := plan.CheckDuration(45)
	var mismatch *DurationMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DurationMismatch, got %v", err)
	}
	if mismatch.PlanFrames != 30 || mismatch.DeclaredFrames != 45 {
		t.Errorf("unexpected mismatch %+v", mismatch)
	}
}

func TestLengthsIsCopy(t *testing.T) {
	plan := MustPlan(10, 20)
	l := plan.Lengths()
	l[0] = 99
	if plan.Lengths()[0] != 10 {
		t.Error("Lengths must not expose internal state")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
