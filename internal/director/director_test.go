package director

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ivlev/framekit/internal/errs"
)

func TestPartition(t *testing.T) {
	d := NewDirector()

	tests := []struct {
		total, count int
		want         []int
	}{
		{90, 3, []int{30, 30, 30}},
		{100, 3, []int{34, 33, 33}},
		{5, 5, []int{1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := d.Partition(tt.total, tt.count)
		if err != nil {
			t.Fatalf("Partition(%d, %d) failed: %v", tt.total, tt.count, err)
		}
		if !equal(got, tt.want) {
			t.Errorf("Partition(%d, %d) = %v, want %v", tt.total, tt.count, got, tt.want)
		}
	}
}

func TestPartitionErrors(t *testing.T) {
	d := &Director{MinDwell: 10, MaxDwell: 40}

	tests := []struct {
		name         string
		total, count int
	}{
		{"no segments", 100, 0},
		{"below min dwell", 50, 6},
		{"above max dwell", 200, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Partition(tt.total, tt.count); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestWeighted(t *testing.T) {
	d := NewDirector()

	got, err := d.Weighted(100, []float64{1, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !equal(got, []int{25, 25, 50}) {
		t.Errorf("Weighted = %v", got)
	}

	got, err = d.Weighted(10, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if sum(got) != 10 {
		t.Errorf("Weighted lengths %v do not sum to 10", got)
	}
	if !equal(got, []int{4, 3, 3}) {
		t.Errorf("remainder should go to the earliest segment, got %v", got)
	}

	d.MinDwell = 5
	got, err = d.Weighted(30, []float64{1, 100})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 5 || sum(got) != 30 {
		t.Errorf("min dwell not honored: %v", got)
	}

	if _, err := d.Weighted(30, []float64{1, -1}); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for negative weight, got %v", err)
	}
	if _, err := d.Weighted(8, []float64{1, 1}); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for short total, got %v", err)
	}
}

func TestWeightedMaxDwell(t *testing.T) {
	d := &Director{MinDwell: 1, MaxDwell: 40}
	if _, err := d.Weighted(100, []float64{1, 1, 2}); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("50 frame segment should exceed the maximum, got %v", err)
	}

	got, err := d.Weighted(100, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for i, l := range got {
		if l > d.MaxDwell {
			t.Errorf("segment %d has %d frames", i, l)
		}
	}
}

func TestStoryboardWriteRead(t *testing.T) {
	sb := &Storyboard{
		Version: "1.0",
		Slides: []Slide{
			{
				ID:    1,
				Title: "Intro",
				Keyframes: []Keyframe{
					{Frame: 60, Focus: "block1", Rect: Rectangle{X: 100, Y: 100, W: 200, H: 150}, Zoom: 1.5},
					{Frame: 0, Focus: "full", Rect: Rectangle{X: 0, Y: 0, W: 1280, H: 720}, Zoom: 1.0},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "storyboard.yaml")
	if err := WriteStoryboard(sb, path); err != nil {
		t.Fatalf("WriteStoryboard failed: %v", err)
	}

	read, err := ReadStoryboard(path)
	if err != nil {
		t.Fatalf("ReadStoryboard failed: %v", err)
	}

	if read.Version != sb.Version {
		t.Errorf("Version mismatch: expected %s, got %s", sb.Version, read.Version)
	}
	if len(read.Slides) != 1 || len(read.Slides[0].Keyframes) != 2 {
		t.Fatalf("unexpected storyboard shape: %+v", read)
	}
	if read.Slides[0].Keyframes[0].Frame != 0 {
		t.Error("keyframes should be sorted by frame after reading")
	}
}

func TestParseStoryboardErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "slides: [\n"},
		{"no slides", "version: \"1.0\"\n"},
		{"negative frame", "slides:\n  - id: 1\n    keyframes:\n      - frame: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStoryboard([]byte(tt.data)); !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestWeightsDefault(t *testing.T) {
	sb := &Storyboard{Slides: []Slide{{Weight: 2}, {}}}
	w := sb.Weights()
	if w[0] != 2 || w[1] != 1 {
		t.Errorf("Weights = %v", w)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sum(a []int) int {
	s := 0
	for _, v := range a {
		s += v
	}
	return s
}
