package director

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/framekit/internal/errs"
)

// WriteStoryboard writes a storyboard to a YAML file
func WriteStoryboard(sb *Storyboard, path string) error {
	data, err := yaml.Marshal(sb)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadStoryboard reads a storyboard from a YAML file
func ReadStoryboard(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseStoryboard(data)
}

// ParseStoryboard decodes and validates storyboard YAML. Keyframes are
// sorted by frame.
func ParseStoryboard(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("%w: storyboard: %v", errs.ErrConfiguration, err)
	}
	if len(sb.Slides) == 0 {
		return nil, fmt.Errorf("%w: storyboard has no slides", errs.ErrConfiguration)
	}

	for i := range sb.Slides {
		kfs := sb.Slides[i].Keyframes
		for j, kf := range kfs {
			if kf.Frame < 0 {
				return nil, fmt.Errorf("%w: slide %d keyframe %d has negative frame %d",
					errs.ErrConfiguration, sb.Slides[i].ID, j, kf.Frame)
			}
			if kf.Zoom <= 0 {
				kfs[j].Zoom = 1.0
			}
		}
		sort.SliceStable(kfs, func(a, b int) bool {
			return kfs[a].Frame < kfs[b].Frame
		})
	}
	return &sb, nil
}
