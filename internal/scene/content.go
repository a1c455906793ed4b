package scene

import (
	"fmt"
	"strings"

	"github.com/ivlev/framekit/internal/errs"
)

// ContentKind tags the payload carried by a Content panel
type ContentKind int

const (
	ContentError ContentKind = iota
	ContentCode
	ContentImage
	ContentCompare
)

func (k ContentKind) String() string {
	switch k {
	case ContentError:
		return "error"
	case ContentCode:
		return "code"
	case ContentImage:
		return "image"
	case ContentCompare:
		return "compare"
	default:
		return fmt.Sprintf("content(%d)", int(k))
	}
}

// Content is a decorative panel. Which payload fields are meaningful
// depends on Kind.
type Content struct {
	Kind  ContentKind
	Title string

	Lines []string // error, code

	Asset   string // image
	Caption string // image

	Before string // compare
	After  string // compare
}

// Validate checks the payload required by Kind
func (c Content) Validate() error {
	switch c.Kind {
	case ContentError, ContentCode:
		if len(c.Lines) == 0 {
			return fmt.Errorf("%w: %s panel %q has no lines", errs.ErrConfiguration, c.Kind, c.Title)
		}
	case ContentImage:
		if c.Asset == "" {
			return fmt.Errorf("%w: image panel %q has no asset", errs.ErrConfiguration, c.Title)
		}
	case ContentCompare:
		if c.Before == "" || c.After == "" {
			return fmt.Errorf("%w: compare panel %q needs both sides", errs.ErrConfiguration, c.Title)
		}
	default:
		return fmt.Errorf("%w: unknown content kind %d", errs.ErrConfiguration, int(c.Kind))
	}
	return nil
}

// Text is the full text a typewriter reveals for this panel
func (c Content) Text() string {
	switch c.Kind {
	case ContentError, ContentCode:
		return strings.Join(c.Lines, "\n")
	case ContentImage:
		return c.Caption
	case ContentCompare:
		return c.Before + "\n" + c.After
	}
	return ""
}

// AccentRole is the palette role used for the panel border
func (c Content) AccentRole() string {
	switch c.Kind {
	case ContentError:
		return "error"
	case ContentCompare:
		return "highlight"
	default:
		return "accent"
	}
}
