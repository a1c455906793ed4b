package scene

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/ivlev/framekit/internal/errs"
)

// Palette maps scene color roles to resolved "#rrggbb" values
type Palette map[string]string

// NewPalette resolves color tokens. A token is either "#rrggbb" or an SVG
// color name.
func NewPalette(tokens map[string]string) (Palette, error) {
	p := make(Palette, len(tokens))
	for role, token := range tokens {
		hex, err := ResolveColor(token)
		if err != nil {
			return nil, fmt.Errorf("palette role %q: %w", role, err)
		}
		p[role] = hex
	}
	return p, nil
}

// ResolveColor turns a color token into "#rrggbb"
func ResolveColor(token string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if strings.HasPrefix(t, "#") {
		var r, g, b uint8
		if len(t) != 7 {
			return "", fmt.Errorf("%w: malformed color %q", errs.ErrConfiguration, token)
		}
		if _, err := fmt.Sscanf(t, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return "", fmt.Errorf("%w: malformed color %q", errs.ErrConfiguration, token)
		}
		return t, nil
	}
	c, ok := colornames.Map[t]
	if !ok {
		return "", fmt.Errorf("%w: unknown color %q", errs.ErrConfiguration, token)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}
