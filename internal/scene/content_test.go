package scene

import (
	"errors"
	"testing"

	"github.com/ivlev/framekit/internal/errs"
)

func TestContentValidate(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		wantErr bool
	}{
		{"code", Content{Kind: ContentCode, Lines: []string{"x := 1"}}, false},
		{"error without lines", Content{Kind: ContentError}, true},
		{"image", Content{Kind: ContentImage, Asset: "a.png"}, false},
		{"image without asset", Content{Kind: ContentImage}, true},
		{"compare", Content{Kind: ContentCompare, Before: "a", After: "b"}, false},
		{"compare one side", Content{Kind: ContentCompare, Before: "a"}, true},
		{"unknown kind", Content{Kind: ContentKind(42)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if tt.wantErr && !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestContentText(t *testing.T) {
	c := Content{Kind: ContentCode, Lines: []string{"a", "b"}}
	if c.Text() != "a\nb" {
		t.Errorf("code text = %q", c.Text())
	}
	c = Content{Kind: ContentCompare, Before: "x", After: "y"}
	if c.Text() != "x\ny" {
		t.Errorf("compare text = %q", c.Text())
	}
	if ContentImage.String() != "image" {
		t.Errorf("String = %q", ContentImage.String())
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		token   string
		want    string
		wantErr bool
	}{
		{"gold", "#ffd700", false},
		{"MidnightBlue", "#191970", false},
		{"#1E1E2E", "#1e1e2e", false},
		{"#12", "", true},
		{"#zzzzzz", "", true},
		{"not-a-color", "", true},
	}
	for _, tt := range tests {
		got, err := ResolveColor(tt.token)
		if tt.wantErr {
			if !errors.Is(err, errs.ErrConfiguration) {
				t.Errorf("ResolveColor(%q): expected ErrConfiguration, got %v", tt.token, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ResolveColor(%q) = %q, %v; want %q", tt.token, got, err, tt.want)
		}
	}

	if _, err := NewPalette(map[string]string{"bg": "nope"}); !errors.Is(err, errs.ErrConfiguration) {
		t.Errorf("NewPalette should reject unknown tokens, got %v", err)
	}
}
