package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeOverridesBase(t *testing.T) {
	path := writeTheme(t, "fg: \"#ff0000\"\nbg: \"#000000\"\n")

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	fg, bg, _ := th.Base.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("base fg = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("base bg = %v, want black", bg)
	}
}

func TestLoadThemePartial(t *testing.T) {
	path := writeTheme(t, "accent: \"#00ff00\"\n")

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	fg, _, _ := th.Accent.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("accent fg = %v, want green", fg)
	}

	// Untouched fields keep their defaults.
	def := DefaultTheme()
	if th.Border != def.Border {
		t.Error("border should keep its default")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad hex", "fg: \"not-a-color\"\n"},
		{"malformed yaml", "fg: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, tt.content)
			if _, err := LoadTheme(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestBlend(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	if got := Blend(black, white, 0); got != black {
		t.Errorf("Blend(t=0) = %v, want black", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("Blend(t=1) = %v, want white", got)
	}

	mid := Blend(black, white, 0.5)
	r, g, b := mid.RGB()
	if r < 100 || r > 155 || g != r || b != r {
		t.Errorf("Blend(t=0.5) = %d,%d,%d, want mid gray", r, g, b)
	}
}
