package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// newTestScreen returns an initialized simulation screen of the given size.
func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestSurfaceClipsWrites(t *testing.T) {
	scr := newTestScreen(t, 20, 10)
	s := NewSurface(scr, 20, 10)
	sub := s.Sub(5, 5, 4, 2)

	sub.SetCell(0, 0, 'A', tcell.StyleDefault)
	sub.SetCell(3, 1, 'B', tcell.StyleDefault)
	sub.SetCell(4, 0, 'X', tcell.StyleDefault)  // past right edge
	sub.SetCell(0, 2, 'X', tcell.StyleDefault)  // past bottom edge
	sub.SetCell(-1, 0, 'X', tcell.StyleDefault) // before origin

	if got := cellAt(scr, 5, 5); got != 'A' {
		t.Errorf("cell (5,5) = %q, want 'A'", got)
	}
	if got := cellAt(scr, 8, 6); got != 'B' {
		t.Errorf("cell (8,6) = %q, want 'B'", got)
	}
	for _, p := range [][2]int{{9, 5}, {5, 7}, {4, 5}} {
		if got := cellAt(scr, p[0], p[1]); got == 'X' {
			t.Errorf("clipped write leaked to (%d,%d)", p[0], p[1])
		}
	}
}

func TestSubClampsToParent(t *testing.T) {
	scr := newTestScreen(t, 10, 10)
	s := NewSurface(scr, 10, 10)

	tests := []struct {
		name       string
		x, y, w, h int
		wantW      int
		wantH      int
	}{
		{"fits", 2, 2, 4, 4, 4, 4},
		{"overflows right", 8, 0, 5, 5, 2, 5},
		{"overflows bottom", 0, 8, 5, 5, 5, 2},
		{"negative origin", -2, -2, 5, 5, 3, 3},
		{"fully outside", 20, 20, 5, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := s.Sub(tt.x, tt.y, tt.w, tt.h)
			if sub.W != tt.wantW || sub.H != tt.wantH {
				t.Errorf("Sub(%d,%d,%d,%d) = %dx%d, want %dx%d",
					tt.x, tt.y, tt.w, tt.h, sub.W, sub.H, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestBoundsIsAbsolute(t *testing.T) {
	scr := newTestScreen(t, 40, 20)
	s := NewSurface(scr, 40, 20)
	sub := s.Sub(10, 5, 8, 3).Sub(2, 1, 4, 2)

	b := sub.Bounds()
	if b.X != 12 || b.Y != 6 || b.W != 4 || b.H != 2 {
		t.Errorf("Bounds() = %+v, want {12 6 4 2}", b)
	}
	if !b.Contains(12, 6) || !b.Contains(15, 7) {
		t.Error("bounds should contain its own corners")
	}
	if b.Contains(16, 7) {
		t.Error("bounds right edge is exclusive")
	}
}

func TestTextTruncatesAtEdge(t *testing.T) {
	scr := newTestScreen(t, 10, 2)
	s := NewSurface(scr, 10, 2)

	n := s.Text(7, 0, "hello", tcell.StyleDefault)
	if n != 3 {
		t.Errorf("Text advanced %d cells, want 3", n)
	}
	if got := cellAt(scr, 9, 0); got != 'l' {
		t.Errorf("last visible cell = %q, want 'l'", got)
	}
}

func TestTextWideRunes(t *testing.T) {
	scr := newTestScreen(t, 10, 1)
	s := NewSurface(scr, 10, 1)

	n := s.Text(0, 0, "日本", tcell.StyleDefault)
	if n != 4 {
		t.Errorf("Text advanced %d cells, want 4", n)
	}
	if got := cellAt(scr, 0, 0); got != '日' {
		t.Errorf("cell 0 = %q, want '日'", got)
	}
	if got := cellAt(scr, 2, 0); got != '本' {
		t.Errorf("cell 2 = %q, want '本'", got)
	}
}

func TestBoxDrawsCorners(t *testing.T) {
	scr := newTestScreen(t, 6, 4)
	s := NewSurface(scr, 6, 4)
	s.Box(LineSingle, tcell.StyleDefault)

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'}, {5, 0, '┐'}, {0, 3, '└'}, {5, 3, '┘'},
	}
	for _, c := range corners {
		if got := cellAt(scr, c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestCardReturnsInterior(t *testing.T) {
	scr := newTestScreen(t, 12, 6)
	s := NewSurface(scr, 12, 6)

	inner := s.Card("T", LineSingle, tcell.StyleDefault)
	if inner.W != 10 || inner.H != 4 {
		t.Errorf("interior = %dx%d, want 10x4", inner.W, inner.H)
	}
	if inner.X != 1 || inner.Y != 1 {
		t.Errorf("interior origin = (%d,%d), want (1,1)", inner.X, inner.Y)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello", 10, []string{"hello"}},
		{"word boundary", "hello world", 8, []string{"hello", "world"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"wide runes measured in cells", "日本語 text", 6, []string{"日本語", "text"}},
		{"wide word hard-breaks by cells", "全角文字列", 4, []string{"全角", "文字", "列"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.w); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}
