package tui

import "github.com/gdamore/tcell/v2"

// MarqueeState scrolls a string through a fixed-width window one grapheme
// cluster per tick, with a gap of spaces between repetitions.
type MarqueeState struct {
	clusters []string
	offset   int
	Gap      int // spaces between repetitions, default 3
}

// NewMarqueeState creates a marquee over the given text.
func NewMarqueeState(text string) *MarqueeState {
	return &MarqueeState{clusters: Graphemes(text), Gap: 3}
}

// SetText replaces the text and restarts the scroll.
func (m *MarqueeState) SetText(text string) {
	m.clusters = Graphemes(text)
	m.offset = 0
}

// Period returns the number of ticks before the scroll repeats.
func (m *MarqueeState) Period() int {
	return len(m.clusters) + m.gap()
}

func (m *MarqueeState) gap() int {
	if m.Gap <= 0 {
		return 3
	}
	return m.Gap
}

// Tick advances the scroll position by one cluster.
func (m *MarqueeState) Tick() {
	if p := m.Period(); p > 0 {
		m.offset = (m.offset + 1) % p
	}
}

// window returns the clusters visible in a window of n cells, starting at
// the current offset, treating the text plus gap as circular.
func (m *MarqueeState) window(n int) []string {
	p := m.Period()
	if p == 0 || n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := (m.offset + i) % p
		if idx < len(m.clusters) {
			out = append(out, m.clusters[idx])
		} else {
			out = append(out, " ")
		}
	}
	return out
}

// Marquee draws the scrolling window at (x, y) across w cells. Text
// shorter than the window renders statically.
func (s Surface) Marquee(x, y, w int, m *MarqueeState, style tcell.Style) {
	if w <= 0 {
		return
	}
	if len(m.clusters) <= w {
		cx := x
		for _, cl := range m.clusters {
			cx += s.Text(cx, y, cl, style)
		}
		return
	}
	cx := x
	for _, cl := range m.window(w) {
		if cx >= x+w {
			break
		}
		cx += s.Text(cx, y, cl, style)
	}
}
