package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Progress draws a horizontal bar at (x, y) filled to pct (0.0-1.0).
func (s Surface) Progress(x, y, w int, pct float64, style tcell.Style) {
	if y < 0 || y >= s.H || w <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		var ch rune
		switch {
		case i < filled:
			ch = progressFull
		case i == filled && remainder >= 0.5:
			ch = progressHalf
		default:
			ch = progressEmpty
		}
		s.SetCell(x+i, y, ch, style)
	}
}

// Gauge draws a bracketed bar with a trailing percentage: [████░░░░] 75%
func (s Surface) Gauge(x, y, w int, value, max int, style tcell.Style) {
	if w < 7 || y < 0 || y >= s.H {
		return
	}

	var pct float64
	if max > 0 {
		pct = float64(value) / float64(max)
	}
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}

	barW := w - 7 // brackets + " 100%"
	s.SetCell(x, y, '[', style)
	s.Progress(x+1, y, barW, pct, style)
	s.SetCell(x+1+barW, y, ']', style)
	s.Text(x+2+barW, y, fmt.Sprintf("%4d%%", int(pct*100)), style)
}
