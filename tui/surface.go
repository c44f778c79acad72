package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/interact"
)

// CellWriter is the drawing target for a Surface. tcell.Screen implements
// it, as does tcell's SimulationScreen in tests.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface is a clipped rectangular window onto a cell writer. All drawing
// coordinates are relative to the surface origin; writes outside the bounds
// are dropped. Surface is a small value type, cheap to pass and to nest.
type Surface struct {
	w    CellWriter
	X, Y int // absolute origin
	W, H int // dimensions
}

// NewSurface creates a surface covering the whole writer area.
func NewSurface(w CellWriter, width, height int) Surface {
	return Surface{w: w, W: width, H: height}
}

// Sub returns a nested surface with coordinates relative to the parent,
// clipped to the parent bounds.
func (s Surface) Sub(x, y, w, h int) Surface {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > s.W {
		w = s.W - x
	}
	if y+h > s.H {
		h = s.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Surface{w: s.w, X: s.X + x, Y: s.Y + y, W: w, H: h}
}

// Inset returns the surface shrunk by n cells on all sides.
func (s Surface) Inset(n int) Surface {
	return s.Sub(n, n, s.W-2*n, s.H-2*n)
}

// Bounds returns the absolute rectangle this surface covers, in the
// coordinate space mouse events arrive in. This is what interactive
// widgets hand to the click registry.
func (s Surface) Bounds() interact.Rect {
	return interact.NewRect(s.X, s.Y, s.W, s.H)
}

// Width returns the surface width.
func (s Surface) Width() int { return s.W }

// Height returns the surface height.
func (s Surface) Height() int { return s.H }

// SetCell writes a single cell with bounds checking.
func (s Surface) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H || s.w == nil {
		return
	}
	s.w.SetContent(s.X+x, s.Y+y, ch, nil, style)
}

// Fill floods the surface with ch.
func (s Surface) Fill(ch rune, style tcell.Style) {
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			s.SetCell(x, y, ch, style)
		}
	}
}

// Clear fills the surface with spaces.
func (s Surface) Clear(style tcell.Style) {
	s.Fill(' ', style)
}

// Text renders a string at (x, y), truncating at the surface edge.
// Wide characters occupy two cells; one that would straddle the edge is
// dropped. Returns the number of cells advanced.
func (s Surface) Text(x, y int, str string, style tcell.Style) int {
	if y < 0 || y >= s.H {
		return 0
	}
	col := 0
	for _, ch := range str {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+col+cw > s.W {
			break
		}
		if x+col >= 0 {
			s.SetCell(x+col, y, ch, style)
			// Keep the shadow cell of a wide rune from holding stale content.
			if cw == 2 {
				s.SetCell(x+col+1, y, ' ', style)
			}
		}
		col += cw
	}
	return col
}

// TextCenter renders text centered on row y.
func (s Surface) TextCenter(y int, str string, style tcell.Style) {
	s.Text((s.W-DisplayWidth(str))/2, y, str, style)
}

// TextRight renders text right-aligned on row y.
func (s Surface) TextRight(y int, str string, style tcell.Style) {
	s.Text(s.W-DisplayWidth(str), y, str, style)
}

// HLine draws a horizontal run of ch starting at (x, y).
func (s Surface) HLine(x, y, w int, ch rune, style tcell.Style) {
	for i := 0; i < w; i++ {
		s.SetCell(x+i, y, ch, style)
	}
}

// VLine draws a vertical run of ch starting at (x, y).
func (s Surface) VLine(x, y, h int, ch rune, style tcell.Style) {
	for i := 0; i < h; i++ {
		s.SetCell(x, y+i, ch, style)
	}
}

// LineType specifies box drawing character style.
type LineType uint8

const (
	LineNone    LineType = iota // no border; the zero value of option structs
	LineSingle                  // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// Box draws a border around the surface edge.
func (s Surface) Box(line LineType, style tcell.Style) {
	if s.W < 2 || s.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	s.SetCell(0, 0, chars[boxTL], style)
	s.SetCell(s.W-1, 0, chars[boxTR], style)
	s.SetCell(0, s.H-1, chars[boxBL], style)
	s.SetCell(s.W-1, s.H-1, chars[boxBR], style)
	for x := 1; x < s.W-1; x++ {
		s.SetCell(x, 0, chars[boxH], style)
		s.SetCell(x, s.H-1, chars[boxH], style)
	}
	for y := 1; y < s.H-1; y++ {
		s.SetCell(0, y, chars[boxV], style)
		s.SetCell(s.W-1, y, chars[boxV], style)
	}
}

// Card draws a titled border and returns the inner content surface.
func (s Surface) Card(title string, line LineType, style tcell.Style) Surface {
	s.Box(line, style)
	if title != "" && s.W > 4 {
		display := Truncate(title, s.W-4)
		x := (s.W - DisplayWidth(display) - 2) / 2
		s.Text(x, 0, " "+display+" ", style.Bold(true))
	}
	return s.Inset(1)
}
