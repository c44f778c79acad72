package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// ButtonState holds the interactive state of a single button.
type ButtonState struct {
	Disabled bool
	On       bool // toggle buttons only
	focused  bool
}

var _ interact.Focusable = (*ButtonState)(nil)

// SetFocused implements interact.Focusable.
func (s *ButtonState) SetFocused(v bool) { s.focused = v }

// Focused implements interact.Focusable.
func (s *ButtonState) Focused() bool { return s.focused }

// HandleKey toggles a toggle button on activation. Returns true if the key
// was consumed.
func (s *ButtonState) HandleKey(ev *tcell.EventKey) bool {
	if s.Disabled || !interact.IsActivate(ev) {
		return false
	}
	s.On = !s.On
	return true
}

// ButtonOpts configures button rendering.
type ButtonOpts struct {
	Key   string // keyboard hint shown after the label, e.g. "Ctrl+S"
	Theme Theme
}

// Button renders " label " at (x, y) and returns the clickable rect in
// absolute coordinates, suitable for a click registry.
func (s Surface) Button(x, y int, label string, st *ButtonState, opts ButtonOpts) interact.Rect {
	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}

	style := th.Base.Background(tcell.NewRGBColor(50, 50, 60))
	switch {
	case st.Disabled:
		style = th.Disabled
	case st.focused:
		style = th.Focused
	case st.On:
		style = th.Selection
	}

	text := " " + label + " "
	w := DisplayWidth(text)
	s.Text(x, y, text, style)
	if opts.Key != "" {
		s.Text(x+w+1, y, opts.Key, th.Hint)
	}

	r := interact.NewRect(s.X+x, s.Y+y, w, 1)
	if st.Disabled {
		return interact.Rect{}
	}
	return r
}

// BarAlign positions a button bar within its row.
type BarAlign uint8

const (
	BarAlignLeft BarAlign = iota
	BarAlignCenter
	BarAlignRight
)

// BarButton is one entry in a button bar.
type BarButton struct {
	Label   string
	Key     string
	Focused bool
}

// ButtonBarOpts configures button bar rendering.
type ButtonBarOpts struct {
	Align BarAlign
	Gap   int
	Theme Theme
}

// ButtonBar renders a row of buttons at row y and returns one clickable rect
// per button, in absolute coordinates and button order.
func (s Surface) ButtonBar(y int, buttons []BarButton, opts ButtonBarOpts) []interact.Rect {
	if len(buttons) == 0 || y < 0 || y >= s.H {
		return nil
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}
	gap := opts.Gap
	if gap < 1 {
		gap = 2
	}

	totalW := 0
	for i, btn := range buttons {
		totalW += DisplayWidth(btn.Label) + 2
		if btn.Key != "" {
			totalW += DisplayWidth(btn.Key) + 1
		}
		if i < len(buttons)-1 {
			totalW += gap
		}
	}

	x := 0
	switch opts.Align {
	case BarAlignRight:
		x = s.W - totalW
	case BarAlignCenter:
		x = (s.W - totalW) / 2
	}
	if x < 0 {
		x = 0
	}

	for i := 0; i < s.W; i++ {
		s.SetCell(i, y, ' ', th.Base)
	}

	rects := make([]interact.Rect, 0, len(buttons))
	labelStyle := th.Base.Background(tcell.NewRGBColor(50, 50, 60))
	for i, btn := range buttons {
		style := labelStyle
		if btn.Focused {
			style = th.Focused
		}

		label := " " + btn.Label + " "
		w := DisplayWidth(label)
		s.Text(x, y, label, style)
		rects = append(rects, interact.NewRect(s.X+x, s.Y+y, w, 1))
		x += w

		if btn.Key != "" {
			keyStr := " " + btn.Key
			s.Text(x, y, keyStr, th.Hint)
			x += DisplayWidth(keyStr)
		}

		if i < len(buttons)-1 {
			x += gap
		}
	}
	return rects
}
