package tui

import (
	"github.com/lixenwraith/tuikit/interact"
)

// TextFieldOpts configures text field rendering.
type TextFieldOpts struct {
	Placeholder string   // shown when empty and unfocused
	Prefix      string   // left prompt, e.g. "> "
	Mask        rune     // password mask, 0 = none
	Border      LineType // LineNone (the zero value) = borderless single row
	Theme       Theme
}

// TextField renders the field into the surface and returns the clickable
// rect of the content row in absolute coordinates. A focused field shows a
// block cursor.
func (s Surface) TextField(st *TextFieldState, opts TextFieldOpts) interact.Rect {
	if s.W < 3 || s.H < 1 {
		return interact.Rect{}
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}

	content := s
	if opts.Border != LineNone {
		if s.H < 3 {
			return interact.Rect{}
		}
		border := th.Border
		if st.focused {
			border = th.Accent
		}
		s.Box(opts.Border, border)
		content = s.Inset(1)
	}

	for x := 0; x < content.W; x++ {
		content.SetCell(x, 0, ' ', th.Base)
	}

	x := 0
	if opts.Prefix != "" {
		x += content.Text(0, 0, opts.Prefix, th.Hint)
	}

	rect := interact.NewRect(content.X, content.Y, content.W, 1)

	viewportW := content.W - x
	if viewportW < 1 {
		return rect
	}
	st.AdjustScroll(viewportW)

	if len(st.Text) == 0 && opts.Placeholder != "" && !st.focused {
		content.Text(x, 0, Truncate(opts.Placeholder, viewportW), th.Hint)
		return rect
	}

	if st.Scroll > 0 && x > 0 {
		content.SetCell(x-1, 0, '◀', th.Hint)
	}

	cursor := th.Base.Reverse(true)
	for i := 0; i < viewportW; i++ {
		idx := st.Scroll + i
		ch := ' '
		if idx < len(st.Text) {
			ch = st.Text[idx]
			if opts.Mask != 0 {
				ch = opts.Mask
			}
		}
		style := th.Base
		if st.focused && idx == st.Cursor {
			style = cursor
		}
		content.SetCell(x+i, 0, ch, style)
	}

	if st.Scroll+viewportW < len(st.Text) {
		content.SetCell(content.W-1, 0, '▶', th.Hint)
	}

	return rect
}
