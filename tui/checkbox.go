package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// CheckboxState holds the interactive state of a checkbox.
type CheckboxState struct {
	Checked  bool
	Disabled bool
	focused  bool
}

var _ interact.Focusable = (*CheckboxState)(nil)

// SetFocused implements interact.Focusable.
func (s *CheckboxState) SetFocused(v bool) { s.focused = v }

// Focused implements interact.Focusable.
func (s *CheckboxState) Focused() bool { return s.focused }

// Toggle flips the checked state. No-op when disabled.
func (s *CheckboxState) Toggle() {
	if !s.Disabled {
		s.Checked = !s.Checked
	}
}

// HandleKey toggles on activation. Returns true if the key was consumed.
func (s *CheckboxState) HandleKey(ev *tcell.EventKey) bool {
	if s.Disabled || !interact.IsActivate(ev) {
		return false
	}
	s.Checked = !s.Checked
	return true
}

// CheckboxOpts configures checkbox rendering.
type CheckboxOpts struct {
	ASCII bool // "[x]" instead of "☑"
	Theme Theme
}

// Checkbox renders the indicator and label at (x, y) and returns the
// clickable rect covering both, in absolute coordinates.
func (s Surface) Checkbox(x, y int, label string, st *CheckboxState, opts CheckboxOpts) interact.Rect {
	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}

	style := th.Base
	switch {
	case st.Disabled:
		style = th.Disabled
	case st.focused:
		style = th.Focused
	}

	var mark string
	if opts.ASCII {
		if st.Checked {
			mark = "[x]"
		} else {
			mark = "[ ]"
		}
	} else {
		if st.Checked {
			mark = "☑"
		} else {
			mark = "☐"
		}
	}

	s.Text(x, y, mark, style)
	markW := DisplayWidth(mark)
	if label != "" {
		s.Text(x+markW+1, y, label, style)
	}

	w := markW
	if label != "" {
		w += 1 + DisplayWidth(label)
	}
	if st.Disabled {
		return interact.Rect{}
	}
	return interact.NewRect(s.X+x, s.Y+y, w, 1)
}
