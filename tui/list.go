package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sahilm/fuzzy"

	"github.com/lixenwraith/tuikit/interact"
)

// ListState holds selection, scroll, and filter state for a picker list.
// Items is the full set; Visible reflects the current filter.
type ListState struct {
	Items    []string
	visible  []int // indexes into Items, filter applied
	Selected int   // index into visible rows, -1 = none
	Scroll   int
	filter   string
	focused  bool
}

// NewListState creates state with all items visible and the first selected.
func NewListState(items []string) *ListState {
	st := &ListState{Items: items, Selected: -1}
	st.rebuild()
	if len(st.visible) > 0 {
		st.Selected = 0
	}
	return st
}

var _ interact.Focusable = (*ListState)(nil)

// SetFocused implements interact.Focusable.
func (l *ListState) SetFocused(v bool) { l.focused = v }

// Focused implements interact.Focusable.
func (l *ListState) Focused() bool { return l.focused }

// SetFilter applies a fuzzy filter over the items. An empty pattern shows
// all items. Selection resets to the first match.
func (l *ListState) SetFilter(pattern string) {
	l.filter = pattern
	l.rebuild()
	l.Scroll = 0
	if len(l.visible) > 0 {
		l.Selected = 0
	} else {
		l.Selected = -1
	}
}

func (l *ListState) rebuild() {
	if l.filter == "" {
		l.visible = make([]int, len(l.Items))
		for i := range l.Items {
			l.visible[i] = i
		}
		return
	}
	matches := fuzzy.Find(l.filter, l.Items)
	l.visible = make([]int, len(matches))
	for i, m := range matches {
		l.visible[i] = m.Index
	}
}

// VisibleLen returns the number of rows after filtering.
func (l *ListState) VisibleLen() int { return len(l.visible) }

// Value returns the selected item, or "" and false when nothing is
// selected.
func (l *ListState) Value() (string, bool) {
	if l.Selected < 0 || l.Selected >= len(l.visible) {
		return "", false
	}
	return l.Items[l.visible[l.Selected]], true
}

// Select moves the selection to the given visible row, clamped.
func (l *ListState) Select(row int) {
	if len(l.visible) == 0 {
		l.Selected = -1
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= len(l.visible) {
		row = len(l.visible) - 1
	}
	l.Selected = row
}

// MoveDown advances the selection, stopping at the last row.
func (l *ListState) MoveDown() { l.Select(l.Selected + 1) }

// MoveUp retreats the selection, stopping at the first row.
func (l *ListState) MoveUp() { l.Select(l.Selected - 1) }

// adjustScroll keeps the selection inside a viewport of the given height.
func (l *ListState) adjustScroll(viewportH int) {
	if viewportH <= 0 || l.Selected < 0 {
		return
	}
	if l.Selected < l.Scroll {
		l.Scroll = l.Selected
	}
	if l.Selected >= l.Scroll+viewportH {
		l.Scroll = l.Selected - viewportH + 1
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
}

// HandleKey processes navigation keys. Returns true if the event moved the
// selection.
func (l *ListState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		l.MoveUp()
		return true
	case tcell.KeyDown:
		l.MoveDown()
		return true
	case tcell.KeyHome:
		l.Select(0)
		return true
	case tcell.KeyEnd:
		l.Select(len(l.visible) - 1)
		return true
	case tcell.KeyPgUp:
		l.Select(l.Selected - 10)
		return true
	case tcell.KeyPgDn:
		l.Select(l.Selected + 10)
		return true
	}
	return false
}

// Scroll by mouse wheel. Positive delta scrolls down.
func (l *ListState) ScrollBy(delta int) {
	l.Scroll += delta
	max := len(l.visible) - 1
	if l.Scroll > max {
		l.Scroll = max
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
}

// RowBounds names the clickable area of one rendered list row.
type RowBounds struct {
	Row  int // visible row index, pass to Select
	Area interact.Rect
}

// ListOpts configures list rendering.
type ListOpts struct {
	Theme Theme
}

// List renders the visible rows of the list and returns the bounds of each
// rendered row in absolute coordinates, for click registration.
func (s Surface) List(st *ListState, opts ListOpts) []RowBounds {
	if s.H < 1 {
		return nil
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}

	st.adjustScroll(s.H)

	rows := make([]RowBounds, 0, s.H)
	for y := 0; y < s.H; y++ {
		row := st.Scroll + y
		if row >= len(st.visible) {
			break
		}

		style := th.Base
		if row == st.Selected {
			style = th.Selection
			if st.focused {
				style = th.Focused
			}
		}

		for x := 0; x < s.W; x++ {
			s.SetCell(x, y, ' ', style)
		}
		s.Text(1, y, Truncate(st.Items[st.visible[row]], s.W-2), style)

		rows = append(rows, RowBounds{
			Row:  row,
			Area: interact.NewRect(s.X, s.Y+y, s.W, 1),
		})
	}
	return rows
}
