package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// TabsState holds the active tab and focus state of a tab strip.
type TabsState struct {
	Titles  []string
	Active  int
	focused bool
}

// NewTabsState creates state with the first tab active.
func NewTabsState(titles ...string) *TabsState {
	return &TabsState{Titles: titles}
}

var _ interact.Focusable = (*TabsState)(nil)

// SetFocused implements interact.Focusable.
func (t *TabsState) SetFocused(v bool) { t.focused = v }

// Focused implements interact.Focusable.
func (t *TabsState) Focused() bool { return t.focused }

// NextTab cycles to the next tab, wrapping past the last.
func (t *TabsState) NextTab() {
	if len(t.Titles) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Titles)
}

// PrevTab cycles to the previous tab, wrapping past the first.
func (t *TabsState) PrevTab() {
	if len(t.Titles) == 0 {
		return
	}
	t.Active = (t.Active - 1 + len(t.Titles)) % len(t.Titles)
}

// Activate selects the given tab if it exists.
func (t *TabsState) Activate(i int) {
	if i >= 0 && i < len(t.Titles) {
		t.Active = i
	}
}

// HandleKey cycles tabs with the arrow keys. Returns true if consumed.
func (t *TabsState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.PrevTab()
		return true
	case tcell.KeyRight:
		t.NextTab()
		return true
	}
	return false
}

// TabBounds names the clickable area of one rendered tab.
type TabBounds struct {
	Index int
	Area  interact.Rect
}

// TabBarOpts configures tab bar rendering.
type TabBarOpts struct {
	Separator string // between tabs, default " │ "
	Padding   int    // horizontal padding inside each tab, default 1
	Theme     Theme
}

// TabBar renders the tab strip at row y and returns the bounds of each tab
// in absolute coordinates, for click registration.
func (s Surface) TabBar(y int, st *TabsState, opts TabBarOpts) []TabBounds {
	if y < 0 || y >= s.H || len(st.Titles) == 0 {
		return nil
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}
	sep := opts.Separator
	if sep == "" {
		sep = " │ "
	}
	pad := opts.Padding
	if pad == 0 {
		pad = 1
	}

	bounds := make([]TabBounds, 0, len(st.Titles))
	x := 0
	for i, title := range st.Titles {
		if x >= s.W {
			break
		}

		style := th.Base
		if i == st.Active {
			style = th.Selection.Bold(true)
			if st.focused {
				style = th.Focused.Bold(true)
			}
		}

		tabW := DisplayWidth(title) + pad*2
		if x+tabW > s.W {
			tabW = s.W - x
		}
		bounds = append(bounds, TabBounds{
			Index: i,
			Area:  interact.NewRect(s.X+x, s.Y+y, tabW, 1),
		})

		for j := 0; j < pad; j++ {
			s.SetCell(x+j, y, ' ', style)
		}
		s.Text(x+pad, y, Truncate(title, tabW-pad), style)
		for j := 0; j < pad; j++ {
			s.SetCell(x+pad+DisplayWidth(title)+j, y, ' ', style)
		}

		x += tabW
		if i < len(st.Titles)-1 {
			x += s.Text(x, y, sep, th.Hint)
		}
	}
	return bounds
}
