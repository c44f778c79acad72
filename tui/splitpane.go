package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// SplitPaneState holds the divider position of a two-pane split and the
// in-progress drag, if any.
type SplitPaneState struct {
	Ratio    float64 // first pane share, 0..1
	Vertical bool    // true = stacked panes with a horizontal divider
	MinRatio float64 // default 0.1
	MaxRatio float64 // default 0.9

	dragging bool
	area     interact.Rect // last rendered split area
	divider  interact.Rect // last rendered divider
}

// NewSplitPaneState creates a split at the given ratio.
func NewSplitPaneState(ratio float64, vertical bool) *SplitPaneState {
	return &SplitPaneState{Ratio: ratio, Vertical: vertical, MinRatio: 0.1, MaxRatio: 0.9}
}

func (sp *SplitPaneState) clamp() {
	min, max := sp.MinRatio, sp.MaxRatio
	if min <= 0 {
		min = 0.1
	}
	if max <= 0 || max > 1 {
		max = 0.9
	}
	if sp.Ratio < min {
		sp.Ratio = min
	}
	if sp.Ratio > max {
		sp.Ratio = max
	}
}

// Dragging reports whether a divider drag is in progress.
func (sp *SplitPaneState) Dragging() bool { return sp.dragging }

var _ interact.Clickable = (*SplitPaneState)(nil)

// ClickRect implements interact.Clickable: the hit target of a split pane
// is its one-cell divider within the rendered area.
func (sp *SplitPaneState) ClickRect(area interact.Rect) interact.Rect {
	sp.clamp()
	if sp.Vertical {
		h := int(float64(area.H) * sp.Ratio)
		if h < 1 {
			h = 1
		}
		if h > area.H-2 {
			h = area.H - 2
		}
		return interact.NewRect(area.X, area.Y+h, area.W, 1)
	}
	w := int(float64(area.W) * sp.Ratio)
	if w < 1 {
		w = 1
	}
	if w > area.W-2 {
		w = area.W - 2
	}
	return interact.NewRect(area.X+w, area.Y, 1, area.H)
}

// HandleMouse implements divider dragging: press on the divider starts a
// drag, motion while dragging moves the split, release ends it. Returns
// true if the event was consumed.
func (sp *SplitPaneState) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := interact.MousePos(ev)

	switch {
	case interact.IsLeftClick(ev):
		if sp.dragging {
			sp.dragTo(x, y)
			return true
		}
		if sp.divider.Contains(x, y) {
			sp.dragging = true
			return true
		}
	case interact.IsRelease(ev):
		if sp.dragging {
			sp.dragging = false
			return true
		}
	}
	return false
}

func (sp *SplitPaneState) dragTo(x, y int) {
	if sp.Vertical {
		if sp.area.H > 1 {
			sp.Ratio = float64(y-sp.area.Y) / float64(sp.area.H)
		}
	} else {
		if sp.area.W > 1 {
			sp.Ratio = float64(x-sp.area.X) / float64(sp.area.W)
		}
	}
	sp.clamp()
}

// SplitPaneOpts configures split pane rendering.
type SplitPaneOpts struct {
	Theme Theme
}

// SplitPane divides the surface into two panes around a one-cell divider
// and returns them. The divider position and total area are recorded on
// the state for hit testing in HandleMouse.
func (s Surface) SplitPane(sp *SplitPaneState, opts SplitPaneOpts) (first, second Surface) {
	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}

	sp.area = s.Bounds()
	sp.divider = sp.ClickRect(sp.area)

	style := th.Border
	if sp.dragging {
		style = th.Accent
	}

	if sp.Vertical {
		firstH := sp.divider.Y - s.Y
		s.HLine(0, firstH, s.W, '─', style)
		return s.Sub(0, 0, s.W, firstH), s.Sub(0, firstH+1, s.W, s.H-firstH-1)
	}

	firstW := sp.divider.X - s.X
	s.VLine(firstW, 0, s.H, '│', style)
	return s.Sub(0, 0, firstW, s.H), s.Sub(firstW+1, 0, s.W-firstW-1, s.H)
}
