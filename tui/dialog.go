package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// TargetKind classifies what a dialog focus target is.
type TargetKind uint8

const (
	TargetChild TargetKind = iota
	TargetButton
	TargetClose
)

// DialogTarget identifies one focusable or clickable element inside a
// dialog. Used as both focus ring key and click region action.
type DialogTarget struct {
	Kind  TargetKind
	Index int
}

// dialogChild pairs a child widget's focus flag with its key handler.
type dialogChild struct {
	focusable interact.Focusable
	handler   func(*tcell.EventKey) bool
}

// DialogState is a modal container: it owns an inner focus ring over its
// children and buttons, a click registry rebuilt on every render, and the
// open/closed flag. It implements interact.Container so an application can
// route events to it while it is visible.
//
// Tab order is children in registration order, then buttons. Tab wraps
// inside the dialog; focus never escapes while it is open.
type DialogState struct {
	Title   string
	Buttons []string
	Visible bool

	// StayOnOutsideClick keeps the dialog open when the user clicks the
	// dimmed area around it. Default is to close.
	StayOnOutsideClick bool

	// Pressed is the index of the button that submitted the dialog,
	// -1 before any press.
	Pressed int

	children []dialogChild
	ring     *interact.FocusManager[DialogTarget]
	regions  *interact.ClickRegionRegistry[DialogTarget]
	area     interact.Rect
	focused  bool
}

var (
	_ interact.Container = (*DialogState)(nil)
	_ interact.Focusable = (*DialogState)(nil)
)

// NewDialogState creates a hidden dialog with the given buttons.
func NewDialogState(title string, buttons ...string) *DialogState {
	d := &DialogState{
		Title:   title,
		Buttons: buttons,
		Pressed: -1,
		ring:    interact.NewFocusManager[DialogTarget](),
		regions: interact.NewClickRegionRegistry[DialogTarget](),
	}
	d.rebuildRing()
	return d
}

// AddChild appends a focusable child to the tab order, ahead of the
// buttons. The optional handler receives key events while the child holds
// focus; a nil handler means the child only receives focus styling.
func (d *DialogState) AddChild(f interact.Focusable, handler func(*tcell.EventKey) bool) int {
	d.children = append(d.children, dialogChild{focusable: f, handler: handler})
	d.rebuildRing()
	return len(d.children) - 1
}

func (d *DialogState) rebuildRing() {
	d.ring.Clear()
	for i := range d.children {
		d.ring.Register(DialogTarget{Kind: TargetChild, Index: i})
	}
	for i := range d.Buttons {
		d.ring.Register(DialogTarget{Kind: TargetButton, Index: i})
	}
}

// Show opens the dialog and focuses the first target.
func (d *DialogState) Show() {
	d.Visible = true
	d.Pressed = -1
	d.ring.First()
	d.syncFocus()
}

// Close hides the dialog and drops inner focus.
func (d *DialogState) Close() {
	d.Visible = false
	d.ring.Unfocus()
	d.syncFocus()
}

// Target returns the currently focused target, if any.
func (d *DialogState) Target() (DialogTarget, bool) {
	return d.ring.Current()
}

// FocusTarget moves the inner focus to a specific target.
func (d *DialogState) FocusTarget(t DialogTarget) {
	d.ring.Focus(t)
	d.syncFocus()
}

func (d *DialogState) syncFocus() {
	cur, ok := d.ring.Current()
	for i, ch := range d.children {
		ch.focusable.SetFocused(ok && cur == DialogTarget{Kind: TargetChild, Index: i})
	}
}

// SetFocused implements interact.Focusable.
func (d *DialogState) SetFocused(v bool) { d.focused = v }

// Focused implements interact.Focusable.
func (d *DialogState) Focused() bool { return d.focused }

// HandleKey implements interact.Container. Tab wraps inside the dialog,
// Escape closes it, activation on a button submits.
func (d *DialogState) HandleKey(ev *tcell.EventKey) interact.EventResult {
	if !d.Visible {
		return interact.EventResult{}
	}

	switch {
	case interact.IsTab(ev):
		d.ring.Next()
		d.syncFocus()
		return interact.Consume()
	case interact.IsBacktab(ev):
		d.ring.Prev()
		d.syncFocus()
		return interact.Consume()
	case interact.IsClose(ev):
		d.Close()
		return interact.Close()
	}

	cur, ok := d.ring.Current()
	if !ok {
		return interact.Consume() // modal swallows stray keys
	}

	switch cur.Kind {
	case TargetChild:
		if h := d.children[cur.Index].handler; h != nil && h(ev) {
			return interact.Consume()
		}
	case TargetButton:
		if interact.IsActivate(ev) {
			d.Pressed = cur.Index
			d.Close()
			return interact.Submit()
		}
	}
	return interact.Consume()
}

// HandleMouse implements interact.Container. Clicks resolve against the
// regions registered during the last render; a click outside the dialog
// closes it unless StayOnOutsideClick is set.
func (d *DialogState) HandleMouse(ev *tcell.EventMouse) interact.EventResult {
	if !d.Visible {
		return interact.EventResult{}
	}
	if !interact.IsLeftClick(ev) {
		return interact.Consume()
	}

	x, y := interact.MousePos(ev)
	if target, ok := d.regions.HandleClick(x, y); ok {
		switch target.Kind {
		case TargetChild:
			d.ring.Focus(target)
			d.syncFocus()
			return interact.Consume()
		case TargetButton:
			d.Pressed = target.Index
			d.Close()
			return interact.Submit()
		case TargetClose:
			d.Close()
			return interact.Close()
		}
	}

	if !d.area.Contains(x, y) {
		if d.StayOnOutsideClick {
			return interact.Consume()
		}
		d.Close()
		return interact.Close()
	}
	return interact.Consume()
}

// RegisterChildRect exposes a child's clickable rect to the dialog's own
// click registry. Called from the content callback after rendering the
// child.
func (d *DialogState) RegisterChildRect(child int, r interact.Rect) {
	d.regions.Register(r, DialogTarget{Kind: TargetChild, Index: child})
}

// DialogOpts configures dialog rendering.
type DialogOpts struct {
	Message string   // wrapped and centered above the content area
	Border  LineType // frame style; the LineNone zero value means LineDouble
	MinW    int      // default 36
	Theme   Theme
}

// Dialog renders a centered modal dialog: frame, title, close marker,
// wrapped message, content area, and button bar. The content callback, if
// non-nil, draws the dialog's children into the area between message and
// buttons. Click regions are rebuilt on every call.
func (s Surface) Dialog(d *DialogState, opts DialogOpts, content func(Surface)) {
	if !d.Visible {
		return
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}
	border := opts.Border
	if border == LineNone {
		border = LineDouble
	}
	minW := opts.MinW
	if minW == 0 {
		minW = 36
	}

	msgLines := WrapText(opts.Message, s.W-8)

	w := minW
	for _, line := range msgLines {
		if lw := DisplayWidth(line) + 6; lw > w {
			w = lw
		}
	}
	if w > s.W-4 {
		w = s.W - 4
	}

	h := 2 + len(msgLines) + 2 // frame + message + gap + buttons
	if content != nil {
		h += 4
	}
	if h > s.H-2 {
		h = s.H - 2
	}

	dlg := Center(s, w, h)
	d.regions.Clear()
	d.area = dlg.Bounds()

	dlg.Fill(' ', th.Base)
	dlg.Box(border, th.Border)
	if d.Title != "" {
		dlg.TextCenter(0, " "+d.Title+" ", th.Title)
	}
	dlg.Text(dlg.W-2, 0, "✕", th.Hint)
	d.regions.Register(interact.NewRect(dlg.X+dlg.W-2, dlg.Y, 1, 1), DialogTarget{Kind: TargetClose})

	inner := dlg.Inset(1)
	y := 0
	for _, line := range msgLines {
		if y >= inner.H-2 {
			break
		}
		inner.TextCenter(y, line, th.Base)
		y++
	}

	if content != nil {
		content(inner.Sub(0, y, inner.W, inner.H-y-2))
	}

	// Button bar on the last row, focus driven by the inner ring.
	cur, hasCur := d.ring.Current()
	bar := make([]BarButton, len(d.Buttons))
	for i, label := range d.Buttons {
		bar[i] = BarButton{
			Label:   label,
			Focused: hasCur && cur == DialogTarget{Kind: TargetButton, Index: i},
		}
	}
	rects := inner.ButtonBar(inner.H-1, bar, ButtonBarOpts{Align: BarAlignCenter, Theme: th})
	for i, r := range rects {
		d.regions.Register(r, DialogTarget{Kind: TargetButton, Index: i})
	}
}
