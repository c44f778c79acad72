package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

// TabTarget identifies one clickable element of a rendered tab view:
// either a tab in the strip (Child == -1) or a content child (Tab == -1).
type TabTarget struct {
	Tab   int
	Child int
}

// tabChild pairs a content widget's focus flag with its key handler.
type tabChild struct {
	focusable interact.Focusable
	handler   func(*tcell.EventKey) bool
}

// TabViewState couples a tab strip with the focusable content under each
// tab. The strip is the container's chrome: Enter moves focus into the
// active tab's content, Esc steps back out to the strip and then out of the
// view entirely, Tab cycles strip and content with wraparound.
//
// It implements interact.Container so an application can forward events to
// it while it holds focus, and interact.Focusable so it can sit in a parent
// ring like any leaf widget.
type TabViewState struct {
	Tabs *TabsState

	children [][]tabChild
	focus    *interact.ContainerFocus
	regions  *interact.ClickRegionRegistry[TabTarget]
}

var (
	_ interact.Container = (*TabViewState)(nil)
	_ interact.Focusable = (*TabViewState)(nil)
)

// NewTabViewState creates an unfocused tab view with the first tab active
// and no content children.
func NewTabViewState(titles ...string) *TabViewState {
	t := &TabViewState{
		Tabs:     NewTabsState(titles...),
		children: make([][]tabChild, len(titles)),
		regions:  interact.NewClickRegionRegistry[TabTarget](),
		focus:    interact.NewContainerFocus(0, interact.BoundaryWrap, true),
	}
	return t
}

// AddChild appends a focusable content widget to the given tab's ring and
// returns its index within that tab. The optional handler receives key
// events while the child holds focus.
func (t *TabViewState) AddChild(tab int, f interact.Focusable, handler func(*tcell.EventKey) bool) int {
	if tab < 0 || tab >= len(t.children) {
		return -1
	}
	t.children[tab] = append(t.children[tab], tabChild{focusable: f, handler: handler})
	if tab == t.Tabs.Active {
		t.rebuildFocus()
	}
	return len(t.children[tab]) - 1
}

func (t *TabViewState) activeChildren() []tabChild {
	if len(t.children) == 0 {
		return nil
	}
	return t.children[t.Tabs.Active]
}

// rebuildFocus recreates the delegation ring for the active tab's children.
// A focused view lands back on the strip; an unfocused one stays unfocused.
func (t *TabViewState) rebuildFocus() {
	focused := t.focus.Focused()
	t.focus = interact.NewContainerFocus(len(t.activeChildren()), interact.BoundaryWrap, true)
	if focused {
		t.focus.Focus()
	}
	t.syncFocus()
}

// syncFocus pushes the delegation state into the strip and child widgets.
func (t *TabViewState) syncFocus() {
	state, idx := t.focus.State()
	t.Tabs.SetFocused(state == interact.SelfFocused)
	for i, ch := range t.activeChildren() {
		ch.focusable.SetFocused(state == interact.ChildFocused && i == idx)
	}
}

// selectTab activates a tab, moving any content focus back to the strip.
func (t *TabViewState) selectTab(i int) {
	t.Tabs.Activate(i)
	t.rebuildFocus()
}

// State exposes the delegation state: where focus sits and, for
// ChildFocused, which content child holds it.
func (t *TabViewState) State() (interact.FocusState, int) {
	return t.focus.State()
}

// SetFocused implements interact.Focusable. Gaining focus lands on the
// strip; losing it blurs strip and children but keeps the active tab.
func (t *TabViewState) SetFocused(v bool) {
	if v {
		t.focus.Focus()
	} else {
		t.focus.Blur()
	}
	t.syncFocus()
}

// Focused implements interact.Focusable.
func (t *TabViewState) Focused() bool { return t.focus.Focused() }

// HandleKey implements interact.Container. While the strip holds focus
// Left/Right/Home/End and the digit keys select tabs and Enter descends
// into the content; Tab cycles strip and children with wraparound; Esc
// steps back to the strip and then releases focus to the caller.
func (t *TabViewState) HandleKey(ev *tcell.EventKey) interact.EventResult {
	state, _ := t.focus.State()
	if state == interact.Unfocused {
		return interact.EventResult{}
	}

	switch {
	case interact.IsTab(ev):
		t.focus.Next()
		t.syncFocus()
		return interact.Consume()
	case interact.IsBacktab(ev):
		t.focus.Prev()
		t.syncFocus()
		return interact.Consume()
	case interact.IsClose(ev):
		consumed := t.focus.Esc()
		t.syncFocus()
		if consumed {
			return interact.Consume()
		}
		return interact.EventResult{}
	}

	if state == interact.SelfFocused {
		return t.handleStripKey(ev)
	}

	_, idx := t.focus.State()
	if h := t.activeChildren()[idx].handler; h != nil && h(ev) {
		return interact.Consume()
	}
	return interact.EventResult{}
}

func (t *TabViewState) handleStripKey(ev *tcell.EventKey) interact.EventResult {
	if len(t.Tabs.Titles) == 0 {
		return interact.EventResult{}
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		t.selectTab((t.Tabs.Active - 1 + len(t.Tabs.Titles)) % len(t.Tabs.Titles))
		return interact.Consume()
	case tcell.KeyRight:
		t.selectTab((t.Tabs.Active + 1) % len(t.Tabs.Titles))
		return interact.Consume()
	}
	switch {
	case interact.IsHome(ev):
		t.selectTab(0)
		return interact.Consume()
	case interact.IsEnd(ev):
		t.selectTab(len(t.Tabs.Titles) - 1)
		return interact.Consume()
	case interact.IsEnter(ev):
		if len(t.activeChildren()) > 0 {
			t.focus.Next()
			t.syncFocus()
		}
		return interact.Consume()
	}
	if r, ok := interact.Char(ev); ok && r >= '1' && r <= '9' {
		t.selectTab(int(r - '1'))
		return interact.Consume()
	}
	return interact.EventResult{}
}

// HandleMouse implements interact.Container. Clicks resolve against the
// regions registered during the last render: a tab click activates it and
// focuses the strip, a child click focuses that child. Clicks elsewhere are
// left for the caller.
func (t *TabViewState) HandleMouse(ev *tcell.EventMouse) interact.EventResult {
	if !interact.IsLeftClick(ev) {
		return interact.EventResult{}
	}

	x, y := interact.MousePos(ev)
	target, ok := t.regions.HandleClick(x, y)
	if !ok {
		return interact.EventResult{}
	}
	if target.Child >= 0 {
		t.focus.FocusChild(target.Child)
		t.syncFocus()
		return interact.Consume()
	}
	t.selectTab(target.Tab)
	t.focus.Focus()
	t.syncFocus()
	return interact.Consume()
}

// RegisterChildRect exposes a content child's clickable rect to the view's
// click registry. Called from the content callback after rendering it.
func (t *TabViewState) RegisterChildRect(child int, r interact.Rect) {
	t.regions.Register(r, TabTarget{Tab: -1, Child: child})
}

// TabView renders the strip on the first row and hands the rest of the
// surface to the content callback for the active tab. Click regions are
// rebuilt on every call.
func (s Surface) TabView(t *TabViewState, opts TabBarOpts, content func(body Surface, active int)) {
	t.regions.Clear()
	for _, tb := range s.TabBar(0, t.Tabs, opts) {
		t.regions.Register(tb.Area, TabTarget{Tab: tb.Index, Child: -1})
	}
	if s.H < 2 || content == nil {
		return
	}
	content(s.Sub(0, 1, s.W, s.H-1), t.Tabs.Active)
}
