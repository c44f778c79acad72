// Command widget-catalog shows every widget in the toolkit on one screen,
// with keyboard focus traversal and mouse support.
//
// Tab/Shift-Tab move focus, Enter/Space activate, Esc quits. Click any
// widget to focus it, drag the divider to resize the panes.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
	"github.com/lixenwraith/tuikit/tui"
)

// Focus ring keys, in tab order.
const (
	wTabs   = "tabs"
	wField  = "field"
	wList   = "list"
	wCheck  = "check"
	wButton = "button"
	wToggle = "toggle"
)

type catalog struct {
	ring    *interact.FocusManager[string]
	regions *interact.ClickRegionRegistry[string]
	keymap  interact.Keymap
	theme   tui.Theme

	tabs    *tui.TabsState
	field   *tui.TextFieldState
	list    *tui.ListState
	check   *tui.CheckboxState
	button  *tui.ButtonState
	toggle  *tui.ButtonState
	split   *tui.SplitPaneState
	spinner *tui.SpinnerState
	marquee *tui.MarqueeState
	toast   *tui.ToastState

	progress float64
	frame    int
}

func newCatalog(km interact.Keymap, th tui.Theme) *catalog {
	c := &catalog{
		ring:    interact.NewFocusManager[string](),
		regions: interact.NewClickRegionRegistry[string](),
		keymap:  km,
		theme:   th,
		tabs:    tui.NewTabsState("Widgets", "About"),
		field:   tui.NewTextFieldState(""),
		list: tui.NewListState([]string{
			"apples", "bananas", "cherries", "dates",
			"elderberries", "figs", "grapes", "honeydew",
		}),
		check:   &tui.CheckboxState{},
		button:  &tui.ButtonState{},
		toggle:  &tui.ButtonState{},
		split:   tui.NewSplitPaneState(0.4, false),
		spinner: &tui.SpinnerState{},
		marquee: tui.NewMarqueeState("drag the divider, click anything, filter the list by typing in the field"),
		toast:   &tui.ToastState{},
	}
	c.ring.RegisterAll(wTabs, wField, wList, wCheck, wButton, wToggle)
	return c
}

// syncFocus pushes the ring's selection into each widget's focus flag.
func (c *catalog) syncFocus() {
	cur, _ := c.ring.Current()
	c.tabs.SetFocused(cur == wTabs)
	c.field.SetFocused(cur == wField)
	c.list.SetFocused(cur == wList)
	c.check.SetFocused(cur == wCheck)
	c.button.SetFocused(cur == wButton)
	c.toggle.SetFocused(cur == wToggle)
}

// handleKey routes one key event. Returns false to quit.
func (c *catalog) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	switch {
	case c.keymap.IsNext(ev):
		c.ring.Next()
		c.syncFocus()
		return true
	case c.keymap.IsPrev(ev):
		c.ring.Prev()
		c.syncFocus()
		return true
	case c.keymap.IsClose(ev):
		if c.ring.HasFocus() {
			c.ring.Unfocus()
			c.syncFocus()
			return true
		}
		return false
	}

	cur, ok := c.ring.Current()
	if !ok {
		return true
	}
	switch cur {
	case wTabs:
		c.tabs.HandleKey(ev)
	case wField:
		if c.field.HandleKey(ev) {
			c.list.SetFilter(c.field.Value())
		}
	case wList:
		if c.keymap.IsActivate(ev) {
			if v, ok := c.list.Value(); ok {
				c.toast.Show("picked "+v, tui.SeveritySuccess, 60)
			}
			return true
		}
		c.list.HandleKey(ev)
	case wCheck:
		c.check.HandleKey(ev)
	case wButton:
		if c.keymap.IsActivate(ev) {
			c.progress = 0
			c.toast.Show("progress restarted", tui.SeverityInfo, 60)
		}
	case wToggle:
		c.toggle.HandleKey(ev)
	}
	return true
}

func (c *catalog) handleMouse(ev *tcell.EventMouse) {
	// The divider drag takes priority over click-to-focus.
	if c.split.HandleMouse(ev) {
		return
	}

	if d := interact.ScrollDelta(ev); d != 0 {
		c.list.ScrollBy(d)
		return
	}
	if !interact.IsLeftClick(ev) {
		return
	}

	x, y := interact.MousePos(ev)
	key, ok := c.regions.HandleClick(x, y)
	if !ok {
		return
	}
	c.ring.Focus(key)
	c.syncFocus()

	// A click both focuses and activates.
	switch key {
	case wCheck:
		c.check.Toggle()
	case wButton:
		c.progress = 0
		c.toast.Show("progress restarted", tui.SeverityInfo, 60)
	case wToggle:
		c.toggle.On = !c.toggle.On
	}
}

// render draws one frame, rebuilding the click registry from scratch.
func (c *catalog) render(root tui.Surface) {
	th := c.theme
	c.regions.Clear()
	root.Clear(th.Base)

	tabBounds := root.TabBar(0, c.tabs, tui.TabBarOpts{Theme: th})
	for _, tb := range tabBounds {
		c.regions.Register(tb.Area, wTabs)
	}
	body := root.Sub(0, 1, root.W, root.H-2)

	if c.tabs.Active == 1 {
		about := body.Inset(2)
		about.Text(0, 0, "An interaction toolkit for terminal applications:", th.Base)
		about.Text(0, 1, "a focus ring, a per-frame click registry, and widgets", th.Base)
		about.Text(0, 2, "that register their own clickable areas.", th.Base)
		c.renderStatus(root)
		return
	}

	left, right := body.SplitPane(c.split, tui.SplitPaneOpts{Theme: th})

	// Left pane: filter field over the list it filters.
	leftIn := left.Card("Picker", tui.LineSingle, th.Border)
	fieldArea := leftIn.Sub(0, 0, leftIn.W, 1)
	c.regions.Register(fieldArea.TextField(c.field, tui.TextFieldOpts{
		Placeholder: "filter…",
		Prefix:      "/ ",
		Theme:       th,
	}), wField)
	listRows := leftIn.Sub(0, 2, leftIn.W, leftIn.H-2).List(c.list, tui.ListOpts{Theme: th})
	for _, rb := range listRows {
		c.regions.Register(rb.Area, wList)
	}

	// Right pane: the remaining controls.
	rightIn := right.Card("Controls", tui.LineSingle, th.Border)
	c.regions.Register(rightIn.Checkbox(1, 0, "enable frobnication", c.check, tui.CheckboxOpts{Theme: th}), wCheck)
	c.regions.Register(rightIn.Button(1, 2, "Restart", c.button, tui.ButtonOpts{Key: "Enter", Theme: th}), wButton)
	c.regions.Register(rightIn.Button(1, 4, onOff(c.toggle.On), c.toggle, tui.ButtonOpts{Theme: th}), wToggle)

	rightIn.Gauge(1, 6, rightIn.W-2, int(c.progress*100), 100, th.Accent)
	rightIn.Spinner(1, 8, c.spinner, th.Accent)
	rightIn.Marquee(3, 8, rightIn.W-4, c.marquee, th.Hint)

	c.renderStatus(root)
	root.Toast(c.toast, tui.ToastOpts{Theme: th})
}

func (c *catalog) renderStatus(root tui.Surface) {
	hint := "tab: focus  enter: activate  esc: blur/quit"
	if cur, ok := c.ring.Current(); ok {
		hint = fmt.Sprintf("focused: %s  (%s)", cur, hint)
	}
	root.Text(1, root.H-1, hint, c.theme.Hint)
}

func onOff(on bool) string {
	if on {
		return "Sound: on"
	}
	return "Sound: off"
}

func main() {
	themePath := flag.String("theme", "", "YAML theme file")
	keymapPath := flag.String("keymap", "", "YAML keymap file")
	flag.Parse()

	th := tui.DefaultTheme()
	if *themePath != "" {
		var err error
		if th, err = tui.LoadTheme(*themePath); err != nil {
			log.Fatal(err)
		}
	}
	km := interact.DefaultKeymap()
	if *keymapPath != "" {
		var err error
		if km, err = interact.LoadKeymap(*keymapPath); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	c := newCatalog(km, th)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if !c.handleKey(e) {
					return
				}
			case *tcell.EventMouse:
				c.handleMouse(e)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			c.frame++
			c.spinner.Tick()
			if c.frame%4 == 0 {
				c.marquee.Tick()
			}
			c.toast.Tick()
			if c.progress < 1 {
				c.progress += 0.005
			}
		}

		w, h := screen.Size()
		c.render(tui.NewSurface(screen, w, h))
		screen.Show()
	}
}
