// Command dialog-demo shows modal dialogs layered over an application
// screen. While a dialog is open it owns every event: Tab cycles its
// children and buttons, Esc dismisses it, and clicks outside close it.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
	"github.com/lixenwraith/tuikit/tui"
)

const (
	wOpenForm    = "open-form"
	wOpenConfirm = "open-confirm"
)

type app struct {
	ring    *interact.FocusManager[string]
	regions *interact.ClickRegionRegistry[string]
	keymap  interact.Keymap
	theme   tui.Theme

	openForm    *tui.ButtonState
	openConfirm *tui.ButtonState

	form    *tui.DialogState
	name    *tui.TextFieldState
	notify  *tui.CheckboxState
	confirm *tui.DialogState

	toast tui.ToastState
}

func newApp() *app {
	a := &app{
		ring:        interact.NewFocusManager[string](),
		regions:     interact.NewClickRegionRegistry[string](),
		keymap:      interact.DefaultKeymap(),
		theme:       tui.DefaultTheme(),
		openForm:    &tui.ButtonState{},
		openConfirm: &tui.ButtonState{},
		name:        tui.NewTextFieldState(""),
		notify:      &tui.CheckboxState{},
	}

	a.form = tui.NewDialogState("New Account", "Create", "Cancel")
	a.form.AddChild(a.name, a.name.HandleKey)
	a.form.AddChild(a.notify, a.notify.HandleKey)

	a.confirm = tui.NewDialogState("Delete Everything", "Delete", "Keep")
	a.confirm.StayOnOutsideClick = true

	a.ring.RegisterAll(wOpenForm, wOpenConfirm)
	a.ring.First()
	a.syncFocus()
	return a
}

func (a *app) syncFocus() {
	cur, _ := a.ring.Current()
	a.openForm.SetFocused(cur == wOpenForm)
	a.openConfirm.SetFocused(cur == wOpenConfirm)
}

// modal returns the dialog currently owning events, if any.
func (a *app) modal() *tui.DialogState {
	if a.form.Visible {
		return a.form
	}
	if a.confirm.Visible {
		return a.confirm
	}
	return nil
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if d := a.modal(); d != nil {
		res := d.HandleKey(ev)
		if res.Action == interact.ActionSubmit {
			a.afterDialog(d)
		}
		return true
	}

	switch {
	case a.keymap.IsNext(ev):
		a.ring.Next()
		a.syncFocus()
	case a.keymap.IsPrev(ev):
		a.ring.Prev()
		a.syncFocus()
	case a.keymap.IsClose(ev):
		return false
	case a.keymap.IsActivate(ev):
		switch cur, _ := a.ring.Current(); cur {
		case wOpenForm:
			a.form.Show()
		case wOpenConfirm:
			a.confirm.Show()
		}
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if d := a.modal(); d != nil {
		res := d.HandleMouse(ev)
		if res.Action == interact.ActionSubmit {
			a.afterDialog(d)
		}
		return
	}

	if !interact.IsLeftClick(ev) {
		return
	}
	x, y := interact.MousePos(ev)
	key, ok := a.regions.HandleClick(x, y)
	if !ok {
		return
	}
	a.ring.Focus(key)
	a.syncFocus()
	switch key {
	case wOpenForm:
		a.form.Show()
	case wOpenConfirm:
		a.confirm.Show()
	}
}

func (a *app) afterDialog(d *tui.DialogState) {
	switch {
	case d == a.form && d.Pressed == 0:
		msg := fmt.Sprintf("created %q", a.name.Value())
		if a.notify.Checked {
			msg += " (with notifications)"
		}
		a.toast.Show(msg, tui.SeveritySuccess, 80)
	case d == a.confirm && d.Pressed == 0:
		a.toast.Show("everything deleted", tui.SeverityError, 80)
	default:
		a.toast.Show("cancelled", tui.SeverityInfo, 40)
	}
}

func (a *app) render(root tui.Surface) {
	th := a.theme
	a.regions.Clear()
	root.Clear(th.Base)

	content := root.Card("Dialogs", tui.LineSingle, th.Border)
	content.Text(1, 0, "A modal dialog traps focus: Tab wraps inside it and", th.Base)
	content.Text(1, 1, "the screen behind it ignores clicks while it is open.", th.Base)

	a.regions.Register(content.Button(1, 3, "Open form…", a.openForm, tui.ButtonOpts{Theme: th}), wOpenForm)
	a.regions.Register(content.Button(1, 5, "Open confirm…", a.openConfirm, tui.ButtonOpts{Theme: th}), wOpenConfirm)

	root.Text(1, root.H-1, "tab: focus  enter: open  esc: quit", th.Hint)
	root.Toast(&a.toast, tui.ToastOpts{Theme: th})

	root.Dialog(a.form, tui.DialogOpts{Message: "Pick a name for the account."}, func(s tui.Surface) {
		s.Text(0, 0, "Name:", th.Base)
		a.form.RegisterChildRect(0, s.Sub(6, 0, s.W-6, 1).TextField(a.name, tui.TextFieldOpts{Theme: th}))
		a.form.RegisterChildRect(1, s.Checkbox(0, 2, "send notifications", a.notify, tui.CheckboxOpts{Theme: th}))
	})
	root.Dialog(a.confirm, tui.DialogOpts{
		Message: "This cannot be undone. Click Keep to back out; clicking outside will not close this one.",
	}, nil)
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp()

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
				if !a.handleKey(e) {
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(e)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			a.toast.Tick()
		}

		w, h := screen.Size()
		a.render(tui.NewSurface(screen, w, h))
		screen.Show()
	}
}
