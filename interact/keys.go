package interact

import "github.com/gdamore/tcell/v2"

// Event predicate helpers for the common traversal and activation patterns.
// Widgets and owning loops use these instead of matching tcell key codes
// directly, so terminal quirks (Backtab vs Shift+Tab, the two backspace
// codes) are handled in one place.

// IsActivate reports Enter or Space, the keys that trigger buttons and
// toggle checkboxes.
func IsActivate(ev *tcell.EventKey) bool {
	return IsEnter(ev) || IsSpace(ev)
}

// IsTab reports forward traversal (Tab without Shift).
func IsTab(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
}

// IsBacktab reports backward traversal (Backtab or Shift+Tab).
func IsBacktab(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyBacktab ||
		(ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift != 0)
}

// IsClose reports the Escape boundary key.
func IsClose(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape
}

// IsEnter reports the Enter key.
func IsEnter(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter
}

// IsSpace reports the space bar.
func IsSpace(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == ' '
}

// IsBackspace reports either backspace code.
func IsBackspace(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2
}

// IsDelete reports the Delete key.
func IsDelete(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyDelete
}

// IsArrow reports any arrow key.
func IsArrow(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		return true
	}
	return false
}

// IsHome reports the Home key.
func IsHome(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyHome
}

// IsEnd reports the End key.
func IsEnd(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnd
}

// Char returns the printable rune of a key event. Modified input
// (Ctrl/Alt held) is not text and returns false; Shift is fine.
func Char(ev *tcell.EventKey) (rune, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	if ev.Modifiers()&^tcell.ModShift != 0 {
		return 0, false
	}
	return ev.Rune(), true
}

// HasCtrl reports whether Ctrl is held.
func HasCtrl(ev *tcell.EventKey) bool {
	return ev.Modifiers()&tcell.ModCtrl != 0
}

// HasAlt reports whether Alt is held.
func HasAlt(ev *tcell.EventKey) bool {
	return ev.Modifiers()&tcell.ModAlt != 0
}

// MousePos returns the cell coordinate of a mouse event.
func MousePos(ev *tcell.EventMouse) (x, y int) {
	return ev.Position()
}

// IsLeftClick reports whether the primary button is down in this event.
func IsLeftClick(ev *tcell.EventMouse) bool {
	return ev.Buttons()&tcell.ButtonPrimary != 0
}

// IsRightClick reports whether the secondary button is down in this event.
func IsRightClick(ev *tcell.EventMouse) bool {
	return ev.Buttons()&tcell.ButtonSecondary != 0
}

// IsRelease reports an event with no buttons held, which terminates drags.
func IsRelease(ev *tcell.EventMouse) bool {
	return ev.Buttons() == tcell.ButtonNone
}

// ScrollDelta returns wheel movement: negative up, positive down, zero for
// non-scroll events.
func ScrollDelta(ev *tcell.EventMouse) int {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		return -1
	case ev.Buttons()&tcell.WheelDown != 0:
		return 1
	}
	return 0
}
