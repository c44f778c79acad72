package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable single-line text state.
type TextFieldState struct {
	Text    []rune
	Cursor  int // rune index the cursor sits before (0 = start)
	Scroll  int // first visible rune index
	MaxLen  int // max runes, 0 = unlimited
	focused bool
}

// NewTextFieldState creates state with the cursor at the end of initial.
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{Text: runes, Cursor: len(runes)}
}

var _ interact.Focusable = (*TextFieldState)(nil)

// SetFocused implements interact.Focusable.
func (t *TextFieldState) SetFocused(v bool) { t.focused = v }

// Focused implements interact.Focusable.
func (t *TextFieldState) Focused() bool { return t.focused }

// Value returns the current text.
func (t *TextFieldState) Value() string { return string(t.Text) }

// SetValue replaces the text and moves the cursor to the end.
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Clear empties the field.
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Insert adds a rune at the cursor, respecting MaxLen.
func (t *TextFieldState) Insert(r rune) bool {
	if t.MaxLen > 0 && len(t.Text) >= t.MaxLen {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	return true
}

// InsertString adds a string at the cursor, truncated to fit MaxLen.
func (t *TextFieldState) InsertString(s string) {
	runes := []rune(s)
	if t.MaxLen > 0 {
		room := t.MaxLen - len(t.Text)
		if room <= 0 {
			return
		}
		if len(runes) > room {
			runes = runes[:room]
		}
	}
	t.Text = append(t.Text[:t.Cursor], append(runes, t.Text[t.Cursor:]...)...)
	t.Cursor += len(runes)
}

// DeleteBackward removes the rune before the cursor.
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
	t.Cursor--
	return true
}

// DeleteForward removes the rune at the cursor.
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word before the cursor.
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteWordForward removes the word after the cursor.
func (t *TextFieldState) DeleteWordForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	end := t.Cursor
	for end < len(t.Text) && isWordChar(t.Text[end]) {
		end++
	}
	for end < len(t.Text) && !isWordChar(t.Text[end]) {
		end++
	}
	if end == t.Cursor {
		end = t.Cursor + 1
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[end:]...)
	return true
}

// DeleteToEnd removes from the cursor to the end of the line.
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = t.Text[:t.Cursor]
	return true
}

// DeleteToStart removes from the start of the line to the cursor.
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = t.Text[t.Cursor:]
	t.Cursor = 0
	t.Scroll = 0
	return true
}

// MoveLeft moves the cursor one rune left.
func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// MoveWordLeft moves the cursor to the previous word boundary.
func (t *TextFieldState) MoveWordLeft() {
	for t.Cursor > 0 && !isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	for t.Cursor > 0 && isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
}

// MoveWordRight moves the cursor to the next word boundary.
func (t *TextFieldState) MoveWordRight() {
	for t.Cursor < len(t.Text) && isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
	for t.Cursor < len(t.Text) && !isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
}

// MoveToStart moves the cursor to the beginning of the line.
func (t *TextFieldState) MoveToStart() { t.Cursor = 0 }

// MoveToEnd moves the cursor past the last rune.
func (t *TextFieldState) MoveToEnd() { t.Cursor = len(t.Text) }

// AdjustScroll keeps the cursor inside a viewport of the given width.
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+viewportW {
		t.Scroll = t.Cursor - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey applies one key event to the field. Returns true if the event
// changed cursor or text.
func (t *TextFieldState) HandleKey(ev *tcell.EventKey) bool {
	ctrl := interact.HasCtrl(ev)

	switch ev.Key() {
	case tcell.KeyLeft:
		if ctrl {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case tcell.KeyRight:
		if ctrl {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.MoveToStart()
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.MoveToEnd()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ctrl {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case tcell.KeyDelete:
		if ctrl {
			return t.DeleteWordForward()
		}
		return t.DeleteForward()
	case tcell.KeyCtrlK:
		return t.DeleteToEnd()
	case tcell.KeyCtrlU:
		return t.DeleteToStart()
	case tcell.KeyCtrlW:
		return t.DeleteWordBackward()
	}

	if r, ok := interact.Char(ev); ok && r >= 32 {
		return t.Insert(r)
	}
	return false
}
