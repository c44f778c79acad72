package interact

import "github.com/gdamore/tcell/v2"

// Focusable is implemented by widget state types that can hold keyboard
// focus. The application uses it to render focus highlighting and to decide
// which widget consumes keyboard input.
type Focusable interface {
	SetFocused(focused bool)
	Focused() bool
}

// Clickable is implemented by widget state types that want mouse
// hit-testing. Given the area the widget was rendered into, ClickRect
// returns the rectangle to register for the current frame. Widgets with
// several independent hit targets (tab strips, list rows) register each
// target with the registry directly instead.
type Clickable interface {
	ClickRect(area Rect) Rect
}

// Container is implemented by composite widgets that aggregate child
// focusables and own a nested focus ring. Events reach a container only
// while it holds focus in the parent ring; the container forwards traversal
// to its children per its boundary policy and reports the outcome.
type Container interface {
	HandleKey(ev *tcell.EventKey) EventResult
	HandleMouse(ev *tcell.EventMouse) EventResult
}

// Action identifies a container-level outcome of an input event.
type Action uint8

const (
	ActionNone Action = iota
	ActionClose
	ActionSubmit
	ActionCustom
)

// EventResult reports how a container processed an input event.
// The zero value means the event was not handled and should propagate
// to the parent.
type EventResult struct {
	Consumed bool
	Action   Action
	Custom   string // identifier when Action == ActionCustom
}

// Consume marks an event handled with no container-level action.
func Consume() EventResult {
	return EventResult{Consumed: true}
}

// Close marks an event handled by dismissing the container.
func Close() EventResult {
	return EventResult{Consumed: true, Action: ActionClose}
}

// Submit marks an event handled by confirming the container's contents.
func Submit() EventResult {
	return EventResult{Consumed: true, Action: ActionSubmit}
}

// Custom marks an event handled with an application-defined action.
func Custom(name string) EventResult {
	return EventResult{Consumed: true, Action: ActionCustom, Custom: name}
}

// IsAction reports whether the result carries a container-level action.
func (r EventResult) IsAction() bool {
	return r.Action != ActionNone
}
