package interact

// FocusManager tracks which one of N registered elements holds keyboard
// focus and provides deterministic Next/Prev traversal with wraparound.
//
// Keys are opaque comparable identifiers chosen by the application, commonly
// an enum-like constant or a small composite struct. Registration order is
// the sole determinant of tab order: it is stable for the ring's lifetime
// and matches the order widgets are declared, so reordering rendering code
// reorders tab traversal with it. That coupling is intentional.
//
// The zero cursor state is "no selection". Register never moves the cursor;
// the application decides when something gains initial focus.
type FocusManager[K comparable] struct {
	keys    []K
	current int // index into keys, -1 = no selection
}

// NewFocusManager creates an empty ring with no selection.
func NewFocusManager[K comparable]() *FocusManager[K] {
	return &FocusManager[K]{current: -1}
}

// Register appends key to the ring if not already present.
// Duplicate registration is silently ignored and the current
// selection never changes.
func (m *FocusManager[K]) Register(key K) {
	for _, k := range m.keys {
		if k == key {
			return
		}
	}
	m.keys = append(m.keys, key)
}

// RegisterAll registers keys in order.
func (m *FocusManager[K]) RegisterAll(keys ...K) {
	for _, k := range keys {
		m.Register(k)
	}
}

// Unregister removes key if present. If the removed key was the current
// selection, the ring is left with no selection; the caller must
// explicitly re-focus.
func (m *FocusManager[K]) Unregister(key K) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			switch {
			case m.current == i:
				m.current = -1
			case m.current > i:
				m.current--
			}
			return
		}
	}
}

// Next advances the cursor by one with wraparound (last to first).
// From no selection it selects the first registered key.
// No-op on an empty ring.
func (m *FocusManager[K]) Next() {
	if len(m.keys) == 0 {
		return
	}
	if m.current < 0 {
		m.current = 0
		return
	}
	m.current = (m.current + 1) % len(m.keys)
}

// Prev moves the cursor back by one with wraparound (first to last).
// From no selection it selects the last registered key.
// No-op on an empty ring.
func (m *FocusManager[K]) Prev() {
	if len(m.keys) == 0 {
		return
	}
	if m.current < 0 {
		m.current = len(m.keys) - 1
		return
	}
	m.current = (m.current + len(m.keys) - 1) % len(m.keys)
}

// Focus sets the cursor to key. No-op if key is not registered.
func (m *FocusManager[K]) Focus(key K) {
	for i, k := range m.keys {
		if k == key {
			m.current = i
			return
		}
	}
}

// FocusIndex sets the cursor by position. No-op if out of bounds.
func (m *FocusManager[K]) FocusIndex(i int) {
	if i >= 0 && i < len(m.keys) {
		m.current = i
	}
}

// First focuses the first registered key, if any.
func (m *FocusManager[K]) First() {
	if len(m.keys) > 0 {
		m.current = 0
	}
}

// Last focuses the last registered key, if any.
func (m *FocusManager[K]) Last() {
	if len(m.keys) > 0 {
		m.current = len(m.keys) - 1
	}
}

// Unfocus clears the selection. Registered keys are unaffected.
func (m *FocusManager[K]) Unfocus() {
	m.current = -1
}

// Current returns the selected key, or false when nothing is selected.
func (m *FocusManager[K]) Current() (K, bool) {
	if m.current < 0 || m.current >= len(m.keys) {
		var zero K
		return zero, false
	}
	return m.keys[m.current], true
}

// CurrentIndex returns the cursor position, or -1 when nothing is selected.
func (m *FocusManager[K]) CurrentIndex() int {
	return m.current
}

// IsFocused reports whether key equals the current selection.
func (m *FocusManager[K]) IsFocused(key K) bool {
	cur, ok := m.Current()
	return ok && cur == key
}

// HasFocus reports whether any key is selected.
func (m *FocusManager[K]) HasFocus() bool {
	return m.current >= 0
}

// Len returns the number of registered keys.
func (m *FocusManager[K]) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the ring has no keys.
func (m *FocusManager[K]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Keys returns the registered keys in tab order. The slice is shared;
// callers must not mutate it.
func (m *FocusManager[K]) Keys() []K {
	return m.keys
}

// Clear removes all keys and the selection.
func (m *FocusManager[K]) Clear() {
	m.keys = m.keys[:0]
	m.current = -1
}
