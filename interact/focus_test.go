package interact

import "testing"

type ringKey string

const (
	keyA ringKey = "A"
	keyB ringKey = "B"
	keyC ringKey = "C"
)

func newABCRing() *FocusManager[ringKey] {
	m := NewFocusManager[ringKey]()
	m.RegisterAll(keyA, keyB, keyC)
	return m
}

func TestFocusManagerStartsUnselected(t *testing.T) {
	m := newABCRing()
	if m.HasFocus() {
		t.Error("Expected no selection after registration")
	}
	if _, ok := m.Current(); ok {
		t.Error("Current should report no selection")
	}
	if m.Len() != 3 {
		t.Errorf("Expected 3 keys, got %d", m.Len())
	}
}

func TestFocusManagerNextTraversal(t *testing.T) {
	m := newABCRing()

	want := []ringKey{keyA, keyB, keyC, keyA} // wraps last -> first
	for i, w := range want {
		m.Next()
		if cur, _ := m.Current(); cur != w {
			t.Errorf("Next #%d: expected %q, got %q", i+1, w, cur)
		}
	}
}

func TestFocusManagerPrevFromNoSelection(t *testing.T) {
	m := newABCRing()
	m.Prev()
	if cur, _ := m.Current(); cur != keyC {
		t.Errorf("Prev from no selection: expected %q, got %q", keyC, cur)
	}
	m.Prev()
	if cur, _ := m.Current(); cur != keyB {
		t.Errorf("Expected %q, got %q", keyB, cur)
	}
}

func TestFocusManagerDuplicateRegister(t *testing.T) {
	m := newABCRing()
	m.Focus(keyB)
	m.Register(keyA)

	if m.Len() != 3 {
		t.Errorf("Duplicate register changed length: %d", m.Len())
	}
	keys := m.Keys()
	for i, w := range []ringKey{keyA, keyB, keyC} {
		if keys[i] != w {
			t.Errorf("Order changed at %d: expected %q, got %q", i, w, keys[i])
		}
	}
	if cur, _ := m.Current(); cur != keyB {
		t.Errorf("Duplicate register moved selection to %q", cur)
	}
}

func TestFocusManagerFullCycleRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		steps func(m *FocusManager[ringKey])
	}{
		{"Three next", func(m *FocusManager[ringKey]) { m.Next(); m.Next(); m.Next() }},
		{"Three prev", func(m *FocusManager[ringKey]) { m.Prev(); m.Prev(); m.Prev() }},
		{"Six mixed", func(m *FocusManager[ringKey]) {
			// Net displacement zero: +2 -2 +1 -1.
			m.Next()
			m.Next()
			m.Prev()
			m.Prev()
			m.Next()
			m.Prev()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newABCRing()
			m.Focus(keyB)
			tt.steps(m)
			if cur, _ := m.Current(); cur != keyB {
				t.Errorf("Full cycle did not return to %q, got %q", keyB, cur)
			}
		})
	}
}

func TestFocusManagerFocusUnknownKey(t *testing.T) {
	m := newABCRing()
	m.Focus(keyB)
	m.Focus(ringKey("missing"))
	if cur, _ := m.Current(); cur != keyB {
		t.Errorf("Focus on unknown key moved selection to %q", cur)
	}
}

func TestFocusManagerUnregister(t *testing.T) {
	t.Run("Removing current clears selection", func(t *testing.T) {
		m := newABCRing()
		m.Focus(keyB)
		m.Unregister(keyB)
		if m.HasFocus() {
			t.Error("Expected no selection after unregistering the current key")
		}
		if m.Len() != 2 {
			t.Errorf("Expected 2 keys, got %d", m.Len())
		}
	})

	t.Run("Removing earlier key keeps selection", func(t *testing.T) {
		m := newABCRing()
		m.Focus(keyC)
		m.Unregister(keyA)
		if cur, _ := m.Current(); cur != keyC {
			t.Errorf("Expected %q to stay focused, got %q", keyC, cur)
		}
	})

	t.Run("Removing absent key is a no-op", func(t *testing.T) {
		m := newABCRing()
		m.Focus(keyA)
		m.Unregister(ringKey("missing"))
		if m.Len() != 3 {
			t.Errorf("Expected 3 keys, got %d", m.Len())
		}
		if !m.IsFocused(keyA) {
			t.Error("Selection changed")
		}
	})
}

func TestFocusManagerEmptyRing(t *testing.T) {
	m := NewFocusManager[int]()
	m.Next()
	m.Prev()
	m.First()
	m.Last()
	if m.HasFocus() {
		t.Error("Empty ring should never gain a selection")
	}
	if !m.IsEmpty() {
		t.Error("Expected empty ring")
	}
}

func TestFocusManagerIsFocused(t *testing.T) {
	m := newABCRing()
	m.Next()
	if !m.IsFocused(keyA) {
		t.Error("Expected A focused")
	}
	if m.IsFocused(keyB) {
		t.Error("B should not be focused")
	}
}

func TestFocusManagerFirstLastUnfocus(t *testing.T) {
	m := newABCRing()
	m.Last()
	if cur, _ := m.Current(); cur != keyC {
		t.Errorf("Last: expected %q, got %q", keyC, cur)
	}
	m.First()
	if cur, _ := m.Current(); cur != keyA {
		t.Errorf("First: expected %q, got %q", keyA, cur)
	}
	m.Unfocus()
	if m.HasFocus() {
		t.Error("Unfocus left a selection")
	}
	// Next after Unfocus starts over from the first key.
	m.Next()
	if cur, _ := m.Current(); cur != keyA {
		t.Errorf("Next after Unfocus: expected %q, got %q", keyA, cur)
	}
}

func TestFocusManagerIntKeys(t *testing.T) {
	m := NewFocusManager[int]()
	m.RegisterAll(0, 1, 2, 3, 4)
	m.Next()
	m.Next()
	if cur, _ := m.Current(); cur != 1 {
		t.Errorf("Expected 1, got %d", cur)
	}
	if m.CurrentIndex() != 1 {
		t.Errorf("Expected index 1, got %d", m.CurrentIndex())
	}
}
