package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tuikit/interact"
)

func TestListNavigation(t *testing.T) {
	st := NewListState([]string{"alpha", "beta", "gamma"})

	if v, ok := st.Value(); !ok || v != "alpha" {
		t.Fatalf("initial Value() = %q, %v; want alpha", v, ok)
	}

	st.HandleKey(keyEv(tcell.KeyDown, 0, tcell.ModNone))
	if v, _ := st.Value(); v != "beta" {
		t.Errorf("after down Value() = %q, want beta", v)
	}

	// Selection clamps at the edges instead of wrapping.
	st.HandleKey(keyEv(tcell.KeyDown, 0, tcell.ModNone))
	st.HandleKey(keyEv(tcell.KeyDown, 0, tcell.ModNone))
	if v, _ := st.Value(); v != "gamma" {
		t.Errorf("down past end Value() = %q, want gamma", v)
	}

	st.HandleKey(keyEv(tcell.KeyHome, 0, tcell.ModNone))
	if st.Selected != 0 {
		t.Errorf("Home selected %d, want 0", st.Selected)
	}
	st.HandleKey(keyEv(tcell.KeyUp, 0, tcell.ModNone))
	if st.Selected != 0 {
		t.Errorf("up past start selected %d, want 0", st.Selected)
	}
	st.HandleKey(keyEv(tcell.KeyEnd, 0, tcell.ModNone))
	if st.Selected != 2 {
		t.Errorf("End selected %d, want 2", st.Selected)
	}
}

func TestListFuzzyFilter(t *testing.T) {
	st := NewListState([]string{"main.go", "main_test.go", "README.md", "Makefile"})

	st.SetFilter("main")
	if st.VisibleLen() != 2 {
		t.Fatalf("VisibleLen() = %d, want 2", st.VisibleLen())
	}
	if v, ok := st.Value(); !ok || v == "README.md" || v == "Makefile" {
		t.Errorf("filtered Value() = %q, %v", v, ok)
	}

	st.SetFilter("zzz")
	if st.VisibleLen() != 0 {
		t.Errorf("VisibleLen() = %d, want 0", st.VisibleLen())
	}
	if _, ok := st.Value(); ok {
		t.Error("Value() should report no selection with empty filter result")
	}

	st.SetFilter("")
	if st.VisibleLen() != 4 {
		t.Errorf("VisibleLen() after clearing filter = %d, want 4", st.VisibleLen())
	}
	if st.Selected != 0 {
		t.Errorf("Selected = %d, want 0 after filter reset", st.Selected)
	}
}

func TestListEmpty(t *testing.T) {
	st := NewListState(nil)

	if _, ok := st.Value(); ok {
		t.Error("empty list should have no value")
	}
	st.MoveDown()
	st.MoveUp()
	if st.Selected != -1 {
		t.Errorf("Selected = %d, want -1", st.Selected)
	}
}

func TestListRenderRowBounds(t *testing.T) {
	scr := newTestScreen(t, 20, 10)
	s := NewSurface(scr, 20, 10)
	st := NewListState([]string{"one", "two", "three"})

	rows := s.Sub(2, 3, 15, 5).List(st, ListOpts{})
	if len(rows) != 3 {
		t.Fatalf("rendered %d rows, want 3", len(rows))
	}
	for i, rb := range rows {
		if rb.Row != i {
			t.Errorf("row %d has index %d", i, rb.Row)
		}
		want := interact.NewRect(2, 3+i, 15, 1)
		if rb.Area != want {
			t.Errorf("row %d area = %+v, want %+v", i, rb.Area, want)
		}
	}
}

func TestListScrollKeepsSelectionVisible(t *testing.T) {
	items := make([]string, 20)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	st := NewListState(items)
	st.Select(15)

	scr := newTestScreen(t, 10, 5)
	s := NewSurface(scr, 10, 5)
	rows := s.List(st, ListOpts{})

	found := false
	for _, rb := range rows {
		if rb.Row == 15 {
			found = true
		}
	}
	if !found {
		t.Errorf("selected row 15 not among rendered rows (scroll %d)", st.Scroll)
	}
}

func TestListScrollBy(t *testing.T) {
	st := NewListState([]string{"a", "b", "c", "d"})

	st.ScrollBy(2)
	if st.Scroll != 2 {
		t.Errorf("Scroll = %d, want 2", st.Scroll)
	}
	st.ScrollBy(10)
	if st.Scroll != 3 {
		t.Errorf("Scroll = %d, want 3 (clamped)", st.Scroll)
	}
	st.ScrollBy(-10)
	if st.Scroll != 0 {
		t.Errorf("Scroll = %d, want 0 (clamped)", st.Scroll)
	}
}
