package tui

import "testing"

func TestToastRendersRightAligned(t *testing.T) {
	scr := newTestScreen(t, 30, 3)
	s := NewSurface(scr, 30, 3)
	ts := &ToastState{}
	ts.Show("saved", SeveritySuccess, -1)

	s.Toast(ts, ToastOpts{})
	// Bar is DisplayWidth(msg)+4 wide, one cell off the right edge.
	if got := cellAt(scr, 21, 2); got != '✓' {
		t.Errorf("icon cell = %q, want '✓'", got)
	}
	if got := cellAt(scr, 23, 2); got != 's' {
		t.Errorf("message cell = %q, want 's'", got)
	}
}

func TestToastTickCountsDown(t *testing.T) {
	ts := &ToastState{}
	ts.Show("bye", SeverityInfo, 2)

	if ts.Tick() {
		t.Error("first tick should not dismiss")
	}
	if !ts.Visible() {
		t.Fatal("toast hidden with frames remaining")
	}
	if !ts.Tick() {
		t.Error("second tick should dismiss")
	}
	if ts.Visible() {
		t.Error("toast still visible after countdown")
	}

	ts.Show("keep", SeverityWarning, -1)
	for i := 0; i < 5; i++ {
		if ts.Tick() {
			t.Fatal("persistent toast dismissed by ticking")
		}
	}
	if !ts.Visible() {
		t.Error("persistent toast hidden")
	}
}
