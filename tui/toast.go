package tui

// Severity classifies a toast message for styling.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

var severityIcons = map[Severity]rune{
	SeverityInfo:    'ℹ',
	SeveritySuccess: '✓',
	SeverityWarning: '⚠',
	SeverityError:   '✗',
}

// ToastState manages a transient notification that dismisses itself after
// a number of frames.
type ToastState struct {
	Message    string
	Severity   Severity
	FramesLeft int // -1 = persistent
	visible    bool
}

// Show replaces the current toast. frames=-1 keeps it until Dismiss.
func (t *ToastState) Show(msg string, sev Severity, frames int) {
	t.Message = msg
	t.Severity = sev
	t.FramesLeft = frames
	t.visible = true
}

// Dismiss hides the toast immediately.
func (t *ToastState) Dismiss() { t.visible = false }

// Visible reports whether the toast should render this frame.
func (t *ToastState) Visible() bool { return t.visible }

// Tick counts down the auto-dismiss timer. Returns true on the tick the
// toast disappears.
func (t *ToastState) Tick() bool {
	if !t.visible || t.FramesLeft < 0 {
		return false
	}
	t.FramesLeft--
	if t.FramesLeft <= 0 {
		t.visible = false
		return true
	}
	return false
}

// ToastOpts configures toast rendering.
type ToastOpts struct {
	Theme Theme
}

// Toast renders the notification as a right-aligned single-row bar on the
// last line of the surface.
func (s Surface) Toast(t *ToastState, opts ToastOpts) {
	if !t.visible || s.H < 1 || s.W < 5 {
		return
	}

	th := opts.Theme
	if th == (Theme{}) {
		th = DefaultTheme()
	}
	style := th.Base
	icon := th.Accent
	if t.Severity == SeverityError {
		icon = th.Error
	}

	msg := Truncate(t.Message, s.W-6)
	w := DisplayWidth(msg) + 4
	x := s.W - w - 1
	if x < 0 {
		x = 0
	}
	y := s.H - 1

	for i := 0; i < w; i++ {
		s.SetCell(x+i, y, ' ', style)
	}
	s.SetCell(x+1, y, severityIcons[t.Severity], icon.Bold(true))
	s.Text(x+3, y, msg, style)
}
