package tui

import "github.com/gdamore/tcell/v2"

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// SpinnerState is a frame counter advanced once per animation tick.
type SpinnerState struct {
	frame int
}

// Tick advances the animation by one frame.
func (sp *SpinnerState) Tick() { sp.frame++ }

// Spinner draws the current spinner glyph at (x, y).
func (s Surface) Spinner(x, y int, st *SpinnerState, style tcell.Style) {
	s.SetCell(x, y, spinnerFrames[st.frame%len(spinnerFrames)], style)
}
