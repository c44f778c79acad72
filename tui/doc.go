// Package tui provides immediate-mode widgets on top of the interact core.
//
// The central abstraction is Surface, a clipped rectangular window onto a
// tcell screen. Widgets are plain state structs drawn by Surface methods;
// the application owns the render loop, redraws everything each frame, and
// feeds input events between frames:
//
//	screen, _ := tcell.NewScreen()
//	regions := interact.NewClickRegionRegistry[string]()
//	ring := interact.NewFocusManager[string]()
//
//	// each frame:
//	regions.Clear()
//	root := tui.NewSurface(screen, w, h)
//	rect := root.Button(2, 1, "Save", saveState, tui.ButtonOpts{})
//	regions.Register(rect, "save")
//	screen.Show()
//
// Interactive widgets return the rectangle they rendered into so the owning
// loop can register it for hit-testing in paint order; stateful widgets
// implement the interact capability contracts (Focusable, Clickable,
// Container) and never depend on each other's concrete types.
package tui
