// Package interact provides the interaction core shared by all tuikit
// widgets: keyboard focus traversal, per-frame mouse hit-testing, and the
// capability contracts that let heterogeneous widget state types take part
// in both without inheritance.
//
// The package renders nothing and owns no terminal state. It operates purely
// on opaque keys, rectangles, and action values supplied by the owning
// application through three narrow contracts:
//
//   - Focusable: a widget exposes get/set of its focused flag
//   - Clickable: a widget exposes the rectangle it wants hit-tested
//   - Container: a composite widget forwards traversal into a nested ring
//
// Control flow per frame:
//
//	registry.Clear()                     // once, before any Register
//	// widgets render and register regions/keys in paint order
//	// one input event is dispatched:
//	//   keyboard -> ring.Next/Prev/Focus, or container delegation
//	//   mouse    -> registry.HandleClick
//	// widget state mutates, next frame repeats
//
// Everything is single-threaded and synchronous: both the focus ring and the
// click registry belong to the application's event loop goroutine, and every
// operation completes before returning. Misuse (clicking empty space,
// focusing an unregistered key, traversing an empty ring) is a normal no-op
// outcome, never an error or panic.
package interact
