package interact

// Rect is an axis-aligned rectangle in terminal cell coordinates.
// Right and bottom edges are exclusive; a zero-size rect contains nothing.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClickRegion pairs a rectangle with the opaque action value returned when
// a click lands inside it. Regions carry no identity beyond their position
// in the registry's sequence.
type ClickRegion[A any] struct {
	Area   Rect
	Action A
}

// ClickRegionRegistry resolves a screen coordinate to the action of the
// topmost region containing it. The registry is rebuilt from empty exactly
// once per render frame: the owning loop calls Clear before the first
// Register of a frame, widgets register in paint order as they render, and
// HandleClick resolves events dispatched after the render pass.
//
// Querying a registry that still holds the previous frame's regions is a
// caller discipline bug the registry cannot detect; it is a documented
// precondition rather than a runtime check.
type ClickRegionRegistry[A any] struct {
	regions []ClickRegion[A]
}

// NewClickRegionRegistry creates an empty registry.
func NewClickRegionRegistry[A any]() *ClickRegionRegistry[A] {
	return &ClickRegionRegistry[A]{}
}

// Clear empties the registry. Call once at the start of each frame before
// any Register.
func (c *ClickRegionRegistry[A]) Clear() {
	c.regions = c.regions[:0]
}

// Register appends a region. Append order must equal paint order: widgets
// drawn later (popups, dropdowns, menus) register later and take precedence
// over anything they cover.
func (c *ClickRegionRegistry[A]) Register(area Rect, action A) {
	c.regions = append(c.regions, ClickRegion[A]{Area: area, Action: action})
}

// HandleClick returns the action of the last-registered region containing
// (x, y). Last match wins: a later registration is visually on top and must
// intercept clicks even when an earlier, now-covered region also contains
// the point. A click outside every region returns false; that is a normal
// outcome, not an error.
func (c *ClickRegionRegistry[A]) HandleClick(x, y int) (A, bool) {
	for i := len(c.regions) - 1; i >= 0; i-- {
		if c.regions[i].Area.Contains(x, y) {
			return c.regions[i].Action, true
		}
	}
	var zero A
	return zero, false
}

// Regions returns the registered regions in paint order. The slice is
// shared; callers must not mutate it.
func (c *ClickRegionRegistry[A]) Regions() []ClickRegion[A] {
	return c.regions
}

// Len returns the number of registered regions.
func (c *ClickRegionRegistry[A]) Len() int {
	return len(c.regions)
}

// IsEmpty reports whether no regions are registered.
func (c *ClickRegionRegistry[A]) IsEmpty() bool {
	return len(c.regions) == 0
}
