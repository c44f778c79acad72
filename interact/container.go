package interact

// BoundaryPolicy selects what happens when traversal runs past the edge of
// a container's child ring. The source composites disagree on this (a
// dropdown wraps, a dialog tabs out into the next screen-level widget), so
// it is a per-container construction-time choice rather than a global rule.
type BoundaryPolicy uint8

const (
	// BoundaryWrap keeps traversal inside the container: past the last
	// child focus wraps to the first (closed composite, e.g. a dropdown).
	BoundaryWrap BoundaryPolicy = iota
	// BoundaryBubble hands traversal back to the parent ring when the child
	// ring's edge is crossed (open composite, e.g. a tab-through dialog).
	BoundaryBubble
)

// FocusState describes where focus sits within a container.
type FocusState uint8

const (
	// Unfocused: neither the container's chrome nor any child has focus.
	Unfocused FocusState = iota
	// SelfFocused: the container's own chrome (border, title) has focus
	// but no child does.
	SelfFocused
	// ChildFocused: one child of the nested ring has focus.
	ChildFocused
)

// ContainerFocus nests a child focus ring below a parent ring. The parent
// ring holds one key representing the container; while that key is current,
// the application forwards Next/Prev/Esc here and the container delegates
// into its children until the boundary is reached.
//
// Children are addressed by index in registration order. They remain
// registered when the container loses focus; only the cursor clears.
type ContainerFocus struct {
	children *FocusManager[int]
	policy   BoundaryPolicy
	chrome   bool // container has its own focusable chrome (SelfFocused state)
	self     bool // chrome currently holds focus
}

// NewContainerFocus creates delegation state for a container with the given
// number of children. chrome enables the SelfFocused state; containers
// without distinct chrome forward initial focus straight to child 0 and Esc
// leaves them directly.
func NewContainerFocus(children int, policy BoundaryPolicy, chrome bool) *ContainerFocus {
	c := &ContainerFocus{
		children: NewFocusManager[int](),
		policy:   policy,
		chrome:   chrome,
	}
	for i := 0; i < children; i++ {
		c.children.Register(i)
	}
	return c
}

// AddChild appends one child to the ring and returns its index.
func (c *ContainerFocus) AddChild() int {
	i := c.children.Len()
	c.children.Register(i)
	return i
}

// Len returns the number of children.
func (c *ContainerFocus) Len() int {
	return c.children.Len()
}

// Focus gives the container focus: chrome first when it has any, otherwise
// its first child.
func (c *ContainerFocus) Focus() {
	if c.chrome || c.children.IsEmpty() {
		c.self = true
		c.children.Unfocus()
		return
	}
	c.self = false
	c.children.First()
}

// Blur clears all focus inside the container. Children stay registered.
func (c *ContainerFocus) Blur() {
	c.self = false
	c.children.Unfocus()
}

// FocusChild moves focus to the child at index i. No-op if out of bounds.
func (c *ContainerFocus) FocusChild(i int) {
	if i >= 0 && i < c.children.Len() {
		c.self = false
		c.children.FocusIndex(i)
	}
}

// Next advances focus forward through chrome then children. It returns
// false when the boundary policy bubbled focus out of the container; the
// parent ring should then advance past the container's key.
func (c *ContainerFocus) Next() bool {
	switch state, _ := c.State(); state {
	case Unfocused:
		c.Focus()
		return true
	case SelfFocused:
		if !c.children.IsEmpty() {
			c.self = false
			c.children.First()
			return true
		}
		if c.policy == BoundaryWrap {
			return true
		}
		c.Blur()
		return false
	default: // ChildFocused
		if c.children.CurrentIndex() == c.children.Len()-1 {
			if c.policy == BoundaryBubble {
				c.Blur()
				return false
			}
			// Wrap: include chrome in the cycle when present.
			if c.chrome {
				c.self = true
				c.children.Unfocus()
			} else {
				c.children.First()
			}
			return true
		}
		c.children.Next()
		return true
	}
}

// Prev advances focus backward. It returns false when focus bubbled out.
func (c *ContainerFocus) Prev() bool {
	switch state, _ := c.State(); state {
	case Unfocused:
		// Entering from behind lands on the last child.
		if !c.children.IsEmpty() {
			c.children.Last()
		} else {
			c.self = true
		}
		return true
	case SelfFocused:
		if c.policy == BoundaryBubble {
			c.Blur()
			return false
		}
		if !c.children.IsEmpty() {
			c.self = false
			c.children.Last()
		}
		return true
	default: // ChildFocused
		if c.children.CurrentIndex() == 0 {
			if c.chrome {
				c.self = true
				c.children.Unfocus()
				return true
			}
			if c.policy == BoundaryBubble {
				c.Blur()
				return false
			}
			c.children.Last()
			return true
		}
		c.children.Prev()
		return true
	}
}

// Esc steps focus outward: ChildFocused to SelfFocused when the container
// has chrome, then to Unfocused. It returns false once the container is
// unfocused, handing control back to the parent ring.
func (c *ContainerFocus) Esc() bool {
	state, _ := c.State()
	if state == ChildFocused && c.chrome {
		c.self = true
		c.children.Unfocus()
		return true
	}
	c.Blur()
	return false
}

// State returns the current focus state and, for ChildFocused, the index of
// the focused child (-1 otherwise).
func (c *ContainerFocus) State() (FocusState, int) {
	if i := c.children.CurrentIndex(); i >= 0 {
		return ChildFocused, i
	}
	if c.self {
		return SelfFocused, -1
	}
	return Unfocused, -1
}

// Child returns the focused child index, or -1.
func (c *ContainerFocus) Child() int {
	_, i := c.State()
	return i
}

// SetFocused implements Focusable so a container can sit in a parent ring
// like any leaf widget.
func (c *ContainerFocus) SetFocused(focused bool) {
	if focused {
		c.Focus()
	} else {
		c.Blur()
	}
}

// Focused reports whether chrome or any child holds focus.
func (c *ContainerFocus) Focused() bool {
	state, _ := c.State()
	return state != Unfocused
}
