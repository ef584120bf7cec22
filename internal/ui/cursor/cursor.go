// Package cursor provides the optional, wrapping cursor shared by list and table controllers.
package cursor

// Cursor holds an optional position in a list.
// The list length is passed to the navigation methods rather than stored,
// since it can change between calls.
type Cursor struct {
	pos   int  // Current position (0-indexed), meaningful only when valid
	valid bool // Whether a position is set
}

// New creates a cursor with no position.
func New() Cursor {
	return Cursor{}
}

// At creates a cursor positioned at pos.
func At(pos int) Cursor {
	return Cursor{pos: pos, valid: true}
}

// Selected returns the current position and whether one is set.
func (c Cursor) Selected() (int, bool) {
	return c.pos, c.valid
}

// Index returns the current position and whether one is set.
// It lets a Cursor be passed anywhere a render state is expected.
func (c Cursor) Index() (int, bool) {
	return c.Selected()
}

// Select sets the position unconditionally. Bounds are the caller's concern.
func (c *Cursor) Select(pos int) {
	c.pos = pos
	c.valid = true
}

// Deselect clears the position.
func (c *Cursor) Deselect() {
	c.pos = 0
	c.valid = false
}

// Next moves forward within a list of length listLen, wrapping from the
// last item to the first. An unset cursor lands on 0.
// If listLen is 0, the cursor is cleared.
func (c *Cursor) Next(listLen int) {
	if listLen <= 0 {
		c.Deselect()
		return
	}
	switch {
	case !c.valid:
		c.Select(0)
	case c.pos >= listLen-1:
		c.Select(0)
	default:
		c.Select(c.pos + 1)
	}
}

// Previous moves backward within a list of length listLen, wrapping from the
// first item to the last. An unset cursor lands on 0.
// If listLen is 0, the cursor is cleared.
func (c *Cursor) Previous(listLen int) {
	if listLen <= 0 {
		c.Deselect()
		return
	}
	switch {
	case !c.valid:
		c.Select(0)
	case c.pos <= 0:
		c.Select(listLen - 1)
	default:
		c.Select(c.pos - 1)
	}
}

// Clamp pulls a stale position back inside a list of length listLen.
// Useful after the backing collection shrinks. Returns true if the cursor changed.
func (c *Cursor) Clamp(listLen int) bool {
	if !c.valid {
		return false
	}
	if listLen <= 0 {
		c.Deselect()
		return true
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
