package state

// Cursor tracks a position over a fixed-length row of cells together with a
// horizontal viewport offset, so wide arrays stay navigable on narrow
// terminals. Movement methods report whether the position changed.
type Cursor struct {
	Length         int
	Pos            int
	ViewportOffset int
}

// NewCursor creates a cursor over length cells, positioned at the first.
func NewCursor(length int) *Cursor {
	return &Cursor{Length: length}
}

// Resize adjusts the cursor to a new cell count, clamping the position.
func (c *Cursor) Resize(length int) {
	c.Length = length
	c.clamp()
}

// Left moves one cell toward the start.
func (c *Cursor) Left() bool {
	return c.moveBy(-1)
}

// Right moves one cell toward the end.
func (c *Cursor) Right() bool {
	return c.moveBy(1)
}

// Home moves to the first cell.
func (c *Cursor) Home() bool {
	if c.Length == 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Pos = 0
	return old != c.Pos
}

// End moves to the last cell.
func (c *Cursor) End() bool {
	if c.Length == 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Pos = c.Length - 1
	return old != c.Pos
}

func (c *Cursor) moveBy(delta int) bool {
	if c.Length == 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Pos += delta
	c.clamp()
	return c.Pos != old
}

func (c *Cursor) clamp() {
	if c.Pos < 0 {
		c.Pos = 0
	}
	if c.Length == 0 {
		c.Pos = 0
		return
	}
	if c.Pos >= c.Length {
		c.Pos = c.Length - 1
	}
}

// EnsureVisible adjusts the viewport offset so the cursor stays within a
// window of maxVisible cells.
func (c *Cursor) EnsureVisible(maxVisible int) {
	if c.Length == 0 {
		c.Pos = 0
		c.ViewportOffset = 0
		return
	}
	c.clamp()
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := c.Length - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.ViewportOffset > maxOffset {
		c.ViewportOffset = maxOffset
	}
	if c.ViewportOffset < 0 {
		c.ViewportOffset = 0
	}
	if c.Pos < c.ViewportOffset {
		c.ViewportOffset = c.Pos
	}
	upper := c.ViewportOffset + maxVisible - 1
	if c.Pos > upper {
		c.ViewportOffset = c.Pos - maxVisible + 1
		if c.ViewportOffset < 0 {
			c.ViewportOffset = 0
		}
		if c.ViewportOffset > maxOffset {
			c.ViewportOffset = maxOffset
		}
	}
}
