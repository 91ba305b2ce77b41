package model

// Bounds represents a layer's tile-space extent. Left/Top are inclusive,
// Right/Bottom exclusive. Bounds are distinct from a layer's X/Y placement
// offset, which is applied only on extraction.
type Bounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewBounds creates bounds from the two corner coordinates.
func NewBounds(left, top, right, bottom int) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent. Width is always derived from the
// edges, never stored independently.
func (b Bounds) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() int {
	return b.Bottom - b.Top
}

// Empty reports whether the bounds enclose no pixels.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest bounds containing both b and other.
// If b is empty the result is other, and vice versa.
func (b Bounds) Union(other Bounds) Bounds {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	u := b
	if other.Left < u.Left {
		u.Left = other.Left
	}
	if other.Top < u.Top {
		u.Top = other.Top
	}
	if other.Right > u.Right {
		u.Right = other.Right
	}
	if other.Bottom > u.Bottom {
		u.Bottom = other.Bottom
	}
	return u
}

// Translate returns the bounds shifted by (dx, dy).
func (b Bounds) Translate(dx, dy int) Bounds {
	return Bounds{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// AsArray returns the edges as [left, top, right, bottom]. Provided for
// callers that want positional access; the named fields are authoritative.
func (b Bounds) AsArray() [4]int {
	return [4]int{b.Left, b.Top, b.Right, b.Bottom}
}
