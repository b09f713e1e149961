package habitat

// Rect is an axis-aligned rectangle in surface units, origin at top-left.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles share interior area.
// Touching edges do not count as overlap: modules may abut.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.X || o.Right() <= r.X || r.Bottom() <= o.Y || o.Bottom() <= r.Y)
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is the rectangular placeable surface. It is owned by whatever
// measures the viewport; the core reads it fresh on every call and never
// caches it.
type Bounds struct {
	Width, Height float64
}

// FitsWithin reports whether a rectangle lies entirely inside the bounds.
// A rectangle flush with an edge fits.
func (b Bounds) FitsWithin(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= b.Width && r.Bottom() <= b.Height
}
