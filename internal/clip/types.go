// Package clip provides integer rectangle clipping for the compositor.
//
// Every function here is pure: it takes the requested region and the limits
// it must respect, and returns the surviving region plus a flag reporting
// whether anything is left to draw. Callers never mutate pixels before the
// flag has been checked.
package clip

// Rect is an integer rectangle in pixel coordinates.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// IsEmpty returns true if the rectangle has no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rectangle if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Unset reports whether r is the "no clip" sentinel: a negative width or
// height means the clip covers the whole buffer.
func (r Rect) Unset() bool {
	return r.W < 0 || r.H < 0
}

// Effective resolves a stored clip rectangle against a buffer of the given
// size. The sentinel resolves to the full buffer; anything else is
// intersected with the buffer bounds.
func Effective(c Rect, width, height int) Rect {
	bounds := Rect{W: width, H: height}
	if c.Unset() {
		return bounds
	}
	return c.Intersect(bounds)
}
