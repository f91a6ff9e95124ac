package clip

// Region describes a copy of a W×H block from (SX, SY) in a source buffer
// to (DX, DY) in a destination buffer.
type Region struct {
	DX, DY int
	SX, SY int
	W, H   int
}

// Blit clips a copy region on four fronts at once: the destination clip c
// (already resolved with Effective), and the source bounds [0,srcW)×[0,srcH).
//
// Whenever one side's origin is moved right or down by D, the other side's
// origin moves by the same D and the size shrinks by D, so the pixel
// correspondence between source and destination is preserved.
//
// The returned bool is false when nothing is left to copy.
func Blit(c Rect, srcW, srcH int, r Region) (Region, bool) {
	// leading edges: destination clip origin, then source origin
	r.DX, r.SX, r.W = lead(c.X, r.DX, r.SX, r.W)
	r.DY, r.SY, r.H = lead(c.Y, r.DY, r.SY, r.H)
	r.SX, r.DX, r.W = lead(0, r.SX, r.DX, r.W)
	r.SY, r.DY, r.H = lead(0, r.SY, r.DY, r.H)

	// trailing edges
	r.W = trail(r.DX, c.Right(), r.W)
	r.H = trail(r.DY, c.Bottom(), r.H)
	r.W = trail(r.SX, srcW, r.W)
	r.H = trail(r.SY, srcH, r.H)

	if r.W <= 0 || r.H <= 0 {
		return Region{}, false
	}
	return r, true
}

// Fill clips a fill rectangle against the destination clip c.
func Fill(c Rect, r Rect) (Rect, bool) {
	r = c.Intersect(r)
	if r.IsEmpty() {
		return Rect{}, false
	}
	return r, true
}

// lead moves x up to limit, shifting the paired coordinate other and
// shrinking size by the same amount.
func lead(limit, x, other, size int) (int, int, int) {
	if x < limit {
		d := limit - x
		size -= d
		other += d
		x += d
	}
	return x, other, size
}

// trail shrinks size so that x+size does not pass limit.
func trail(x, limit, size int) int {
	if x+size > limit {
		size = limit - x
	}
	return size
}
