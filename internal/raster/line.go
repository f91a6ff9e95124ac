// Package raster provides integer rasterization for 1-pixel-wide lines.
package raster

// Line walks the Bresenham line from (x0, y0) to (x1, y1) and calls plot for
// every pixel on it, both endpoints included. A zero-length line plots a
// single pixel. All eight octants step through the same error term, so a
// line and its reverse cover the same number of pixels.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
