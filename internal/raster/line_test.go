package raster

import (
	"testing"
)

type Point struct {
	X, Y int
}

// Points collects the pixels of Line into a slice.
func Points(x0, y0, x1, y1 int) []Point {
	var pts []Point
	Line(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

func TestLineSinglePoint(t *testing.T) {
	pts := Points(3, 4, 3, 4)
	if len(pts) != 1 || pts[0] != (Point{3, 4}) {
		t.Errorf("Points(3,4,3,4) = %v, want [{3 4}]", pts)
	}
}

func TestLineAxisAligned(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Point
	}{
		{"right", 0, 0, 3, 0, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"left", 3, 0, 0, 0, []Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"down", 1, 1, 1, 3, []Point{{1, 1}, {1, 2}, {1, 3}}},
		{"up", 1, 3, 1, 1, []Point{{1, 3}, {1, 2}, {1, 1}}},
		{"diagonal", 0, 0, 2, 2, []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"anti-diagonal", 2, 0, 0, 2, []Point{{2, 0}, {1, 1}, {0, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("Points() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Points()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestLineOctants checks every octant: endpoints included, 8-connected
// steps, and a pixel count of max(|dx|,|dy|)+1.
func TestLineOctants(t *testing.T) {
	ends := [][2]int{
		{7, 3}, {3, 7}, {-3, 7}, {-7, 3},
		{-7, -3}, {-3, -7}, {3, -7}, {7, -3},
	}
	for _, e := range ends {
		pts := Points(0, 0, e[0], e[1])
		want := max(abs(e[0]), abs(e[1])) + 1
		if len(pts) != want {
			t.Errorf("Points(0,0,%d,%d) has %d pixels, want %d", e[0], e[1], len(pts), want)
		}
		if pts[0] != (Point{0, 0}) {
			t.Errorf("Points(0,0,%d,%d) starts at %v", e[0], e[1], pts[0])
		}
		if last := pts[len(pts)-1]; last != (Point{e[0], e[1]}) {
			t.Errorf("Points(0,0,%d,%d) ends at %v", e[0], e[1], last)
		}
		for i := 1; i < len(pts); i++ {
			if abs(pts[i].X-pts[i-1].X) > 1 || abs(pts[i].Y-pts[i-1].Y) > 1 {
				t.Errorf("Points(0,0,%d,%d) jumps from %v to %v", e[0], e[1], pts[i-1], pts[i])
			}
		}
	}
}
