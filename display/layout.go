// Package display maps a fixed-size frame buffer onto a resizable window.
//
// The frame is scaled by the largest integer factor that fits the window
// and centred; the rest of the window is black.
package display

import "image"

// Viewport is where a frame lands inside a window.
type Viewport struct {
	// Scale is the integer magnification, at least 1.
	Scale int
	// Rect is the scaled frame in window coordinates. It may extend past
	// the window when the window is smaller than the frame.
	Rect image.Rectangle
	// Frame is the frame size.
	Frame image.Point
}

// Layout returns the viewport for a frameW×frameH frame in a winW×winH
// window.
func Layout(frameW, frameH, winW, winH int) Viewport {
	scale := 1
	if frameW > 0 && frameH > 0 {
		scale = max(1, min(winW/frameW, winH/frameH))
	}
	w, h := frameW*scale, frameH*scale
	x, y := (winW-w)/2, (winH-h)/2
	return Viewport{
		Scale: scale,
		Rect:  image.Rect(x, y, x+w, y+h),
		Frame: image.Pt(frameW, frameH),
	}
}

// ToFrame maps window coordinates to frame coordinates. It reports false
// when (wx, wy) lies outside the presented frame.
func (v Viewport) ToFrame(wx, wy int) (x, y int, ok bool) {
	p := image.Pt(wx, wy)
	if !p.In(v.Rect) {
		return 0, 0, false
	}
	rel := p.Sub(v.Rect.Min)
	return rel.X * v.Frame.X / v.Rect.Dx(), rel.Y * v.Frame.Y / v.Rect.Dy(), true
}
