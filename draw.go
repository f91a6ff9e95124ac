package twig

import (
	"math"

	"github.com/gogpu/twig/internal/blend"
	"github.com/gogpu/twig/internal/clip"
	"github.com/gogpu/twig/internal/raster"
)

// Drawing primitives.
//
// Every primitive clips against the effective clip (stored clip ∩ bitmap
// bounds) and silently does nothing for coordinates that fall outside it.
//
// Solid-colour primitives (Plot, Line, Rect, RectLine) weight the blend by
// Expand(alpha)². Image primitives (BlitTint, BlitAlpha and text) weight by
// Expand(tint.A) * Expand(src.A). The two forms give different results for
// the same nominal alpha and are not interchangeable.

// Plot blends c into the pixel at (x, y).
func (b *Bitmap) Plot(x, y int, c Color) {
	if !b.effectiveClip().Contains(x, y) {
		return
	}
	b.blendSolid((y*b.width+x)*4, c, blend.Squared(c.A))
}

// Line draws a 1-pixel Bresenham line from (x0, y0) to (x1, y1), both
// endpoints included.
func (b *Bitmap) Line(x0, y0, x1, y1 int, c Color) {
	raster.Line(x0, y0, x1, y1, func(x, y int) {
		b.Plot(x, y, c)
	})
}

// Rect fills the interior of the w×h rectangle at (x, y): the area
// (x+1, y+1, w-2, h-2). The outermost ring of pixels is left unpainted so
// that Rect and RectLine with the same arguments frame each other.
func (b *Bitmap) Rect(x, y, w, h int, c Color) {
	r, ok := clip.Fill(b.effectiveClip(), clip.NewRect(x+1, y+1, w-2, h-2))
	if !ok {
		return
	}

	weight := blend.Squared(c.A)
	stride := b.width * 4
	row := (r.Y*b.width + r.X) * 4
	for range r.H {
		for i := row; i < row+r.W*4; i += 4 {
			b.blendSolid(i, c, weight)
		}
		row += stride
	}
}

// RectLine draws the outline of the w×h rectangle at (x, y).
//
// A width of 1 draws the vertical line (x, y)-(x, y+h); a height of 1 draws
// the horizontal line (x, y)-(x+w, y). Otherwise the four sides cover the
// perimeter exactly once, so translucent outlines have no darker corners.
func (b *Bitmap) RectLine(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}

	switch {
	case w == 1:
		b.Line(x, y, x, y+h, c)
	case h == 1:
		b.Line(x, y, x+w, y, c)
	default:
		x1 := x + w - 1
		y1 := y + h - 1
		b.Line(x, y, x1, y, c)
		b.Line(x1, y+1, x1, y1, c)
		b.Line(x1-1, y1, x, y1, c)
		if h > 2 {
			b.Line(x, y1-1, x, y+1, c)
		}
	}
}

// Blit copies the w×h block at (sx, sy) in src to (dx, dy) in b, without
// blending. The block is clipped against b's effective clip and src's
// bounds.
func (b *Bitmap) Blit(src *Bitmap, dx, dy, sx, sy, w, h int) {
	r, ok := b.clipBlit(src, dx, dy, sx, sy, w, h)
	if !ok {
		return
	}

	n := r.W * 4
	si := (r.SY*src.width + r.SX) * 4
	di := (r.DY*b.width + r.DX) * 4
	for range r.H {
		copy(b.data[di:di+n], src.data[si:si+n])
		si += src.width * 4
		di += b.width * 4
	}
}

// BlitTint blends the w×h block at (sx, sy) in src onto b at (dx, dy).
//
// Each source colour channel is scaled by (Expand(tint channel) * c) >> 8
// and the blend weight is Expand(tint.A) * Expand(src alpha). The alpha
// channel blends toward the unscaled source alpha, subject to the blend
// mode.
func (b *Bitmap) BlitTint(src *Bitmap, dx, dy, sx, sy, w, h int, tint Color) {
	r, ok := b.clipBlit(src, dx, dy, sx, sy, w, h)
	if !ok {
		return
	}

	keep := b.mode.keep()
	si := (r.SY*src.width + r.SX) * 4
	di := (r.DY*b.width + r.DX) * 4
	for range r.H {
		s := src.data[si : si+r.W*4]
		d := b.data[di : di+r.W*4]
		for i := 0; i < len(s); i += 4 {
			weight := blend.Product(tint.A, s[i+3])
			d[i+0] = blend.Channel(d[i+0], blend.Scale(s[i+0], tint.R), weight)
			d[i+1] = blend.Channel(d[i+1], blend.Scale(s[i+1], tint.G), weight)
			d[i+2] = blend.Channel(d[i+2], blend.Scale(s[i+2], tint.B), weight)
			d[i+3] = blend.Alpha(d[i+3], s[i+3], weight, keep)
		}
		si += src.width * 4
		di += b.width * 4
	}
}

// BlitAlpha blends src onto b with a uniform opacity in [0, 1]; values
// outside the range are clamped. It is BlitTint with an opaque-white tint
// whose alpha is round(alpha*255).
func (b *Bitmap) BlitAlpha(src *Bitmap, dx, dy, sx, sy, w, h int, alpha float64) {
	if math.IsNaN(alpha) {
		alpha = 0
	}
	alpha = math.Max(0, math.Min(1, alpha))
	b.BlitTint(src, dx, dy, sx, sy, w, h, White.WithAlpha(uint8(math.Round(alpha*255))))
}

func (b *Bitmap) clipBlit(src *Bitmap, dx, dy, sx, sy, w, h int) (clip.Region, bool) {
	return clip.Blit(b.effectiveClip(), src.width, src.height, clip.Region{
		DX: dx, DY: dy, SX: sx, SY: sy, W: w, H: h,
	})
}

// blendSolid applies the solid-colour blend to the pixel at byte offset i.
func (b *Bitmap) blendSolid(i int, c Color, weight int32) {
	p := b.data[i : i+4 : i+4]
	p[0] = blend.Channel(p[0], c.R, weight)
	p[1] = blend.Channel(p[1], c.G, weight)
	p[2] = blend.Channel(p[2], c.B, weight)
	p[3] = blend.Alpha(p[3], c.A, weight, b.mode.keep())
}
