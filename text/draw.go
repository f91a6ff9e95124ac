package text

import "github.com/gogpu/twig"

// Draw renders s onto dst with its top-left corner at (x, y).
//
// Each code point is blitted from the atlas with dst.BlitTint tinted by c,
// then the pen advances by the glyph width. '\r' is ignored and '\n' moves
// the pen to the start x of the next line.
func Draw(dst *twig.Bitmap, f *Font, x, y int, c twig.Color, s string) {
	startX := x
	lineH := f.LineHeight()
	for len(s) > 0 {
		r, size := DecodeRuneInString(s)
		s = s[size:]
		switch r {
		case '\r':
			continue
		case '\n':
			x = startX
			y += lineH
			continue
		}
		g := f.Glyph(r)
		dst.BlitTint(f.atlas, x, y, g.X, g.Y, g.W, g.H, c)
		x += g.W
	}
}

// Height returns the height in pixels of s: one line height per line.
// A trailing newline does not start a new line, and the empty string is one
// line high.
func (f *Font) Height(s string) int {
	lineH := f.LineHeight()
	h := lineH
	for len(s) > 0 {
		r, size := DecodeRuneInString(s)
		s = s[size:]
		if r == '\n' && len(s) > 0 {
			h += lineH
		}
	}
	return h
}

// Width returns the advance in pixels of the widest line of s.
func (f *Font) Width(s string) int {
	var w, line int
	for len(s) > 0 {
		r, size := DecodeRuneInString(s)
		s = s[size:]
		switch r {
		case '\r':
		case '\n':
			line = 0
		default:
			line += f.Glyph(r).W
			w = max(w, line)
		}
	}
	return w
}

// Measure returns Width(s) and Height(s).
func (f *Font) Measure(s string) (w, h int) {
	return f.Width(s), f.Height(s)
}
