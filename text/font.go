package text

import (
	"slices"
	"sort"

	"github.com/gogpu/twig"
	"github.com/pkg/errors"
)

const (
	// NumGlyphs is the number of glyph cells every atlas holds.
	NumGlyphs = 256 - 32

	asciiGlyphs = 96
)

// Glyph is a sub-rectangle of a font atlas and the code point it draws.
type Glyph struct {
	Code rune
	X, Y int
	W, H int
}

// Font is a glyph atlas with its glyph table sorted by code point.
// A Font is immutable after construction and may be shared.
type Font struct {
	atlas    *twig.Bitmap
	glyphs   []Glyph
	fallback Glyph
}

// NewFont scans atlas for NumGlyphs glyph cells.
//
// The colour of pixel (0, 0) is the border colour. Pixels matching its RGB
// (alpha is ignored) and pixels outside the image separate cells. The scan
// walks each row left to right; a non-border pixel starts a glyph whose
// width and height are the runs of non-border pixels to its right and below
// it. When the cursor passes the right edge it wraps to x = 0 and moves down
// by the tallest glyph of the row.
//
// Construction fails with an *AtlasError when the image ends before all
// glyphs are found or when a glyph's height differs from the first one.
func NewFont(atlas *twig.Bitmap) (*Font, error) {
	if atlas == nil {
		return nil, errors.Wrap(ErrFontConstruction, "nil atlas")
	}

	s := newScanner(atlas)
	glyphs := make([]Glyph, NumGlyphs)
	for i := range glyphs {
		if !s.next() {
			return nil, &AtlasError{Index: i, Reason: "atlas ended before all glyphs were found"}
		}
		g := s.glyph(slotRune(i))
		if i > 0 && g.H != glyphs[0].H {
			return nil, &AtlasError{Index: i, Reason: "glyph height differs from the first glyph"}
		}
		glyphs[i] = g
	}

	slices.SortStableFunc(glyphs, func(a, b Glyph) int {
		return int(a.Code - b.Code)
	})

	f := &Font{atlas: atlas, glyphs: glyphs}
	f.fallback = glyphs['?'-32]
	return f, nil
}

// Glyph returns the glyph for r, or the glyph for '?' when the atlas has
// no cell for r.
func (f *Font) Glyph(r rune) Glyph {
	i := sort.Search(len(f.glyphs), func(i int) bool {
		return f.glyphs[i].Code > r
	})
	if i == 0 || f.glyphs[i-1].Code != r {
		return f.fallback
	}
	return f.glyphs[i-1]
}

// Glyphs returns a copy of the glyph table in code point order.
func (f *Font) Glyphs() []Glyph {
	return slices.Clone(f.glyphs)
}

// LineHeight returns the distance between baselines of consecutive lines.
// All glyphs share one height, so this is the height of the fallback glyph.
func (f *Font) LineHeight() int {
	return f.Glyph(0).H
}

// Atlas returns the atlas bitmap. Callers must not draw into it.
func (f *Font) Atlas() *twig.Bitmap {
	return f.atlas
}

// scanner walks an atlas in the order glyph cells are laid out.
type scanner struct {
	atlas  *twig.Bitmap
	border twig.Color
	x, y   int
	rowH   int
}

func newScanner(atlas *twig.Bitmap) *scanner {
	return &scanner{
		atlas:  atlas,
		border: atlas.Pixel(0, 0),
		rowH:   1,
	}
}

func (s *scanner) isBorder(x, y int) bool {
	if x >= s.atlas.Width() || y >= s.atlas.Height() {
		return true
	}
	return s.atlas.Pixel(x, y).SameRGB(s.border)
}

// next moves the cursor to the next non-border pixel. It reports false when
// the image has no rows left.
func (s *scanner) next() bool {
	for s.y < s.atlas.Height() {
		if s.x >= s.atlas.Width() {
			s.x = 0
			s.y += s.rowH
			s.rowH = 1
		}
		if !s.isBorder(s.x, s.y) {
			return true
		}
		s.x++
	}
	return false
}

// glyph measures the cell at the cursor and advances past it.
func (s *scanner) glyph(code rune) Glyph {
	g := Glyph{Code: code, X: s.x, Y: s.y}
	for !s.isBorder(s.x+g.W, s.y) {
		g.W++
	}
	for !s.isBorder(s.x, s.y+g.H) {
		g.H++
	}
	s.x += g.W
	s.rowH = max(s.rowH, g.H)
	return g
}
