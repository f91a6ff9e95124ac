package text

import (
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/twig"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// NewAtlas renders the NumGlyphs code points of face into an atlas bitmap
// that NewFont accepts.
//
// Every cell has the size of the widest advance by the face's ascent plus
// descent, so fonts built from the atlas are monospaced. Cells are
// transparent black with white ink and are separated by 1-pixel border
// lines. Code points the face lacks leave their cell empty.
func NewAtlas(face font.Face, opts ...AtlasOption) (*twig.Bitmap, error) {
	cfg := defaultAtlasConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if face == nil {
		return nil, errors.Wrap(ErrFontConstruction, "nil face")
	}
	if cfg.columns <= 0 {
		return nil, errors.Wrapf(ErrFontConstruction, "invalid column count %d", cfg.columns)
	}
	if cfg.border.SameRGB(twig.Black) || cfg.border.SameRGB(twig.White) {
		return nil, errors.Wrap(ErrFontConstruction, "border colour collides with glyph pixels")
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := ascent + m.Descent.Ceil()
	cellW := 0
	for i := range NumGlyphs {
		if adv, ok := face.GlyphAdvance(slotRune(i)); ok {
			cellW = max(cellW, adv.Ceil())
		}
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, errors.Wrapf(ErrFontConstruction, "face has empty cells (%dx%d)", cellW, cellH)
	}

	cols := min(cfg.columns, NumGlyphs)
	rows := (NumGlyphs + cols - 1) / cols
	img := image.NewNRGBA(image.Rect(0, 0, 1+cols*(cellW+1), 1+rows*(cellH+1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.border), image.Point{}, draw.Src)

	d := font.Drawer{Src: image.White, Face: face}
	for i := range NumGlyphs {
		x := 1 + (i%cols)*(cellW+1)
		y := 1 + (i/cols)*(cellH+1)
		cell := image.Rect(x, y, x+cellW, y+cellH)
		draw.Draw(img, cell, image.Transparent, image.Point{}, draw.Src)

		d.Dst = img.SubImage(cell).(*image.NRGBA)
		d.Dot = fixed.P(x, y+ascent)
		d.DrawString(string(slotRune(i)))
	}

	return twig.FromImage(img)
}

var defaultFont = sync.OnceValues(func() (*Font, error) {
	atlas, err := NewAtlas(basicfont.Face7x13)
	if err != nil {
		return nil, err
	}
	return NewFont(atlas)
})

// Default returns the built-in 7x13 font. It is built on first use and
// shared afterwards.
func Default() (*Font, error) {
	return defaultFont()
}

// LoadFace parses a TrueType or OpenType font and returns a face of the
// given size in pixels, suitable for NewAtlas.
func LoadFace(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrFontConstruction, "empty font data")
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrFontConstruction, "invalid face size %v", size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(ErrFontConstruction, "parse font: %v", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrFontConstruction, "new face: %v", err)
	}
	return face, nil
}
