package twig

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/twig/internal/clip"
	"github.com/gogpu/twig/internal/imageio"
	"github.com/pkg/errors"
)

// Bitmap is a rectangular buffer of straight RGBA8 pixels with a clip
// rectangle and a blend mode. All drawing primitives target a Bitmap.
//
// Bitmaps are not safe for concurrent use.
type Bitmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, row-major
	clip   clip.Rect
	mode   BlendMode
}

// noClip is the stored clip sentinel: the whole buffer.
var noClip = clip.Rect{W: -1, H: -1}

// MaxPixels is the largest pixel count NewBitmap allocates (256 MiB of RGBA).
const MaxPixels = 1 << 26

// NewBitmap creates a transparent black bitmap with no clip and BlendAlpha.
// Sizes whose storage would overflow or exceed MaxPixels fail with
// ErrAllocation.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if width > math.MaxInt/4/height || width*height > MaxPixels {
		return nil, errors.Wrapf(ErrAllocation, "%dx%d", width, height)
	}
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		clip:   noClip,
		mode:   BlendAlpha,
	}, nil
}

// LoadBitmap decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF, WebP) into
// a new bitmap. Decode failures wrap imageio.ErrDecode.
func LoadBitmap(data []byte) (*Bitmap, error) {
	d, err := imageio.Decode(data)
	if err != nil {
		return nil, err
	}
	return fromDecoded(d)
}

// FromImage creates a bitmap holding a copy of img.
func FromImage(img image.Image) (*Bitmap, error) {
	return fromDecoded(imageio.FromImage(img))
}

func fromDecoded(d *imageio.Decoded) (*Bitmap, error) {
	bmp, err := NewBitmap(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	copy(bmp.data, d.Pix)
	return bmp, nil
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Data returns the raw pixel data (straight RGBA, 4 bytes per pixel).
// The slice aliases the bitmap; presenters read it once a frame is finished.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// View returns an *image.NRGBA that shares the bitmap's pixels.
// Unlike ToImage it does not copy; writes through the view bypass clipping.
func (b *Bitmap) View() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// SetClip stores the clip rectangle verbatim. A negative w or h means no
// clip. The rectangle need not lie inside the bitmap: every drawing
// operation intersects it with the bitmap bounds.
func (b *Bitmap) SetClip(x, y, w, h int) {
	b.clip = clip.NewRect(x, y, w, h)
}

// ResetClip removes the clip rectangle.
func (b *Bitmap) ResetClip() {
	b.clip = noClip
}

// Clip returns the effective clip: the stored rectangle intersected with the
// bitmap bounds.
func (b *Bitmap) Clip() image.Rectangle {
	c := b.effectiveClip()
	return image.Rect(c.X, c.Y, c.Right(), c.Bottom())
}

func (b *Bitmap) effectiveClip() clip.Rect {
	return clip.Effective(b.clip, b.width, b.height)
}

// SetBlendMode sets how blends treat the destination alpha channel.
func (b *Bitmap) SetBlendMode(mode BlendMode) {
	b.mode = mode
}

// BlendMode returns the current blend mode.
func (b *Bitmap) BlendMode() BlendMode {
	return b.mode
}

// Clear overwrites every pixel with c. The clip is ignored.
func (b *Bitmap) Clear(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Pixel returns the color at (x, y), or Transparent outside the bitmap.
func (b *Bitmap) Pixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return Color{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Checksum returns an FNV-1a hash of the pixel data.
func (b *Bitmap) Checksum() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b.data)
	return h.Sum64()
}

// Clone returns a deep copy of the bitmap, including clip and blend mode.
func (b *Bitmap) Clone() *Bitmap {
	c := *b
	c.data = make([]uint8, len(b.data))
	copy(c.data, b.data)
	return &c
}

// ToImage converts the bitmap to an image.NRGBA.
func (b *Bitmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// EncodePNG writes the bitmap to w as PNG.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return errors.Wrap(err, "twig: save png")
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "twig: encode png")
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}
