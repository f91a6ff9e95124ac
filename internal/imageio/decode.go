// Package imageio decodes encoded images into straight RGBA8 pixels.
//
// Formats are registered with the standard image package: PNG, JPEG and GIF
// from the standard library, BMP, TIFF and WebP from golang.org/x/image.
package imageio

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Decode errors.
var (
	// ErrDecode is returned when the bytes are not a decodable image.
	ErrDecode = errors.New("imageio: decode failed")

	// ErrEmptyData is returned when there are no bytes to decode.
	// It wraps ErrDecode.
	ErrEmptyData = errors.Wrap(ErrDecode, "empty data")
)

// Decoded holds the result of decoding: width, height and row-major
// non-premultiplied RGBA bytes, 4 per pixel, with no row padding.
type Decoded struct {
	Width  int
	Height int
	Pix    []byte
	Format string
}

// Decode decodes data, auto-detecting the format.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	d := FromImage(img)
	d.Format = format
	return d, nil
}

// FromImage converts any image.Image to tightly packed straight RGBA.
func FromImage(img image.Image) *Decoded {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 && b.Min == (image.Point{}) {
		pix := make([]byte, len(n.Pix))
		copy(pix, n.Pix)
		return &Decoded{Width: w, Height: h, Pix: pix}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Decoded{Width: w, Height: h, Pix: dst.Pix}
}
