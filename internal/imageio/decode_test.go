package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

func encodeTestImage(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{G: 200, B: 100, A: 255})
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		enc    func(*bytes.Buffer, image.Image) error
		format string
	}{
		{"png", func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }, "png"},
		{"bmp", func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }, "bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(encodeTestImage(t, tt.enc))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if d.Width != 3 || d.Height != 2 {
				t.Fatalf("Decode() size = %dx%d, want 3x2", d.Width, d.Height)
			}
			if d.Format != tt.format {
				t.Errorf("Decode() format = %q, want %q", d.Format, tt.format)
			}
			if len(d.Pix) != 3*2*4 {
				t.Fatalf("len(Pix) = %d, want 24", len(d.Pix))
			}
			if got := d.Pix[0:4]; got[0] != 255 || got[3] != 255 {
				t.Errorf("pixel (0,0) = %v, want opaque red", got)
			}
			i := (1*3 + 2) * 4
			if got := d.Pix[i : i+4]; got[1] != 200 || got[2] != 100 {
				t.Errorf("pixel (2,1) = %v, want G=200 B=100", got)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyData) || !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(nil) error = %v, want ErrEmptyData wrapping ErrDecode", err)
	}
	if _, err := Decode([]byte("definitely not an image")); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(garbage) error = %v, want ErrDecode", err)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(6, 5, color.NRGBA{B: 9, A: 255})
	d := FromImage(img)
	if d.Width != 2 || d.Height != 1 {
		t.Fatalf("FromImage() size = %dx%d, want 2x1", d.Width, d.Height)
	}
	if d.Pix[6] != 9 || d.Pix[7] != 255 {
		t.Errorf("FromImage() pixel (1,0) = %v, want B=9 A=255", d.Pix[4:8])
	}
}
