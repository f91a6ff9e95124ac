package twig

import (
	"bytes"
	"image"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/twig/internal/imageio"
	"github.com/pkg/errors"
)

func mustBitmap(t testing.TB, w, h int) *Bitmap {
	t.Helper()
	b, err := NewBitmap(w, h)
	if err != nil {
		t.Fatalf("NewBitmap(%d, %d) error = %v", w, h, err)
	}
	return b
}

func TestNewBitmapDefaults(t *testing.T) {
	b := mustBitmap(t, 4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if len(b.Data()) != 4*3*4 {
		t.Errorf("len(Data()) = %d, want 48", len(b.Data()))
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}
	if b.BlendMode() != BlendAlpha {
		t.Errorf("BlendMode() = %v, want blend", b.BlendMode())
	}
	if got := b.Clip(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Clip() = %v, want full bitmap", got)
	}
}

func TestNewBitmapInvalid(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}} {
		if _, err := NewBitmap(sz[0], sz[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBitmap(%d, %d) error = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}

	tooBig := []struct {
		name string
		w, h int
	}{
		{"overflows int", 1 << 31, 1 << 31},
		{"max int width", math.MaxInt, 2},
		{"huge", 100000, 100000},
		{"one past the cap", MaxPixels + 1, 1},
	}
	for _, tt := range tooBig {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBitmap(tt.w, tt.h)
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("NewBitmap(%d, %d) error = %v, want ErrAllocation", tt.w, tt.h, err)
			}
			if b != nil {
				t.Errorf("NewBitmap(%d, %d) returned a bitmap", tt.w, tt.h)
			}
		})
	}
}

func TestPixelOutOfBounds(t *testing.T) {
	b := mustBitmap(t, 2, 2)
	b.Clear(Red)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if got := b.Pixel(p[0], p[1]); got != Transparent {
			t.Errorf("Pixel(%d, %d) = %+v, want Transparent", p[0], p[1], got)
		}
	}
	if got := b.Pixel(1, 1); got != Red {
		t.Errorf("Pixel(1, 1) = %+v, want Red", got)
	}
}

func TestClearIgnoresClip(t *testing.T) {
	b := mustBitmap(t, 3, 3)
	b.SetClip(1, 1, 1, 1)
	b.Clear(Blue)
	for y := range 3 {
		for x := range 3 {
			if got := b.Pixel(x, y); got != Blue {
				t.Fatalf("Pixel(%d, %d) = %+v, want Blue", x, y, got)
			}
		}
	}
}

func TestSetClipStoresVerbatim(t *testing.T) {
	b := mustBitmap(t, 10, 10)
	b.SetClip(-5, 2, 8, 100)
	if got := b.Clip(); got != image.Rect(0, 2, 3, 10) {
		t.Errorf("Clip() = %v, want (0,2)-(3,10)", got)
	}
	b.SetClip(3, 3, -1, 4)
	if got := b.Clip(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Clip() with sentinel = %v, want full", got)
	}
	b.SetClip(3, 3, 2, 2)
	b.ResetClip()
	if got := b.Clip(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Clip() after ResetClip = %v, want full", got)
	}
}

func TestLoadBitmap(t *testing.T) {
	src := mustBitmap(t, 3, 2)
	src.Clear(RGBA(10, 20, 30, 40))
	var buf bytes.Buffer
	if err := src.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	got, err := LoadBitmap(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadBitmap() error = %v", err)
	}
	if !bytes.Equal(got.Data(), src.Data()) {
		t.Errorf("LoadBitmap() pixels differ from source")
	}
	if got.BlendMode() != BlendAlpha || got.Clip() != got.Bounds() {
		t.Errorf("LoadBitmap() did not apply defaults")
	}
}

func TestLoadBitmapErrors(t *testing.T) {
	if _, err := LoadBitmap([]byte{0x89, 'P', 'N', 'G', 0, 0}); !errors.Is(err, imageio.ErrDecode) {
		t.Errorf("LoadBitmap(truncated) error = %v, want ErrDecode", err)
	}
	if _, err := LoadBitmap(nil); !errors.Is(err, imageio.ErrDecode) {
		t.Errorf("LoadBitmap(nil) error = %v, want ErrDecode", err)
	}
}

func TestSavePNG(t *testing.T) {
	b := mustBitmap(t, 2, 2)
	b.Clear(Green)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := b.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into missing dir error = nil, want error")
	}
}

func TestImageInterface(t *testing.T) {
	b := mustBitmap(t, 2, 1)
	b.Clear(RGBA(255, 0, 0, 128))
	var img image.Image = b
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if got := FromColor(img.At(1, 0)); got != RGBA(255, 0, 0, 128) {
		t.Errorf("At(1, 0) = %+v, want straight red at 128", got)
	}
	back, err := FromImage(b.ToImage())
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if back.Checksum() != b.Checksum() {
		t.Error("FromImage(ToImage()) changed pixels")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := mustBitmap(t, 2, 2)
	b.SetBlendMode(KeepAlpha)
	c := b.Clone()
	c.Clear(White)
	if b.Pixel(0, 0) != Transparent {
		t.Error("Clone() shares pixel storage")
	}
	if c.BlendMode() != KeepAlpha {
		t.Error("Clone() dropped blend mode")
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{KeepAlpha, "keep"},
		{BlendAlpha, "blend"},
		{BlendMode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
		if m, ok := ParseBlendMode(tt.want); ok && m != tt.mode {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.want, m, tt.mode)
		}
	}
	if _, ok := ParseBlendMode("bogus"); ok {
		t.Error("ParseBlendMode(bogus) ok = true")
	}
}
