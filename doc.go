// Package twig is a small software compositor for pixel-art programs.
//
// # Overview
//
// A Bitmap is a fixed-size RGBA pixel buffer with a clip rectangle and a
// blit mode. Every drawing operation works on whole pixels with integer
// coordinates and 8-bit colour: there is no anti-aliasing, no transform
// and no floating point in the blend path.
//
// # Quick Start
//
//	import "github.com/gogpu/twig"
//
//	b, err := twig.NewBitmap(320, 240)
//	if err != nil {
//		log.Fatal(err)
//	}
//	b.Clear(twig.RGB(30, 30, 30))
//	b.Rect(10, 10, 50, 30, twig.RGBA(255, 0, 0, 128))
//	b.Line(0, 0, 319, 239, twig.White)
//	b.SavePNG("frame.png")
//
// # Blending
//
// Colour channels are blended as dst + (src-dst)*w/65536. Solid primitives
// (Plot, Line, Rect, RectLine) use w = e(a)*e(a) where e(a) = a + (a > 0);
// image primitives (BlitTint, BlitAlpha and text drawing) use
// w = e(tint.A)*e(src.A). The alpha channel follows the blit mode: with
// BlendAlpha it is blended like a colour channel, with KeepAlpha the
// destination alpha is left untouched.
//
// # Clipping
//
// Each bitmap carries a clip rectangle. Drawing never touches pixels
// outside the clip or outside the bitmap; a negative clip width or height
// stands for the whole bitmap.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Bitmap, Color, BlendMode and the drawing primitives
//   - text: bitmap fonts scanned from glyph atlases
//   - asset: zip and directory asset providers with a decoded image cache
//   - script: Lua bindings for bitmaps, drawing and text
//   - host: the frame loop that ties a script to a frame buffer
//   - backend: headless and windowed drivers for the frame loop
//   - Internal: blend (fixed-point math), clip (rectangles), raster (lines),
//     imageio (decoding), cache (LRU)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package twig

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
