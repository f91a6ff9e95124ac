package display

import (
	"image"

	"github.com/gogpu/twig"
	"golang.org/x/image/draw"
)

// Presenter draws frame buffers onto window surfaces. The window shows
// colour only, so frame alpha is forced opaque. A Presenter keeps its
// scratch copy of the frame between calls; the zero value is ready to use.
type Presenter struct {
	opaque *image.NRGBA
}

// Present draws frame into dst: dst is cleared to black, then the frame is
// scaled with nearest-neighbour sampling into the viewport computed from
// dst's bounds. It returns that viewport for input mapping.
func (p *Presenter) Present(dst draw.Image, frame *twig.Bitmap) Viewport {
	b := dst.Bounds()
	v := Layout(frame.Width(), frame.Height(), b.Dx(), b.Dy())

	src := p.source(frame)
	draw.Draw(dst, b, image.Black, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, v.Rect.Add(b.Min), src, src.Bounds(), draw.Src, nil)
	return v
}

// source copies frame into the scratch image with every alpha set to 0xff.
func (p *Presenter) source(frame *twig.Bitmap) *image.NRGBA {
	r := image.Rect(0, 0, frame.Width(), frame.Height())
	if p.opaque == nil || p.opaque.Rect != r {
		p.opaque = image.NewNRGBA(r)
	}
	copy(p.opaque.Pix, frame.Data())
	for i := 3; i < len(p.opaque.Pix); i += 4 {
		p.opaque.Pix[i] = 0xff
	}
	return p.opaque
}

// Present is Presenter.Present with a fresh Presenter.
func Present(dst draw.Image, frame *twig.Bitmap) Viewport {
	var p Presenter
	return p.Present(dst, frame)
}
