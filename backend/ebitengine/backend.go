// Package ebitengine shows a twig program in a resizable window and feeds
// it mouse and keyboard input.
//
// The frame buffer is scaled by the largest integer factor that fits the
// window and centred on black. Mouse positions are mapped back into frame
// coordinates and only reported while the pointer is over the frame.
package ebitengine

import (
	"context"
	"image"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/backend"
	"github.com/gogpu/twig/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// DefaultTitle is the window title used by the registered backend.
const DefaultTitle = "twig"

// Backend runs a program in an Ebitengine window.
type Backend struct {
	Title string
}

var _ backend.Backend = (*Backend)(nil)

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendEbitengine
}

// Run opens a window twice the size of the frame buffer and runs rt at its
// frame rate until the window is closed, ctx is done or a script fails.
func (b *Backend) Run(ctx context.Context, rt *host.Runtime) error {
	w, h := rt.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(b.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(rt.FrameRate())

	twig.Logger().Info("window opened", "width", w, "height", h, "fps", rt.FrameRate())
	if err := ebiten.RunGame(newGame(ctx, rt)); err != nil {
		return errors.Wrap(err, "ebitengine")
	}
	return nil
}

// mouseButtons maps Ebitengine buttons to the numbers scripts receive.
var mouseButtons = []struct {
	button ebiten.MouseButton
	id     int
}{
	{ebiten.MouseButtonLeft, 1},
	{ebiten.MouseButtonRight, 2},
	{ebiten.MouseButtonMiddle, 3},
	{ebiten.MouseButton3, 5},
	{ebiten.MouseButton4, 6},
}

type game struct {
	ctx context.Context
	rt  *host.Runtime

	// surface is the window-sized frame presented on the CPU; window is
	// its GPU copy.
	surface *image.RGBA
	window  *ebiten.Image
	cursor  image.Point
	keys    []ebiten.Key
}

func newGame(ctx context.Context, rt *host.Runtime) *game {
	return &game{ctx: ctx, rt: rt, cursor: image.Pt(-1, -1)}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := g.rt.Start(); err != nil {
		return err
	}
	if err := g.input(); err != nil {
		return err
	}
	return g.rt.Frame()
}

func (g *game) input() error {
	if x, y := ebiten.CursorPosition(); image.Pt(x, y) != g.cursor {
		g.cursor = image.Pt(x, y)
		if err := g.rt.MouseMove(x, y); err != nil {
			return err
		}
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.button) {
			if err := g.rt.MouseButton(mb.id, true); err != nil {
				return err
			}
		}
		if inpututil.IsMouseButtonJustReleased(mb.button) {
			if err := g.rt.MouseButton(mb.id, false); err != nil {
				return err
			}
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.rt.Key(KeyName(k), true); err != nil {
			return err
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.rt.Key(KeyName(k), false); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.window == nil || g.surface.Rect.Size() != b.Size() {
		if g.window != nil {
			g.window.Deallocate()
		}
		g.surface = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		g.window = ebiten.NewImage(b.Dx(), b.Dy())
	}

	g.rt.Present(g.surface)
	g.window.WritePixels(g.surface.Pix)
	screen.DrawImage(g.window, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.rt.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
