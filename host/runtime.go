// Package host runs a twig program: it owns the frame buffer, the font,
// the assets and the script host, and drives them one frame at a time.
//
// A window backend calls Start once, then Frame at the frame rate, forwards
// input events and presents FrameBuffer after every frame. Without a window
// the same calls can be made directly, which is how tests and the headless
// command line mode run programs.
package host

import (
	"context"
	"image/draw"
	"time"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/asset"
	"github.com/gogpu/twig/display"
	"github.com/gogpu/twig/script"
	"github.com/gogpu/twig/text"
	"github.com/pkg/errors"
)

// ErrConfig is returned by New for invalid options.
var ErrConfig = errors.New("host: invalid configuration")

func errorf(format string, args ...any) error {
	return errors.Wrapf(ErrConfig, format, args...)
}

// Runtime is a running twig program. It is not safe for concurrent use;
// backends call it from a single goroutine.
type Runtime struct {
	opts    options
	frame   *twig.Bitmap
	font    *text.Font
	assets  *asset.Loader
	script  *script.Host
	view    display.Viewport
	present display.Presenter
	frames  uint64
	started bool
}

// New creates the frame buffer, loads the font and executes the entry
// script from assets. Script callbacks are not called until Start.
func New(assets asset.Provider, opts ...Option) (*Runtime, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if assets == nil {
		return nil, errorf("nil asset provider")
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	frame, err := twig.NewBitmap(o.width, o.height)
	if err != nil {
		return nil, errors.Wrap(err, "host: frame buffer")
	}
	frame.Clear(o.clear)

	r := &Runtime{
		opts:   o,
		frame:  frame,
		assets: asset.NewLoader(assets, o.cacheSize),
	}
	r.view = display.Layout(o.width, o.height, o.width, o.height)

	if r.font, err = r.loadFont(); err != nil {
		return nil, err
	}

	r.script, err = script.New(script.Config{
		Frame:  frame,
		Font:   r.font,
		Assets: r.assets,
		Output: o.output,
	})
	if err != nil {
		return nil, err
	}
	if err := r.script.Run(o.entry); err != nil {
		r.script.Close()
		return nil, err
	}

	twig.Logger().Info("runtime created",
		"entry", o.entry, "width", o.width, "height", o.height, "fps", o.frameRate)
	return r, nil
}

func (r *Runtime) loadFont() (*text.Font, error) {
	if r.opts.font != nil {
		return r.opts.font, nil
	}
	atlas, err := r.assets.Bitmap(DefaultFontAsset)
	switch {
	case errors.Is(err, asset.ErrNotFound):
		return text.Default()
	case err != nil:
		return nil, errors.Wrap(err, "host: font")
	}
	f, err := text.NewFont(atlas)
	if err != nil {
		return nil, errors.Wrap(err, "host: font")
	}
	twig.Logger().Debug("font loaded", "asset", DefaultFontAsset, "line_height", f.LineHeight())
	return f, nil
}

// Start calls the script's twig.init. Calling it again is a no-op.
func (r *Runtime) Start() error {
	if r.started {
		return nil
	}
	r.started = true
	return r.script.Init()
}

// Frame runs one frame: twig.update. It calls Start first if needed.
func (r *Runtime) Frame() error {
	if err := r.Start(); err != nil {
		return err
	}
	if err := r.script.Update(); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Run calls Frame at the configured frame rate until ctx is done, a frame
// fails, or n frames have run. n <= 0 means no frame limit.
func (r *Runtime) Run(ctx context.Context, n int) error {
	r.script.SetContext(ctx)
	defer r.script.RemoveContext()

	tick := time.NewTicker(r.FrameDuration())
	defer tick.Stop()

	for i := 0; n <= 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Frame(); err != nil {
			twig.Logger().Error("frame failed", "frame", r.frames, "err", err)
			return err
		}
		if n > 0 && i == n-1 {
			break
		}
		select {
		case <-ctx.Done():
		case <-tick.C:
		}
	}
	return nil
}

// Frames returns the number of completed frames.
func (r *Runtime) Frames() uint64 {
	return r.frames
}

// FrameBuffer returns the bitmap scripts draw into.
func (r *Runtime) FrameBuffer() *twig.Bitmap {
	return r.frame
}

// Font returns the font used by graphics.print.
func (r *Runtime) Font() *text.Font {
	return r.font
}

// FrameRate returns the number of frames per second.
func (r *Runtime) FrameRate() int {
	return r.opts.frameRate
}

// FrameDuration returns the time budget of one frame.
func (r *Runtime) FrameDuration() time.Duration {
	return time.Second / time.Duration(r.opts.frameRate)
}

// WindowSize returns the default window size: twice the frame buffer.
func (r *Runtime) WindowSize() (int, int) {
	return r.frame.Width() * 2, r.frame.Height() * 2
}

// Resize records the window size used to map mouse coordinates and
// returns the new viewport.
func (r *Runtime) Resize(winW, winH int) display.Viewport {
	r.view = display.Layout(r.frame.Width(), r.frame.Height(), winW, winH)
	return r.view
}

// Viewport returns the current viewport.
func (r *Runtime) Viewport() display.Viewport {
	return r.view
}

// Present draws the frame buffer into dst with opaque alpha and records
// dst's size as the window size.
func (r *Runtime) Present(dst draw.Image) {
	r.view = r.present.Present(dst, r.frame)
}

// MouseMove forwards a pointer position in window coordinates. Positions
// outside the presented frame are dropped.
func (r *Runtime) MouseMove(wx, wy int) error {
	x, y, ok := r.view.ToFrame(wx, wy)
	if !ok {
		return nil
	}
	return r.script.MouseMove(x, y)
}

// MouseButton forwards a button press or release.
func (r *Runtime) MouseButton(button int, pressed bool) error {
	return r.script.MouseButton(button, pressed)
}

// Key forwards a key press or release by key name.
func (r *Runtime) Key(name string, pressed bool) error {
	return r.script.Key(name, pressed)
}

// Close releases the script host.
func (r *Runtime) Close() {
	r.script.Close()
	twig.Logger().Info("runtime closed", "frames", r.frames)
}
