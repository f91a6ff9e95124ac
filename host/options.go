package host

import (
	"io"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/text"
)

// Default runtime settings.
const (
	DefaultWidth     = 320
	DefaultHeight    = 240
	DefaultFrameRate = 30
	DefaultEntry     = "main.lua"
	DefaultFontAsset = "font.png"
)

// DefaultClearColor is the colour the frame buffer starts with.
var DefaultClearColor = twig.RGB(30, 30, 30)

// Option configures a Runtime during creation.
//
// Example:
//
//	rt, err := host.New(assets,
//	    host.WithResolution(256, 192),
//	    host.WithFrameRate(60),
//	)
type Option func(*options)

type options struct {
	width, height int
	frameRate     int
	clear         twig.Color
	output        io.Writer
	font          *text.Font
	entry         string
	cacheSize     int
}

func defaultOptions() options {
	return options{
		width:     DefaultWidth,
		height:    DefaultHeight,
		frameRate: DefaultFrameRate,
		clear:     DefaultClearColor,
		entry:     DefaultEntry,
	}
}

// WithResolution sets the frame buffer size in pixels.
func WithResolution(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFrameRate sets the number of update calls per second.
func WithFrameRate(fps int) Option {
	return func(o *options) {
		o.frameRate = fps
	}
}

// WithClearColor sets the colour the frame buffer is cleared to at start.
func WithClearColor(c twig.Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// WithOutput redirects script print output. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithFont sets the font used by graphics.print.
// Without it the runtime loads the atlas asset "font.png" when present
// and falls back to text.Default.
func WithFont(f *text.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithEntry sets the script asset executed at start.
func WithEntry(name string) Option {
	return func(o *options) {
		o.entry = name
	}
}

// WithCacheSize sets how many decoded images the asset loader keeps.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

func (o *options) validate() error {
	switch {
	case o.width <= 0 || o.height <= 0:
		return errorf("resolution %dx%d", o.width, o.height)
	case o.frameRate <= 0:
		return errorf("frame rate %d", o.frameRate)
	case o.entry == "":
		return errorf("empty entry script name")
	}
	return nil
}
