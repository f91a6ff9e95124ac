package backend

import (
	"context"
	"io"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/host"
	"github.com/pkg/errors"
)

// BackendHeadless is the name of the window-less backend.
const BackendHeadless = "headless"

// Headless runs a program without a window. Input is never generated.
type Headless struct {
	// Frames is the number of frames to run. Zero runs until ctx is done.
	Frames int
	// Screenshot receives the final frame buffer as PNG when non-nil.
	Screenshot io.Writer
}

// init registers the headless backend on package import.
func init() {
	Register(BackendHeadless, func() Backend {
		return &Headless{}
	})
}

// Name returns the backend identifier.
func (h *Headless) Name() string {
	return BackendHeadless
}

// Run calls rt.Run for h.Frames frames and then writes the screenshot.
func (h *Headless) Run(ctx context.Context, rt *host.Runtime) error {
	twig.Logger().Info("headless run", "frames", h.Frames, "fps", rt.FrameRate())

	err := rt.Run(ctx, h.Frames)
	if err != nil && (ctx.Err() == nil || !errors.Is(err, ctx.Err())) {
		return err
	}
	if h.Screenshot == nil {
		return nil
	}
	if err := rt.FrameBuffer().EncodePNG(h.Screenshot); err != nil {
		return errors.Wrap(err, "backend: screenshot")
	}
	return nil
}
