// Command twig runs a twig program from a zip archive or a directory.
//
// The data must contain main.lua. With -headless the program runs for a
// fixed number of frames without a window, and -shot saves the last frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/asset"
	"github.com/gogpu/twig/backend"
	_ "github.com/gogpu/twig/backend/ebitengine"
	"github.com/gogpu/twig/host"
)

func main() {
	var (
		data     = flag.String("data", "data.zip", "zip archive or directory with the program's assets")
		entry    = flag.String("entry", host.DefaultEntry, "script executed at start")
		width    = flag.Int("width", host.DefaultWidth, "frame buffer width")
		height   = flag.Int("height", host.DefaultHeight, "frame buffer height")
		fps      = flag.Int("fps", host.DefaultFrameRate, "frames per second")
		name     = flag.String("backend", "", "backend name (default: best available)")
		headless = flag.Int("headless", 0, "run this many frames without a window")
		shot     = flag.String("shot", "", "save the last frame as PNG (headless only)")
		verbose  = flag.Bool("v", false, "verbose logging")
		version  = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("twig", twig.Version)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	twig.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	assets, err := openAssets(*data)
	if err != nil {
		log.Fatalf("twig: %v", err)
	}

	rt, err := host.New(assets,
		host.WithEntry(*entry),
		host.WithResolution(*width, *height),
		host.WithFrameRate(*fps),
	)
	if err != nil {
		log.Fatalf("twig: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, rt, *name, *headless, *shot)
	stop()
	rt.Close()
	if err != nil {
		log.Fatalf("twig: %v", err)
	}
}

func openAssets(path string) (asset.Provider, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return asset.NewDir(path), nil
	}
	return asset.OpenZip(path)
}

func run(ctx context.Context, rt *host.Runtime, name string, frames int, shot string) error {
	if frames > 0 || shot != "" {
		h := &backend.Headless{Frames: frames}
		if shot == "" {
			return h.Run(ctx, rt)
		}
		f, err := os.Create(shot)
		if err != nil {
			return err
		}
		h.Screenshot = f
		if err := h.Run(ctx, rt); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("frame saved to %s (%dx%d)", shot, rt.FrameBuffer().Width(), rt.FrameBuffer().Height())
		return nil
	}

	var (
		b   backend.Backend
		err error
	)
	if name != "" {
		b, err = backend.Get(name)
	} else {
		b, err = backend.Default()
	}
	if err != nil {
		return err
	}
	return b.Run(ctx, rt)
}
