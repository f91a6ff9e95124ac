// Package backend selects how a twig program is driven and shown.
//
// A backend owns the frame loop of a host.Runtime. The headless backend is
// always registered; window backends register themselves when imported:
//
//	import _ "github.com/gogpu/twig/backend/ebitengine"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := b.Run(ctx, rt); err != nil {
//		log.Fatal(err)
//	}
//
// # Available Backends
//
//   - "headless": runs a fixed number of frames, optionally saving the last one
//   - "ebitengine": a resizable window via Ebitengine with mouse and keyboard input
package backend
