package backend

import (
	"context"

	"github.com/gogpu/twig/host"
	"github.com/pkg/errors"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend drives a host.Runtime: it calls Start and Frame at the runtime's
// frame rate, forwards input and presents the frame buffer.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "headless", "ebitengine").
	Name() string

	// Run drives rt until the program ends, ctx is done or a script fails.
	// A cancelled ctx is a normal stop and is not reported as an error.
	Run(ctx context.Context, rt *host.Runtime) error
}

func errorf(name string) error {
	return errors.Wrapf(ErrBackendNotAvailable, "%q", name)
}
