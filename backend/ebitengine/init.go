package ebitengine

import (
	"github.com/gogpu/twig/backend"
)

// init registers the window backend on package import.
// This enables automatic backend selection when using backend.Default().
//
// To use the window backend, import this package:
//
//	import _ "github.com/gogpu/twig/backend/ebitengine"
func init() {
	backend.Register(backend.BackendEbitengine, func() backend.Backend {
		return &Backend{Title: DefaultTitle}
	})
}
