// Package winsys abstracts the windowing library queries the display-metric
// resolver depends on. Concrete backends live in subpackages; tests use the
// generated mock in winsys/mock.
package winsys

import "errors"

//go:generate mockgen -source winsys.go -destination mock/library.go

// ErrUnsupported is returned by PrimaryContentScale when the backend has no
// content-scale query. The resolver treats it as a signal to try the next
// fallback tier, never as a failure.
var ErrUnsupported = errors.New("winsys: content scale query unsupported")

// Library is the windowing-system query surface.
type Library interface {
	// PhysicalDPI returns the hardware pixel density of the primary
	// monitor per axis. There is no further fallback behind this query;
	// an error here means a broken windowing integration and propagates
	// to the caller as a hard failure.
	PhysicalDPI() (x, y float64, err error)

	// PrimaryContentScale returns the OS scaling factor of the primary
	// monitor relative to a 96 DPI baseline, or ErrUnsupported.
	PrimaryContentScale() (x, y float64, err error)
}
