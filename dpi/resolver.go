package dpi

import (
	"fmt"

	"github.com/sonoshi/mado/platform"
	"github.com/sonoshi/mado/util/log"
	"github.com/sonoshi/mado/winsys"
	"github.com/sonoshi/mado/xres"
)

// baselineDPI is the density a content scale of 1.0 corresponds to.
const baselineDPI = 96.0

// Resolver orchestrates the fallback chain producing a logical DPI pair
// and exposes the physical DPI query of the underlying windowing library.
type Resolver struct {
	win winsys.Library

	// xrdbDPI looks the font DPI up in the X resource database of a
	// display. Swappable so tests never touch a native library.
	xrdbDPI func(display uintptr) (float64, bool)
}

// NewResolver builds a Resolver over the given windowing library.
func NewResolver(win winsys.Library) *Resolver {
	return &Resolver{win: win, xrdbDPI: xres.DisplayDPI}
}

// PhysicalDPI queries the hardware density. There is no fallback behind
// it: a failure means the windowing integration itself is broken and is
// returned to the caller as is.
func (r *Resolver) PhysicalDPI() (Pair, error) {
	x, y, err := r.win.PhysicalDPI()
	if err != nil {
		return Pair{}, fmt.Errorf("dpi: physical query: %w", err)
	}
	return Pair{X: x, Y: y}, nil
}

// LogicalDPI resolves the effective density through the ordered fallback
// chain:
//
//  1. on macOS the physical density is used directly; the platform has no
//     separate logical scale in this design,
//  2. the windowing library's content scale, times the 96 DPI baseline,
//  3. when the scale query is unsupported and the session is not Wayland,
//     the Xft.dpi entry of the X resource database, applied to both axes,
//  4. the physical density.
//
// Every failure inside tiers 2 and 3 advances to the next tier; the only
// error this method can return is the physical query's own.
func (r *Resolver) LogicalDPI(caps *platform.Capabilities) (Pair, error) {
	if caps.IsMacOS() {
		return r.PhysicalDPI()
	}

	sx, sy, err := r.win.PrimaryContentScale()
	if err == nil {
		return Pair{X: sx * baselineDPI, Y: sy * baselineDPI}, nil
	}
	log.Debugf("dpi: content scale unavailable (%v), trying X resource database", err)

	if !caps.IsWayland() {
		if v, ok := r.xrdbDPI(caps.X11Display()); ok {
			return Uniform(v), nil
		}
	}
	return r.PhysicalDPI()
}
