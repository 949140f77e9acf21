// Package x11 implements winsys.Library on top of a native Xlib display
// connection. It exposes no content-scale query; callers fall through to
// the X resource database or the physical DPI instead.
package x11

import (
	"fmt"

	"github.com/sonoshi/mado/internal/xlib"
	"github.com/sonoshi/mado/winsys"
)

// Library queries display metrics from an X11 display.
type Library struct {
	display uintptr
	owned   bool
}

// Open loads libX11 and connects to the display named by $DISPLAY. Close
// releases the connection.
func Open() (*Library, error) {
	d, err := xlib.OpenDefaultDisplay()
	if err != nil {
		return nil, fmt.Errorf("x11: open display: %w", err)
	}
	return &Library{display: d, owned: true}, nil
}

// FromDisplay wraps an externally owned display connection. Close is a
// no-op for such a Library.
func FromDisplay(display uintptr) *Library {
	return &Library{display: display}
}

// Display returns the underlying display handle for use as the platform's
// active X11 display.
func (l *Library) Display() uintptr { return l.display }

// PhysicalDPI derives per-axis DPI from the default screen's pixel and
// millimeter dimensions.
func (l *Library) PhysicalDPI() (x, y float64, err error) {
	x, y, err = xlib.DisplayDPI(l.display)
	if err != nil {
		return 0, 0, fmt.Errorf("x11: physical dpi: %w", err)
	}
	return x, y, nil
}

// PrimaryContentScale always reports the query as unsupported; Xlib has no
// notion of a per-monitor content scale.
func (l *Library) PrimaryContentScale() (x, y float64, err error) {
	return 0, 0, winsys.ErrUnsupported
}

// Close disconnects a display opened by Open.
func (l *Library) Close() {
	if l.owned && l.display != 0 {
		xlib.CloseDisplay(l.display)
		l.display = 0
	}
}
