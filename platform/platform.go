// Package platform describes the windowing environment a process runs in:
// its platform family, its session type and, when one was opened, the
// native display-server connection.
package platform

import (
	"os"
	"runtime"
)

// Capabilities is a read-only view of the running platform used to steer
// display-metric resolution. Construct it with Detect for the real
// environment, or literally in tests.
type Capabilities struct {
	// OS is a runtime.GOOS style platform name.
	OS string
	// WaylandSession reports the process runs under a Wayland compositor.
	WaylandSession bool
	// Display is an opaque handle of the active X11 display connection,
	// zero when none is open. Whoever opens the connection owns it; this
	// struct only carries the handle around.
	Display uintptr
}

// Detect inspects the process environment. The X11 display handle starts
// unset; hosts holding a native connection fill it via SetX11Display.
func Detect() *Capabilities {
	return &Capabilities{
		OS:             runtime.GOOS,
		WaylandSession: detectWayland(),
	}
}

func detectWayland() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return os.Getenv("XDG_SESSION_TYPE") == "wayland"
}

// IsMacOS reports the macOS platform family.
func (c *Capabilities) IsMacOS() bool { return c.OS == "darwin" }

// IsWayland reports a Wayland session.
func (c *Capabilities) IsWayland() bool { return c.WaylandSession }

// X11Display returns the active display handle, zero when none.
func (c *Capabilities) X11Display() uintptr { return c.Display }

// SetX11Display records the active display handle.
func (c *Capabilities) SetX11Display(d uintptr) { c.Display = d }
