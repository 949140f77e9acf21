// Package glfwwin implements winsys.Library over GLFW. The caller owns the
// GLFW lifecycle; glfw.Init must have succeeded before New is called.
package glfwwin

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Library queries the primary monitor through GLFW.
type Library struct{}

// New returns a GLFW-backed Library.
func New() *Library { return &Library{} }

// PhysicalDPI computes hardware density from the primary monitor's video
// mode and physical size in millimeters.
func (*Library) PhysicalDPI() (x, y float64, err error) {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return 0, 0, fmt.Errorf("glfwwin: no primary monitor")
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return 0, 0, fmt.Errorf("glfwwin: primary monitor has no video mode")
	}
	wmm, hmm := m.GetPhysicalSize()
	if wmm <= 0 || hmm <= 0 {
		return 0, 0, fmt.Errorf("glfwwin: primary monitor reports no physical size")
	}
	const mmPerInch = 25.4
	x = float64(mode.Width) * mmPerInch / float64(wmm)
	y = float64(mode.Height) * mmPerInch / float64(hmm)
	return x, y, nil
}

// PrimaryContentScale returns the OS scaling factor of the primary monitor.
func (*Library) PrimaryContentScale() (x, y float64, err error) {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return 0, 0, fmt.Errorf("glfwwin: no primary monitor")
	}
	sx, sy := m.GetContentScale()
	return float64(sx), float64(sy), nil
}
