//go:build linux

package xlib

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	loadMu   sync.Mutex
	loaded   bool
	loadErr  error
	bindings struct {
		xOpenDisplay           func(*byte) uintptr
		xCloseDisplay          func(uintptr) int32
		xDefaultScreen         func(uintptr) int32
		xDisplayWidth          func(uintptr, int32) int32
		xDisplayHeight         func(uintptr, int32) int32
		xDisplayWidthMM        func(uintptr, int32) int32
		xDisplayHeightMM       func(uintptr, int32) int32
		xResourceManagerString func(uintptr) *byte
	}
)

// Load maps libX11 into the process and binds the symbols this package
// exposes. The result is memoized; every later call returns the first
// outcome. The library is never unloaded.
func Load() error {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded {
		return loadErr
	}
	loaded = true

	lib, err := purego.Dlopen(libX11SoName, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		loadErr = fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
		return loadErr
	}

	for _, sym := range []string{
		"XOpenDisplay",
		"XCloseDisplay",
		"XDefaultScreen",
		"XDisplayWidth",
		"XDisplayHeight",
		"XDisplayWidthMM",
		"XDisplayHeightMM",
		"XResourceManagerString",
	} {
		if _, err := purego.Dlsym(lib, sym); err != nil {
			loadErr = fmt.Errorf("%w: %s: %v", ErrSymbolMissing, sym, err)
			return loadErr
		}
	}

	purego.RegisterLibFunc(&bindings.xOpenDisplay, lib, "XOpenDisplay")
	purego.RegisterLibFunc(&bindings.xCloseDisplay, lib, "XCloseDisplay")
	purego.RegisterLibFunc(&bindings.xDefaultScreen, lib, "XDefaultScreen")
	purego.RegisterLibFunc(&bindings.xDisplayWidth, lib, "XDisplayWidth")
	purego.RegisterLibFunc(&bindings.xDisplayHeight, lib, "XDisplayHeight")
	purego.RegisterLibFunc(&bindings.xDisplayWidthMM, lib, "XDisplayWidthMM")
	purego.RegisterLibFunc(&bindings.xDisplayHeightMM, lib, "XDisplayHeightMM")
	purego.RegisterLibFunc(&bindings.xResourceManagerString, lib, "XResourceManagerString")
	return nil
}

// OpenDefaultDisplay connects to the display named by $DISPLAY.
func OpenDefaultDisplay() (uintptr, error) {
	if err := Load(); err != nil {
		return 0, err
	}
	d := bindings.xOpenDisplay(nil)
	if d == 0 {
		return 0, fmt.Errorf("xlib: XOpenDisplay failed")
	}
	return d, nil
}

// CloseDisplay closes a display connection opened by OpenDefaultDisplay.
func CloseDisplay(display uintptr) {
	if display == 0 || Load() != nil {
		return
	}
	bindings.xCloseDisplay(display)
}

// ResourceManagerString returns the raw X resource database of the display,
// or nil when the server publishes none. Any failure is reported as nil
// rather than an error; callers treat it uniformly as "no data".
func ResourceManagerString(display uintptr) []byte {
	if display == 0 || Load() != nil {
		return nil
	}
	return goBytes(bindings.xResourceManagerString(display))
}

// DisplayDPI computes the per-axis physical DPI of the display's default
// screen from its pixel and millimeter dimensions.
func DisplayDPI(display uintptr) (x, y float64, err error) {
	if err := Load(); err != nil {
		return 0, 0, err
	}
	if display == 0 {
		return 0, 0, fmt.Errorf("xlib: no display")
	}
	screen := bindings.xDefaultScreen(display)
	wmm := bindings.xDisplayWidthMM(display, screen)
	hmm := bindings.xDisplayHeightMM(display, screen)
	if wmm <= 0 || hmm <= 0 {
		return 0, 0, fmt.Errorf("xlib: screen reports no physical size")
	}
	const mmPerInch = 25.4
	x = float64(bindings.xDisplayWidth(display, screen)) * mmPerInch / float64(wmm)
	y = float64(bindings.xDisplayHeight(display, screen)) * mmPerInch / float64(hmm)
	return x, y, nil
}

// goBytes copies a NUL-terminated C string.
func goBytes(c *byte) []byte {
	if c == nil {
		return nil
	}
	var out []byte
	for p := unsafe.Pointer(c); *(*byte)(p) != 0; p = unsafe.Pointer(uintptr(p) + 1) {
		out = append(out, *(*byte)(p))
	}
	return out
}
