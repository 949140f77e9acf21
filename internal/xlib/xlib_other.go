//go:build !linux

package xlib

import "fmt"

// Load always fails off Linux; the X11 fallback tier simply never yields a
// value there.
func Load() error { return ErrLibraryNotFound }

func OpenDefaultDisplay() (uintptr, error) {
	return 0, fmt.Errorf("xlib: unsupported on this platform: %w", ErrLibraryNotFound)
}

func CloseDisplay(display uintptr) {}

func ResourceManagerString(display uintptr) []byte { return nil }

func DisplayDPI(display uintptr) (x, y float64, err error) {
	return 0, 0, ErrLibraryNotFound
}
