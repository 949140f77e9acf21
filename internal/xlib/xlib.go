// Package xlib binds the narrow slice of libX11 this module needs at
// runtime. The library is loaded on demand with dlopen and stays mapped for
// the process lifetime; all native-call surface is kept behind typed
// wrappers so callers never touch the foreign interface directly.
package xlib

import "errors"

var (
	// ErrLibraryNotFound is returned by Load when the X11 client library
	// cannot be located on this system.
	ErrLibraryNotFound = errors.New("xlib: libX11 not found")
	// ErrSymbolMissing is returned by Load when an expected symbol is
	// absent from the located library.
	ErrSymbolMissing = errors.New("xlib: symbol missing")
)

// libX11SoName is the canonical shared object name used for lookup.
const libX11SoName = "libX11.so.6"
