// Package xres extracts settings from an X resource database, the textual
// key/value store published by the X server for application defaults.
package xres

import (
	"strconv"
	"strings"

	"github.com/sonoshi/mado/internal/xlib"
)

// dpiKey is the resource entry carrying the font DPI setting. Entries in a
// resource manager string are laid out as "<key>:\t<value>" per line.
const dpiKey = "Xft.dpi:\t"

// ParseDPI scans raw for the font DPI entry and returns its numeric value.
// raw is decoded as UTF-8 with invalid sequences replaced. The first
// matching line wins; later duplicates are ignored. The second result is
// false when no entry matches or its value does not parse as a number.
func ParseDPI(raw []byte) (float64, bool) {
	text := strings.ToValidUTF8(string(raw), "�")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, dpiKey) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimPrefix(line, dpiKey), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// DisplayDPI fetches the resource database of an open X display and parses
// the font DPI entry from it. Every failure along the way, a missing
// library, a dead display, an absent or malformed entry, is reported
// uniformly as "no value".
func DisplayDPI(display uintptr) (float64, bool) {
	if display == 0 {
		return 0, false
	}
	raw := xlib.ResourceManagerString(display)
	if len(raw) == 0 {
		return 0, false
	}
	return ParseDPI(raw)
}
