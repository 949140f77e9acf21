// Package rgb packs colors into the 24-bit 0xRRGGBB integers exchanged
// with terminal escape sequences and parses the color specs appearing in
// them.
package rgb

import (
	"image/color"
	"strconv"
	"strings"
)

// UInt32RGBToColor converts a packed 0xRRGGBB value to color.RGBA.
// NOTE: A is fixed to 0xff.
func UInt32RGBToColor(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8((v & 0x00ff0000) >> 16),
		G: uint8((v & 0x0000ff00) >> 8),
		B: uint8(v & 0x000000ff),
		A: 0xff,
	}
}

// ColorToUInt32RGB converts color.RGBA to a packed 0xRRGGBB value.
// NOTE: A is not considered.
func ColorToUInt32RGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// namedColors covers the names terminals are actually asked for. Anything
// fancier arrives in one of the numeric forms.
var namedColors = map[string]uint32{
	"black":   0x000000,
	"red":     0xff0000,
	"green":   0x00ff00,
	"yellow":  0xffff00,
	"blue":    0x0000ff,
	"magenta": 0xff00ff,
	"cyan":    0x00ffff,
	"white":   0xffffff,
	"gray":    0xbebebe,
	"grey":    0xbebebe,
}

// ParseColor understands the forms used by terminal color requests:
// "#rgb", "#rrggbb", "rgb:rr/gg/bb" and a small set of color names. The
// second result is false for anything else.
func ParseColor(spec string) (color.RGBA, bool) {
	spec = strings.TrimSpace(spec)
	switch {
	case strings.HasPrefix(spec, "#"):
		return parseHex(spec[1:])
	case strings.HasPrefix(spec, "rgb:"):
		return parseSlashed(spec[4:])
	}
	if v, ok := namedColors[strings.ToLower(spec)]; ok {
		return UInt32RGBToColor(v), true
	}
	return color.RGBA{}, false
}

func parseHex(s string) (color.RGBA, bool) {
	var r, g, b string
	switch len(s) {
	case 3:
		// single hex digit per channel, doubled: #abc == #aabbcc
		r, g, b = s[0:1]+s[0:1], s[1:2]+s[1:2], s[2:3]+s[2:3]
	case 6:
		r, g, b = s[0:2], s[2:4], s[4:6]
	default:
		return color.RGBA{}, false
	}
	return channels(r, g, b)
}

func parseSlashed(s string) (color.RGBA, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}
	for _, p := range parts {
		if len(p) != 2 {
			return color.RGBA{}, false
		}
	}
	return channels(parts[0], parts[1], parts[2])
}

func channels(r, g, b string) (color.RGBA, bool) {
	rv, err1 := strconv.ParseUint(r, 16, 8)
	gv, err2 := strconv.ParseUint(g, 16, 8)
	bv, err3 := strconv.ParseUint(b, 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(rv), G: uint8(gv), B: uint8(bv), A: 0xff}, true
}

// ParseColorSet parses a ";"-separated sequence of index/spec pairs, as
// carried by OSC color-set requests, into packed 0xRRGGBB values keyed by
// color index. Pairs with an out-of-range index or an unparsable spec are
// skipped.
func ParseColorSet(raw string) map[int]uint32 {
	parts := strings.Split(raw, ";")
	out := make(map[int]uint32)
	for i := 0; i+1 < len(parts); i += 2 {
		idx, err := strconv.Atoi(parts[i])
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		c, ok := ParseColor(parts[i+1])
		if !ok {
			continue
		}
		out[idx] = ColorToUInt32RGB(c)
	}
	return out
}
