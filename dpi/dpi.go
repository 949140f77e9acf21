// Package dpi resolves the dots-per-inch of the running process across
// heterogeneous windowing backends, caches the result as overridable
// process-wide state and derives pixel sizes from point sizes.
//
// Resolution is an ordered fallback chain: the platform family and the
// windowing library's content-scale query are consulted first, then the
// X resource database, and finally the hardware density, which always
// yields some value. See Resolver.LogicalDPI.
package dpi

import "math"

// Pair is a dots-per-inch value per axis. A valid Pair has both components
// positive; absence of a value is expressed by not having a Pair at all,
// never by zeroes.
type Pair struct {
	X, Y float64
}

// Valid reports whether both components are positive.
func (p Pair) Valid() bool { return p.X > 0 && p.Y > 0 }

// Mean returns the average of both axes.
func (p Pair) Mean() float64 { return (p.X + p.Y) / 2 }

// Uniform returns a Pair with the same value on both axes.
func Uniform(v float64) Pair { return Pair{X: v, Y: v} }

// Metrics couples the hardware density with the effective density after
// OS and user scaling.
type Metrics struct {
	Physical Pair
	Logical  Pair
}

// Adjustment alters a computed cell height. Implementations are Absolute
// and Relative.
type Adjustment interface {
	adjust(cellHeight float64) float64
}

// Absolute adds a fixed number of pixels to the cell height.
type Absolute int

func (a Absolute) adjust(cellHeight float64) float64 { return cellHeight + float64(a) }

// Relative scales the cell height by a factor, truncating the result
// toward zero.
type Relative float64

func (r Relative) adjust(cellHeight float64) float64 {
	return math.Floor(cellHeight * float64(r))
}

// AdjustLineHeight applies adj to cellHeight. A nil adjustment leaves the
// height unchanged.
func AdjustLineHeight(cellHeight float64, adj Adjustment) float64 {
	if adj == nil {
		return cellHeight
	}
	return adj.adjust(cellHeight)
}
