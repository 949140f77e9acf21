// Package shinyscreen implements winsys.Library from the pixels-per-point
// value a shiny driver delivers with each size event. A GUI host forwards
// size.Event to Library so metric queries track the live window.
package shinyscreen

import (
	"fmt"
	"sync"

	"golang.org/x/exp/shiny/unit"
	"golang.org/x/mobile/event/size"

	"github.com/sonoshi/mado/winsys"
)

// baselineDPI is the density a content scale of 1.0 corresponds to.
const baselineDPI = 96.0

// Library converts the driver-reported pixels-per-point into DPI queries.
// The zero value is usable; queries fail until the first SetSize.
type Library struct {
	mu          sync.Mutex
	pixelsPerPt float32
}

// New returns an empty Library waiting for its first size event.
func New() *Library { return &Library{} }

// SetSize records the scale carried by a size event.
func (l *Library) SetSize(e size.Event) {
	l.mu.Lock()
	l.pixelsPerPt = e.PixelsPerPt
	l.mu.Unlock()
}

func (l *Library) dpi() (float64, error) {
	l.mu.Lock()
	ppp := l.pixelsPerPt
	l.mu.Unlock()
	if ppp <= 0 {
		return 0, fmt.Errorf("shinyscreen: no size event received yet")
	}
	// This works fine on the assumption it's a single monitor.
	return float64(ppp) * unit.PointsPerInch, nil
}

// PhysicalDPI reports the driver density. Shiny exposes no separate
// physical query, so this equals the scaled density.
func (l *Library) PhysicalDPI() (x, y float64, err error) {
	d, err := l.dpi()
	if err != nil {
		return 0, 0, err
	}
	return d, d, nil
}

// PrimaryContentScale derives the scale factor from the same density,
// relative to the 96 DPI baseline. Before the first size event the query
// reports winsys.ErrUnsupported so resolution can fall through.
func (l *Library) PrimaryContentScale() (x, y float64, err error) {
	d, err := l.dpi()
	if err != nil {
		return 0, 0, winsys.ErrUnsupported
	}
	s := d / baselineDPI
	return s, s, nil
}
