package dpi

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sonoshi/mado/platform"
	"github.com/sonoshi/mado/winsys"
	mock_winsys "github.com/sonoshi/mado/winsys/mock"
)

func failingXrdb(t *testing.T) func(uintptr) (float64, bool) {
	return func(uintptr) (float64, bool) {
		t.Error("X resource database should not be consulted")
		return 0, false
	}
}

func TestResolverLogicalDPIMacOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PhysicalDPI().Return(110.0, 112.0, nil)

	r := NewResolver(win)
	r.xrdbDPI = failingXrdb(t)

	got, err := r.LogicalDPI(&platform.Capabilities{OS: "darwin"})
	if err != nil {
		t.Fatalf("LogicalDPI() error = %v", err)
	}
	if (got != Pair{110, 112}) {
		t.Errorf("LogicalDPI() = %+v, want {110 112}", got)
	}
}

func TestResolverLogicalDPIContentScale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PrimaryContentScale().Return(2.0, 2.0, nil)

	r := NewResolver(win)
	r.xrdbDPI = failingXrdb(t)

	got, err := r.LogicalDPI(&platform.Capabilities{OS: "linux"})
	if err != nil {
		t.Fatalf("LogicalDPI() error = %v", err)
	}
	if (got != Pair{192, 192}) {
		t.Errorf("LogicalDPI() = %+v, want {192 192}", got)
	}
}

func TestResolverLogicalDPIXResourceFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PrimaryContentScale().Return(0.0, 0.0, winsys.ErrUnsupported)

	r := NewResolver(win)
	r.xrdbDPI = func(display uintptr) (float64, bool) {
		if display != 0xd15 {
			t.Errorf("xrdbDPI called with display %#x, want 0xd15", display)
		}
		return 120.5, true
	}

	caps := &platform.Capabilities{OS: "linux", Display: 0xd15}
	got, err := r.LogicalDPI(caps)
	if err != nil {
		t.Fatalf("LogicalDPI() error = %v", err)
	}
	if (got != Pair{120.5, 120.5}) {
		t.Errorf("LogicalDPI() = %+v, want {120.5 120.5}", got)
	}
}

func TestResolverLogicalDPIWaylandSkipsX11(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PrimaryContentScale().Return(0.0, 0.0, winsys.ErrUnsupported)
	win.EXPECT().PhysicalDPI().Return(96.0, 96.0, nil)

	r := NewResolver(win)
	r.xrdbDPI = failingXrdb(t)

	caps := &platform.Capabilities{OS: "linux", WaylandSession: true, Display: 0xd15}
	got, err := r.LogicalDPI(caps)
	if err != nil {
		t.Fatalf("LogicalDPI() error = %v", err)
	}
	if (got != Pair{96, 96}) {
		t.Errorf("LogicalDPI() = %+v, want {96 96}", got)
	}
}

// Simulates the native library being unavailable on a non-macOS,
// non-Wayland platform with an active display: resolution must still land
// on the physical density instead of failing.
func TestResolverGracefulDegradation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PrimaryContentScale().Return(0.0, 0.0, winsys.ErrUnsupported)
	win.EXPECT().PhysicalDPI().Return(101.0, 102.0, nil)

	r := NewResolver(win)
	r.xrdbDPI = func(uintptr) (float64, bool) { return 0, false }

	caps := &platform.Capabilities{OS: "linux", Display: 0xd15}
	got, err := r.LogicalDPI(caps)
	if err != nil {
		t.Fatalf("LogicalDPI() error = %v", err)
	}
	if (got != Pair{101, 102}) {
		t.Errorf("LogicalDPI() = %+v, want {101 102}", got)
	}
}

func TestResolverPhysicalDPIErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := errors.New("monitor enumeration failed")
	win := mock_winsys.NewMockLibrary(ctrl)
	win.EXPECT().PhysicalDPI().Return(0.0, 0.0, broken)

	r := NewResolver(win)
	if _, err := r.PhysicalDPI(); !errors.Is(err, broken) {
		t.Errorf("PhysicalDPI() error = %v, want wrapping %v", err, broken)
	}
}
