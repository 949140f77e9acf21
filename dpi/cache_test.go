package dpi

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sonoshi/mado/platform"
	mock_winsys "github.com/sonoshi/mado/winsys/mock"
)

func newTestCache(t *testing.T) (*Cache, *mock_winsys.MockLibrary) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	win := mock_winsys.NewMockLibrary(ctrl)
	r := NewResolver(win)
	r.xrdbDPI = func(uintptr) (float64, bool) { return 0, false }
	return NewCache(r, &platform.Capabilities{OS: "linux"}), win
}

func TestCacheLogicalIdempotent(t *testing.T) {
	c, win := newTestCache(t)
	// resolution runs exactly once no matter how often Logical is asked.
	win.EXPECT().PrimaryContentScale().Return(1.5, 1.5, nil).Times(1)

	var first Pair
	for i := 0; i < 5; i++ {
		got, err := c.Logical(nil)
		if err != nil {
			t.Fatalf("Logical() error = %v", err)
		}
		if i == 0 {
			first = got
			if (got != Pair{144, 144}) {
				t.Fatalf("Logical() = %+v, want {144 144}", got)
			}
		} else if got != first {
			t.Errorf("call %d: Logical() = %+v, want %+v", i, got, first)
		}
	}
}

func TestCacheOverridePrecedence(t *testing.T) {
	c, _ := newTestCache(t)
	// no mock expectations: resolution must never run.

	ov := Pair{200, 200}
	got, err := c.Logical(&ov)
	if err != nil {
		t.Fatalf("Logical(override) error = %v", err)
	}
	if got != ov {
		t.Fatalf("Logical(override) = %+v, want %+v", got, ov)
	}
	for i := 0; i < 3; i++ {
		got, err := c.Logical(nil)
		if err != nil {
			t.Fatalf("Logical() error = %v", err)
		}
		if got != ov {
			t.Errorf("Logical() after override = %+v, want %+v", got, ov)
		}
	}
}

func TestCacheOverrideSupersedesResolved(t *testing.T) {
	c, win := newTestCache(t)
	win.EXPECT().PrimaryContentScale().Return(1.0, 1.0, nil).Times(1)

	if _, err := c.Logical(nil); err != nil {
		t.Fatal(err)
	}
	ov := Pair{300, 300}
	if _, err := c.Logical(&ov); err != nil {
		t.Fatal(err)
	}
	got, err := c.Logical(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != ov {
		t.Errorf("Logical() = %+v, want override %+v", got, ov)
	}
}

func TestCacheOverrideInvalid(t *testing.T) {
	c, _ := newTestCache(t)
	for _, ov := range []Pair{{}, {0, 96}, {-96, 96}} {
		ov := ov
		if _, err := c.Logical(&ov); err == nil {
			t.Errorf("Logical(%+v) should reject non-positive override", ov)
		}
	}
}

func TestCacheFull(t *testing.T) {
	c, win := newTestCache(t)
	// first Full resolves both; the second re-queries only the physical side.
	win.EXPECT().PhysicalDPI().Return(100.0, 100.0, nil).Times(1)
	win.EXPECT().PrimaryContentScale().Return(2.0, 2.0, nil).Times(1)

	m, err := c.Full()
	if err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	if (m != Metrics{Physical: Pair{100, 100}, Logical: Pair{192, 192}}) {
		t.Fatalf("Full() = %+v", m)
	}

	win.EXPECT().PhysicalDPI().Return(105.0, 105.0, nil).Times(1)
	m, err = c.Full()
	if err != nil {
		t.Fatalf("second Full() error = %v", err)
	}
	if (m.Physical != Pair{105, 105}) {
		t.Errorf("second Full() physical = %+v, want fresh {105 105}", m.Physical)
	}
	if (m.Logical != Pair{192, 192}) {
		t.Errorf("second Full() logical = %+v, want cached {192 192}", m.Logical)
	}
}

func TestCacheFullAfterOverride(t *testing.T) {
	c, win := newTestCache(t)
	ov := Pair{200, 200}
	if _, err := c.Logical(&ov); err != nil {
		t.Fatal(err)
	}

	win.EXPECT().PhysicalDPI().Return(96.0, 96.0, nil).Times(1)
	m, err := c.Full()
	if err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	if m.Logical != ov {
		t.Errorf("Full() logical = %+v, want pinned override %+v", m.Logical, ov)
	}
	if (m.Physical != Pair{96, 96}) {
		t.Errorf("Full() physical = %+v, want {96 96}", m.Physical)
	}
}

func TestCacheReset(t *testing.T) {
	c, win := newTestCache(t)
	win.EXPECT().PrimaryContentScale().Return(1.0, 1.0, nil).Times(1)
	if _, err := c.Logical(nil); err != nil {
		t.Fatal(err)
	}

	c.Reset()

	win.EXPECT().PrimaryContentScale().Return(1.25, 1.25, nil).Times(1)
	got, err := c.Logical(nil)
	if err != nil {
		t.Fatal(err)
	}
	if (got != Pair{120, 120}) {
		t.Errorf("Logical() after Reset = %+v, want {120 120}", got)
	}
}
