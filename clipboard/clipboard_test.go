package clipboard

import (
	"errors"
	"testing"

	"github.com/sonoshi/mado/platform"
)

func TestMacOSHasNoPrimarySelection(t *testing.T) {
	c := New(&platform.Capabilities{OS: "darwin"})
	c.run = func(string, string, ...string) (string, error) {
		t.Error("no helper may be spawned on macOS")
		return "", nil
	}
	if err := c.SetPrimarySelection("text"); err != nil {
		t.Errorf("SetPrimarySelection() error = %v", err)
	}
	got, err := c.PrimarySelection()
	if err != nil || got != "" {
		t.Errorf("PrimarySelection() = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestCallbacksBypassHelper(t *testing.T) {
	c := New(&platform.Capabilities{OS: "linux"})
	c.run = func(string, string, ...string) (string, error) {
		t.Error("callbacks installed, no helper may be spawned")
		return "", nil
	}

	var stored []byte
	c.SetFuncs(&Funcs{
		Get: func() ([]byte, error) { return stored, nil },
		Set: func(b []byte) error { stored = b; return nil },
	})

	if err := c.SetPrimarySelection("selected"); err != nil {
		t.Fatalf("SetPrimarySelection() error = %v", err)
	}
	got, err := c.PrimarySelection()
	if err != nil {
		t.Fatalf("PrimarySelection() error = %v", err)
	}
	if got != "selected" {
		t.Errorf("PrimarySelection() = %q, want %q", got, "selected")
	}
}

func TestCallbackInvalidUTF8Replaced(t *testing.T) {
	c := New(&platform.Capabilities{OS: "linux"})
	c.SetFuncs(&Funcs{
		Get: func() ([]byte, error) { return []byte{'o', 'k', 0xff}, nil },
	})
	got, err := c.PrimarySelection()
	if err != nil {
		t.Fatalf("PrimarySelection() error = %v", err)
	}
	if got != "ok�" {
		t.Errorf("PrimarySelection() = %q, want %q", got, "ok�")
	}
}

func TestHelperCommands(t *testing.T) {
	c := New(&platform.Capabilities{OS: "linux"})

	var calls [][]string
	c.run = func(stdin string, name string, arg ...string) (string, error) {
		calls = append(calls, append([]string{name, stdin}, arg...))
		if len(arg) == 1 { // xsel -p
			return "pasted", nil
		}
		return "", nil
	}

	got, err := c.PrimarySelection()
	if err != nil {
		t.Fatalf("PrimarySelection() error = %v", err)
	}
	if got != "pasted" {
		t.Errorf("PrimarySelection() = %q, want %q", got, "pasted")
	}
	// a successful get re-sets the selection to keep repeated pastes alive.
	if len(calls) != 2 {
		t.Fatalf("helper spawned %d times, want 2 (get then re-set)", len(calls))
	}
	if calls[1][1] != "pasted" {
		t.Errorf("re-set used stdin %q, want %q", calls[1][1], "pasted")
	}
}

func TestHelperFailure(t *testing.T) {
	c := New(&platform.Capabilities{OS: "linux"})
	c.run = func(string, string, ...string) (string, error) {
		return "", errors.New("no xsel")
	}
	if _, err := c.PrimarySelection(); err == nil {
		t.Error("PrimarySelection() should surface helper failure")
	}
	if err := c.SetPrimarySelection("x"); err == nil {
		t.Error("SetPrimarySelection() should surface helper failure")
	}
}
