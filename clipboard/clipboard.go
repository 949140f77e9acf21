// Package clipboard reads and writes the primary selection. A host with a
// native clipboard integration installs its callbacks via SetFuncs; without
// them the xsel utility is spawned. macOS has no primary selection, so both
// operations are no-ops there.
package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/sonoshi/mado/platform"
)

// Funcs is a platform clipboard callback pair installed by the host.
type Funcs struct {
	Get func() ([]byte, error)
	Set func([]byte) error
}

// Clipboard accesses the primary selection of the running session.
type Clipboard struct {
	caps  *platform.Capabilities
	funcs *Funcs

	// run executes an external helper; swapped in tests.
	run func(stdin string, name string, arg ...string) (string, error)
}

// New builds a Clipboard for the given platform, using the xsel helper
// until SetFuncs installs native callbacks.
func New(caps *platform.Capabilities) *Clipboard {
	return &Clipboard{caps: caps, run: runCommand}
}

// SetFuncs installs native clipboard callbacks, replacing the subprocess
// path. nil restores the subprocess path.
func (c *Clipboard) SetFuncs(funcs *Funcs) { c.funcs = funcs }

// SetPrimarySelection stores text into the primary selection.
func (c *Clipboard) SetPrimarySelection(text string) error {
	if c.caps.IsMacOS() {
		return nil // there is no primary selection on macOS
	}
	if f := c.funcs; f != nil && f.Set != nil {
		return f.Set([]byte(text))
	}
	if _, err := c.run(text, "xsel", "-i", "-p"); err != nil {
		return fmt.Errorf("clipboard: set primary selection: %w", err)
	}
	return nil
}

// PrimarySelection returns the current primary selection, empty when there
// is none.
func (c *Clipboard) PrimarySelection() (string, error) {
	if c.caps.IsMacOS() {
		return "", nil // there is no primary selection on macOS
	}
	if f := c.funcs; f != nil && f.Get != nil {
		raw, err := f.Get()
		if err != nil {
			return "", fmt.Errorf("clipboard: get primary selection: %w", err)
		}
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
	}
	out, err := c.run("", "xsel", "-p")
	if err != nil {
		return "", fmt.Errorf("clipboard: get primary selection: %w", err)
	}
	if out != "" {
		// without re-setting, repeated pastes from some owners go stale.
		if err := c.SetPrimarySelection(out); err != nil {
			return out, err
		}
	}
	return out, nil
}

func runCommand(stdin string, name string, arg ...string) (string, error) {
	cmd := exec.Command(name, arg...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}
