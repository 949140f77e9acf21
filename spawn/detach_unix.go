//go:build unix

package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// detachedEnv marks the re-executed child so it does not detach again.
const detachedEnv = "MADO_DETACHED"

// DetachOptions selects which detach steps run.
type DetachOptions struct {
	// NewSession starts the child in its own session, losing the
	// controlling terminal.
	NewSession bool
	// Redirect points the child's standard streams at the null device.
	Redirect bool
}

// Detach re-executes the current binary as a session leader with its
// standard streams redirected, the closest a Go process gets to the
// classic fork/setsid dance. The parent receives child=false and should
// exit; the re-executed process receives child=true and continues.
func Detach(opts DetachOptions) (child bool, err error) {
	if os.Getenv(detachedEnv) == "1" {
		if opts.Redirect {
			if err := RedirectStdStreams(os.DevNull); err != nil {
				return true, err
			}
		}
		return true, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return false, fmt.Errorf("spawn: detach: %w", err)
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Env = append(os.Environ(), detachedEnv+"=1")
	if opts.NewSession {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	}
	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("spawn: detach: %w", err)
	}
	return false, nil
}

// RedirectStdStreams points stdin, stdout and stderr at path.
func RedirectStdStreams(path string) error {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("spawn: redirect to %s: %w", path, err)
	}
	defer unix.Close(fd)
	for _, std := range []int{0, 1, 2} {
		if err := dupTo(fd, std); err != nil {
			return fmt.Errorf("spawn: redirect fd %d: %w", std, err)
		}
	}
	return nil
}
