//go:build linux

package spawn

import "golang.org/x/sys/unix"

// dup2 is unavailable on some linux architectures, dup3 covers all.
func dupTo(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
