//go:build !unix

package spawn

import "fmt"

type DetachOptions struct {
	NewSession bool
	Redirect   bool
}

func Detach(opts DetachOptions) (child bool, err error) {
	return false, fmt.Errorf("spawn: detach is unsupported on this platform")
}

func RedirectStdStreams(path string) error {
	return fmt.Errorf("spawn: stream redirection is unsupported on this platform")
}
