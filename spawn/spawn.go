// Package spawn launches external programs detached from the caller's
// standard streams, and detaches the process itself from its controlling
// terminal.
package spawn

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sonoshi/mado/platform"
)

// OpenCmd starts cmd with arg appended, with all standard streams
// discarded. It does not wait for completion.
func OpenCmd(cmd []string, arg string) error {
	if len(cmd) == 0 {
		return fmt.Errorf("spawn: empty command")
	}
	args := cmd[1:]
	if arg != "" {
		args = append(append([]string{}, args...), arg)
	}
	c := exec.Command(cmd[0], args...)
	// stdio stays nil: the child reads from and writes to the null device.
	if err := c.Start(); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	go c.Wait() // reap
	return nil
}

// DefaultURLProgram names the platform opener instead of a user command.
const DefaultURLProgram = "default"

// OpenURL hands url to program. The default program is "open" on macOS and
// "xdg-open" elsewhere; anything else is split into words, honoring quotes.
func OpenURL(caps *platform.Capabilities, url, program string) error {
	cmd, err := urlCommand(caps, program)
	if err != nil {
		return err
	}
	return OpenCmd(cmd, url)
}

func urlCommand(caps *platform.Capabilities, program string) ([]string, error) {
	if program == DefaultURLProgram || program == "" {
		if caps.IsMacOS() {
			return []string{"open"}, nil
		}
		return []string{"xdg-open"}, nil
	}
	cmd := SplitCommand(program)
	if len(cmd) == 0 {
		return nil, fmt.Errorf("spawn: blank URL program %q", program)
	}
	return cmd, nil
}

// SplitCommand splits a command line into words. Single and double quotes
// group words. A backslash escapes the next character, except inside
// single quotes, where nothing escapes; inside double quotes only `\"` and
// `\\` do, any other backslash stays literal.
func SplitCommand(line string) []string {
	var (
		words   []string
		current strings.Builder
		quote   rune
		escaped bool
		inWord  bool
	)
	for _, r := range line {
		switch {
		case escaped:
			if quote == '"' && r != '"' && r != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if escaped {
		// a trailing backslash escapes nothing; keep it literal.
		current.WriteRune('\\')
	}
	if inWord {
		words = append(words, current.String())
	}
	return words
}
