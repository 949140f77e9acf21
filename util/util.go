// Package util has small helpers shared across the module.
package util

import (
	"os"
	"regexp"
	"strings"
)

// FileExists reports whether file exists on the filesystem.
func FileExists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

var (
	controlPattern    = regexp.MustCompile("[\x00-\x19]")
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeTitle strips control characters from a window title and collapses
// whitespace runs into a single space.
func SanitizeTitle(title string) string {
	return whitespacePattern.ReplaceAllString(controlPattern.ReplaceAllString(title, ""), " ")
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base64OfInt encodes a non-negative integer as big-endian base64 digits
// using the standard alphabet. Zero encodes as "A".
func Base64OfInt(n uint64) string {
	var b strings.Builder
	digits := make([]byte, 0, 11)
	for {
		digits = append(digits, base64Chars[n%64])
		n /= 64
		if n == 0 {
			break
		}
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}
