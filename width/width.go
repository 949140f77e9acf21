// Package width measures text in terminal cells, following unicode east
// asian width (http://unicode.org/reports/tr11/). Cell widths feed the
// same font and cell-size calculations as the dpi package.
package width

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// Default measures with the east asian context detected from the running
// environment.
var Default = NewCondition(runewidth.EastAsianWidth)

// memoSize bounds the string-width memo of a Condition.
const memoSize = 8192

// Condition measures cell widths under a fixed east asian context.
// Concurrent use is fine.
type Condition struct {
	eastAsian bool

	mu   sync.Mutex
	memo *lru.Cache // under mu, lru.Cache is not concurrency safe
}

// NewCondition returns a Condition for the given east asian context.
func NewCondition(isEastAsian bool) *Condition {
	return &Condition{eastAsian: isEastAsian, memo: lru.New(memoSize)}
}

// IsEastAsian reports the east asian context of the Condition.
func (c *Condition) IsEastAsian() bool { return c.eastAsian }

// RuneWidth returns the number of cells r occupies: 0 for NUL, 2 for wide
// and fullwidth kinds, 2 for ambiguous kinds in an east asian context,
// otherwise 1.
func (c *Condition) RuneWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if c.eastAsian {
			return 2
		}
		return 1
	default:
		return 1
	}
}

// StringWidth returns the number of cells s occupies. Results are
// memoized per string.
func (c *Condition) StringWidth(s string) int {
	c.mu.Lock()
	if v, ok := c.memo.Get(s); ok {
		c.mu.Unlock()
		return v.(int)
	}
	c.mu.Unlock()

	w := 0
	for _, r := range s {
		w += c.RuneWidth(r)
	}

	c.mu.Lock()
	c.memo.Add(s, w)
	c.mu.Unlock()
	return w
}

// RuneWidth measures r under the default condition.
func RuneWidth(r rune) int { return Default.RuneWidth(r) }

// StringWidth measures s under the default condition.
func StringWidth(s string) int { return Default.StringWidth(s) }
