package dpi

import (
	"math"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultConvertCacheSize bounds the point-to-pixel memo. Hosts use a
// handful of distinct point sizes, so a small LRU is plenty.
const DefaultConvertCacheSize = 128

// Converter turns point sizes into pixel sizes using the cached logical
// DPI. Results are memoized per exact point value.
//
// By default the memo survives DPI overrides, preserving the behavior of
// handing out pixel sizes computed against the pre-override density;
// construct with invalidateOnOverride to drop the memo whenever the cache
// accepts an override instead.
type Converter struct {
	cache *Cache

	mu   sync.Mutex
	memo *lru.Cache // under mu, lru.Cache is not concurrency safe
}

// NewConverter builds a Converter over c.
func NewConverter(c *Cache, invalidateOnOverride bool) *Converter {
	cv := &Converter{
		cache: c,
		memo:  lru.New(DefaultConvertCacheSize),
	}
	if invalidateOnOverride {
		c.OnOverride(cv.Invalidate)
	}
	return cv
}

// PtToPx converts a point size to a rounded pixel size using the mean of
// the logical DPI axes. 72 points make an inch.
func (cv *Converter) PtToPx(pts float64) (int, error) {
	cv.mu.Lock()
	if v, ok := cv.memo.Get(pts); ok {
		cv.mu.Unlock()
		return v.(int), nil
	}
	cv.mu.Unlock()

	logical, err := cv.cache.Logical(nil)
	if err != nil {
		return 0, err
	}
	px := int(math.Round(pts * logical.Mean() / 72.0))

	cv.mu.Lock()
	cv.memo.Add(pts, px)
	cv.mu.Unlock()
	return px, nil
}

// Invalidate drops every memoized conversion.
func (cv *Converter) Invalidate() {
	cv.mu.Lock()
	cv.memo = lru.New(DefaultConvertCacheSize)
	cv.mu.Unlock()
}
