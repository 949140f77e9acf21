package dpi

import (
	"fmt"
	"sync"

	"github.com/sonoshi/mado/platform"
	"github.com/sonoshi/mado/util/log"
)

type cacheState int

const (
	stateEmpty cacheState = iota
	stateResolved
	stateOverridden
)

// Cache memoizes resolved display metrics for the process. The logical DPI
// is resolved at most once unless an override supersedes it; the physical
// DPI is re-queried whenever asked for after the first resolution, since an
// override only pins the logical component.
//
// Construct one Cache at startup and share it by pointer. All state is
// guarded by an internal mutex, so concurrent use is fine.
type Cache struct {
	resolver *Resolver
	caps     *platform.Capabilities

	mu         sync.Mutex
	state      cacheState
	metrics    Metrics
	onOverride []func()
}

// NewCache builds an empty cache resolving through r for the platform
// described by caps.
func NewCache(r *Resolver, caps *platform.Capabilities) *Cache {
	return &Cache{resolver: r, caps: caps}
}

// OnOverride registers f to run after every accepted override, outside the
// cache lock. Downstream memoizations register their invalidation here.
func (c *Cache) OnOverride(f func()) {
	c.mu.Lock()
	c.onOverride = append(c.onOverride, f)
	c.mu.Unlock()
}

// Logical returns the logical DPI. A non-nil override is stored and
// returned immediately, short-circuiting resolution and superseding any
// prior value; otherwise the first call resolves through the fallback
// chain and later calls return the stored value unchanged.
func (c *Cache) Logical(override *Pair) (Pair, error) {
	if override != nil {
		if !override.Valid() {
			return Pair{}, fmt.Errorf("dpi: override %+v: both components must be positive", *override)
		}
		c.mu.Lock()
		c.state = stateOverridden
		c.metrics.Logical = *override
		hooks := append([]func(){}, c.onOverride...)
		c.mu.Unlock()
		log.Debugf("dpi: logical dpi overridden to (%g, %g)", override.X, override.Y)
		for _, f := range hooks {
			f()
		}
		return *override, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateEmpty {
		return c.metrics.Logical, nil
	}
	logical, err := c.resolver.LogicalDPI(c.caps)
	if err != nil {
		return Pair{}, err
	}
	c.metrics.Logical = logical
	c.state = stateResolved
	log.Debugf("dpi: logical dpi resolved to (%g, %g)", logical.X, logical.Y)
	return logical, nil
}

// Full returns physical and logical DPI together. On the first call both
// are resolved and stored; afterwards the physical side is queried fresh
// each time and only the logical side comes from the cache.
func (c *Cache) Full() (Metrics, error) {
	c.mu.Lock()
	empty := c.state == stateEmpty
	c.mu.Unlock()

	physical, err := c.resolver.PhysicalDPI()
	if err != nil {
		return Metrics{}, err
	}
	if empty {
		logical, err := c.resolver.LogicalDPI(c.caps)
		if err != nil {
			return Metrics{}, err
		}
		c.mu.Lock()
		// Re-check: an override may have raced the resolution.
		if c.state == stateEmpty {
			c.metrics = Metrics{Physical: physical, Logical: logical}
			c.state = stateResolved
		} else {
			c.metrics.Physical = physical
		}
		m := c.metrics
		c.mu.Unlock()
		return m, nil
	}

	c.mu.Lock()
	c.metrics.Physical = physical
	m := c.metrics
	c.mu.Unlock()
	return m, nil
}

// Reset forgets all resolved and overridden state. It exists for tests and
// for hosts that replace their windowing backend at runtime; a process
// normally never resets its cache.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.state = stateEmpty
	c.metrics = Metrics{}
	c.mu.Unlock()
}
