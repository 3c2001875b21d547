// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
)

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithRasterizer replaces Line as the pixel producer (e.g. to instrument
// builds in tests). Panics on nil.
func WithRasterizer(fn Rasterizer) CacheOption {
	if fn == nil {
		panic("raster: WithRasterizer(nil)")
	}
	return func(c *Cache) {
		c.rasterize = fn
	}
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits   int64
	Misses int64
	Builds int64
	Size   int
}

// Cache memoizes rasterized chords keyed by unordered pin-index pairs.
// The zero value is not usable; construct with NewCache.
type Cache struct {
	points    []image.Point
	rasterize Rasterizer

	mu    sync.RWMutex
	lines map[uint64][]image.Point

	hits   atomic.Int64
	misses atomic.Int64
	builds atomic.Int64
}

// NewCache creates an empty cache over the given pin coordinates.
// The slice is copied; later changes by the caller have no effect.
func NewCache(points []image.Point, opts ...CacheOption) *Cache {
	c := &Cache{
		points:    append([]image.Point(nil), points...),
		rasterize: Line,
		lines:     make(map[uint64][]image.Point),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key packs an unordered pair of pin indices into one integer: the larger
// index occupies the high 32 bits. Key(a,b) == Key(b,a) for all a, b.
func Key(a, b int) uint64 {
	if a < b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// Len returns the number of pins the cache was built over.
func (c *Cache) Len() int { return len(c.points) }

// Get returns the pixels of the chord between pins a and b, rasterizing it on
// first use. The returned slice is shared and MUST NOT be modified.
//
// Errors: ErrPinIndex for out-of-range indices, ErrDegenerateLine for a == b
// or coincident pins. Failed builds are not cached.
func (c *Cache) Get(a, b int) ([]image.Point, error) {
	n := len(c.points)
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, fmt.Errorf("Cache.Get(%d,%d): n=%d: %w", a, b, n, ErrPinIndex)
	}
	if a == b {
		return nil, fmt.Errorf("Cache.Get(%d,%d): %w", a, b, ErrDegenerateLine)
	}

	key := Key(a, b)

	// Fast path: shared read lock.
	c.mu.RLock()
	line, ok := c.lines[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return line, nil
	}

	// Slow path: insert-if-absent under the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok = c.lines[key]; ok {
		c.hits.Add(1)
		return line, nil
	}
	c.misses.Add(1)

	hi, lo := max(a, b), min(a, b)
	line, err := c.rasterize(c.points[hi], c.points[lo])
	if err != nil {
		return nil, fmt.Errorf("Cache.Get(%d,%d): %w", a, b, err)
	}
	c.builds.Add(1)
	c.lines[key] = line
	return line, nil
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.lines)
	c.mu.RUnlock()

	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Builds: c.builds.Load(),
		Size:   size,
	}
}

// String implements fmt.Stringer.
func (c *Cache) String() string {
	s := c.Stats()
	rate := 0.0
	if total := s.Hits + s.Misses; total > 0 {
		rate = float64(s.Hits) / float64(total) * 100
	}
	return fmt.Sprintf("raster.Cache[size=%d, hits=%d, misses=%d, builds=%d, hitRate=%.1f%%]",
		s.Size, s.Hits, s.Misses, s.Builds, rate)
}
