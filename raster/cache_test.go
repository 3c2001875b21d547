// SPDX-License-Identifier: MIT

package raster_test

import (
	"image"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/raster"
)

// countingRasterizer wraps raster.Line and counts invocations.
func countingRasterizer(n *atomic.Int64) raster.Rasterizer {
	return func(from, to image.Point) ([]image.Point, error) {
		n.Add(1)
		return raster.Line(from, to)
	}
}

func testLayout(t *testing.T, count int) pins.Layout {
	t.Helper()
	l, err := pins.Generate(200, 200, count)
	require.NoError(t, err)
	return l
}

// TestKey_Canonical verifies the unordered key packing.
func TestKey_Canonical(t *testing.T) {
	require.Equal(t, raster.Key(3, 7), raster.Key(7, 3))
	require.Equal(t, uint64(7)<<32|3, raster.Key(3, 7))
	require.NotEqual(t, raster.Key(1, 2), raster.Key(2, 3))
	require.Equal(t, uint64(0), raster.Key(0, 0))
}

// TestCache_Errors checks index validation and degenerate pairs.
func TestCache_Errors(t *testing.T) {
	c := raster.NewCache(testLayout(t, 8).Pins)

	_, err := c.Get(-1, 2)
	require.ErrorIs(t, err, raster.ErrPinIndex)
	_, err = c.Get(0, 8)
	require.ErrorIs(t, err, raster.ErrPinIndex)
	_, err = c.Get(4, 4)
	require.ErrorIs(t, err, raster.ErrDegenerateLine)

	// Coincident coordinates under distinct indices are degenerate too.
	dup := raster.NewCache([]image.Point{{1, 1}, {1, 1}, {5, 5}})
	_, err = dup.Get(0, 1)
	require.ErrorIs(t, err, raster.ErrDegenerateLine)
	require.Zero(t, dup.Stats().Size, "failed builds must not be cached")
}

// TestCache_IdempotentAndBuildOnce verifies repeated and reversed lookups
// return identical lists while each unordered pair is rasterized once.
func TestCache_IdempotentAndBuildOnce(t *testing.T) {
	var calls atomic.Int64
	l := testLayout(t, 12)
	c := raster.NewCache(l.Pins, raster.WithRasterizer(countingRasterizer(&calls)))

	first, err := c.Get(2, 9)
	require.NoError(t, err)
	again, err := c.Get(2, 9)
	require.NoError(t, err)
	reversed, err := c.Get(9, 2)
	require.NoError(t, err)

	require.Equal(t, first, again)
	require.Equal(t, first, reversed)
	require.EqualValues(t, 1, calls.Load())

	// The cached list is the rasterization from the larger index.
	want, err := raster.Line(l.Pins[9], l.Pins[2])
	require.NoError(t, err)
	require.Equal(t, want, first)

	st := c.Stats()
	require.EqualValues(t, 1, st.Builds)
	require.EqualValues(t, 1, st.Misses)
	require.EqualValues(t, 2, st.Hits)
	require.Equal(t, 1, st.Size)
	require.Contains(t, c.String(), "builds=1")
}

// TestCache_ConcurrentBuildOnce hammers every pair from many goroutines and
// asserts the rasterizer ran exactly once per unordered pair.
func TestCache_ConcurrentBuildOnce(t *testing.T) {
	const n = 24
	var calls atomic.Int64
	c := raster.NewCache(testLayout(t, n).Pins, raster.WithRasterizer(countingRasterizer(&calls)))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					if a == b {
						continue
					}
					// Alternate the direction per worker.
					x, y := a, b
					if w%2 == 1 {
						x, y = b, a
					}
					_, err := c.Get(x, y)
					require.NoError(t, err)
				}
			}
		}(w)
	}
	wg.Wait()

	pairs := int64(n * (n - 1) / 2)
	require.Equal(t, pairs, calls.Load())
	require.Equal(t, pairs, c.Stats().Builds)
	require.Equal(t, int(pairs), c.Stats().Size)
}

// TestWithRasterizer_Panics rejects a nil rasterizer.
func TestWithRasterizer_Panics(t *testing.T) {
	require.Panics(t, func() { raster.WithRasterizer(nil) })
}
