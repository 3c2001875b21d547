// SPDX-License-Identifier: MIT

// Package raster turns chords between pins into pixel lists and memoizes them.
//
// Line is a digital differential analyzer (DDA): with steps = max(|dx|,|dy|)
// it emits the points from + round(i·d/steps) for i in [1, steps). Both
// endpoints are excluded because they are pin centres, not ink targets.
// The result is an 8-connected approximation of the ideal segment and
// Line(a,b) is exactly the reverse of Line(b,a).
//
// Cache maps an unordered pin pair to its pixel list. Every pair is
// rasterized at most once per Cache, lists are never invalidated (pins do not
// move), and the cache is safe for concurrent Get calls.
//
// Complexity:
//
//   - Line:      O(max(|dx|,|dy|)) time and memory.
//   - Cache.Get: O(1) amortized after the first build of a pair.
package raster
