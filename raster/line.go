// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
)

// Rasterizer produces the pixels strictly between two endpoints.
type Rasterizer func(from, to image.Point) ([]image.Point, error)

// Line rasterizes the segment from→to with a DDA and returns the interior
// pixels in order from `from` towards `to`.
//
// Rounding is half away from zero and is always evaluated from the
// lexicographically smaller endpoint (by X, then Y); the other direction is
// the exact reverse, so Line(a,b) and Line(b,a) cover the same pixels.
//
// Returns ErrDegenerateLine when from == to.
func Line(from, to image.Point) ([]image.Point, error) {
	if from == to {
		return nil, fmt.Errorf("Line(%v,%v): %w", from, to, ErrDegenerateLine)
	}
	if less(to, from) {
		out := dda(to, from)
		reverse(out)
		return out, nil
	}
	return dda(from, to), nil
}

// dda walks from a to b; a != b is guaranteed by the caller.
func dda(a, b image.Point) []image.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))

	out := make([]image.Point, 0, steps-1)
	for i := 1; i < steps; i++ {
		out = append(out, image.Point{
			X: a.X + roundDiv(i*dx, steps),
			Y: a.Y + roundDiv(i*dy, steps),
		})
	}
	return out
}

// roundDiv returns n/d rounded half away from zero, for d > 0, in exact
// integer arithmetic.
func roundDiv(n, d int) int {
	if n >= 0 {
		return (2*n + d) / (2 * d)
	}
	return -((-2*n + d) / (2 * d))
}

func less(p, q image.Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func reverse(pts []image.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
