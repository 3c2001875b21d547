// SPDX-License-Identifier: MIT

package grid

// View is a read-only pixel surface.
type View interface {
	Width() int
	Height() int
	// InBounds reports whether (x,y) lies inside the surface.
	InBounds(x, y int) bool
	// Value returns the intensity at (x,y), or 0 outside bounds.
	Value(x, y int) int
}

// dims carries the shared shape and index arithmetic.
type dims struct {
	w, h int
}

func (d dims) Width() int  { return d.w }
func (d dims) Height() int { return d.h }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (d dims) InBounds(x, y int) bool {
	return x >= 0 && x < d.w && y >= 0 && y < d.h
}

// index maps (x,y) to a row-major offset: y*w + x.
func (d dims) index(x, y int) int {
	return y*d.w + x
}

// Coordinate converts a row-major offset back to (x,y).
func (d dims) Coordinate(idx int) (x, y int) {
	return idx % d.w, idx / d.w
}

func newDims(w, h int) (dims, error) {
	if w <= 0 || h <= 0 {
		return dims{}, ErrBadShape
	}
	return dims{w: w, h: h}, nil
}
