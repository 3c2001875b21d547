// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"image"
	"slices"
)

const kindCanvas = "Canvas"

// DefaultPinMark is the intensity written at each pin when a canvas is
// initialized from a pin layout.
const DefaultPinMark = 255

// Canvas is a mutable W×H ink accumulator.
// It is not safe for concurrent mutation; concurrent readers are fine as
// long as no Add/MarkPins runs at the same time.
type Canvas struct {
	dims
	data []int
}

var _ View = (*Canvas)(nil)

// NewCanvas returns a zeroed width×height canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	d, err := newDims(width, height)
	if err != nil {
		return nil, fmt.Errorf("NewCanvas(%d,%d): %w", width, height, err)
	}
	return &Canvas{dims: d, data: make([]int, width*height)}, nil
}

// MarkPins sets every in-bounds pin pixel to value. Pins outside the canvas
// are ignored. Returns the number of pixels written.
func (c *Canvas) MarkPins(pins []image.Point, value int) int {
	n := 0
	for _, p := range pins {
		if c.InBounds(p.X, p.Y) {
			c.data[c.index(p.X, p.Y)] = value
			n++
		}
	}
	return n
}

// Add increases every in-bounds pixel of pts by delta, in place.
// Out-of-bounds points are skipped. Returns the number of pixels written.
func (c *Canvas) Add(pts []image.Point, delta int) int {
	n := 0
	for _, p := range pts {
		if c.InBounds(p.X, p.Y) {
			c.data[c.index(p.X, p.Y)] += delta
			n++
		}
	}
	return n
}

// At returns the accumulated value at (x,y) or ErrOutOfRange.
func (c *Canvas) At(x, y int) (int, error) {
	if !c.InBounds(x, y) {
		return 0, gridErrorf(kindCanvas, "At", x, y, ErrOutOfRange)
	}
	return c.data[c.index(x, y)], nil
}

// Value returns the accumulated value at (x,y), or 0 outside bounds.
func (c *Canvas) Value(x, y int) int {
	if !c.InBounds(x, y) {
		return 0
	}
	return c.data[c.index(x, y)]
}

// Max returns the largest accumulated value.
func (c *Canvas) Max() int {
	return slices.Max(c.data)
}

// Clone returns a deep copy.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{dims: c.dims, data: slices.Clone(c.data)}
}

// Equal reports whether o has the same shape and values.
func (c *Canvas) Equal(o *Canvas) bool {
	if o == nil {
		return false
	}
	return c.dims == o.dims && slices.Equal(c.data, o.data)
}

// View returns c as a read-only surface.
func (c *Canvas) View() View { return c }
