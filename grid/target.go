// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"image"
)

const kindTarget = "Target"

// Target is an immutable W×H grid of desired ink intensities.
type Target struct {
	dims
	data []uint8
}

var _ View = (*Target)(nil)

// NewTarget copies values (row-major, len == width*height) into a Target.
func NewTarget(width, height int, values []uint8) (*Target, error) {
	d, err := newDims(width, height)
	if err != nil {
		return nil, fmt.Errorf("NewTarget(%d,%d): %w", width, height, err)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("NewTarget(%d,%d): len=%d: %w", width, height, len(values), ErrBadShape)
	}
	return &Target{dims: d, data: append([]uint8(nil), values...)}, nil
}

// UniformTarget returns a width×height Target filled with v.
func UniformTarget(width, height int, v uint8) (*Target, error) {
	d, err := newDims(width, height)
	if err != nil {
		return nil, fmt.Errorf("UniformTarget(%d,%d): %w", width, height, err)
	}
	data := make([]uint8, width*height)
	for i := range data {
		data[i] = v
	}
	return &Target{dims: d, data: data}, nil
}

// TargetFromRows builds a Target from a rectangular [y][x] slice.
func TargetFromRows(rows [][]uint8) (*Target, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("TargetFromRows: %w", ErrBadShape)
	}
	h, w := len(rows), len(rows[0])
	data := make([]uint8, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("TargetFromRows: %w", ErrNonRectangular)
		}
		data = append(data, row...)
	}
	return &Target{dims: dims{w: w, h: h}, data: data}, nil
}

// TargetFromGray converts a grayscale image into a Target. With invert set,
// dark pixels become high ink values (255 − gray), which is what a
// black-thread-on-white-board rendering wants.
func TargetFromGray(img *image.Gray, invert bool) (*Target, error) {
	if img == nil {
		return nil, fmt.Errorf("TargetFromGray: nil image: %w", ErrBadShape)
	}
	b := img.Bounds()
	d, err := newDims(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("TargetFromGray: %w", err)
	}
	data := make([]uint8, 0, d.w*d.h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Min.X, y)+d.w]
		for _, v := range row {
			if invert {
				v = 255 - v
			}
			data = append(data, v)
		}
	}
	return &Target{dims: d, data: data}, nil
}

// At returns the target value at (x,y) or ErrOutOfRange.
func (t *Target) At(x, y int) (uint8, error) {
	if !t.InBounds(x, y) {
		return 0, gridErrorf(kindTarget, "At", x, y, ErrOutOfRange)
	}
	return t.data[t.index(x, y)], nil
}

// Value returns the target value at (x,y), or 0 outside bounds.
func (t *Target) Value(x, y int) int {
	if !t.InBounds(x, y) {
		return 0
	}
	return int(t.data[t.index(x, y)])
}

// Pix returns a copy of the row-major values.
func (t *Target) Pix() []uint8 {
	return append([]uint8(nil), t.data...)
}
