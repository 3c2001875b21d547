// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for non-positive dimensions or a value buffer
	// whose length does not match width*height.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// gridErrorf attaches the receiver type, method and coordinates to err.
func gridErrorf(kind, method string, x, y int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, x, y, err)
}
