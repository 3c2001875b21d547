// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrDegenerateLine indicates a zero-length segment (coincident endpoints).
	ErrDegenerateLine = errors.New("raster: degenerate line")

	// ErrPinIndex indicates a pin index outside the cache's point set.
	ErrPinIndex = errors.New("raster: pin index out of range")
)
