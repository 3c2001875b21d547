// SPDX-License-Identifier: MIT

package listing

import "errors"

var (
	// ErrEmptySequence is returned when there is nothing to list or summarize.
	ErrEmptySequence = errors.New("listing: empty sequence")

	// ErrPinIndex indicates a sequence entry outside the layout.
	ErrPinIndex = errors.New("listing: pin index out of range")

	// ErrBadChunk is returned for a non-positive chunk size.
	ErrBadChunk = errors.New("listing: chunk size must be positive")
)
