// SPDX-License-Identifier: MIT

package pins

import "errors"

var (
	// ErrTooFewPins indicates a pin count below MinPins.
	ErrTooFewPins = errors.New("pins: pin count too small")

	// ErrInvalidGeometry indicates a non-positive canvas dimension or a pin
	// radius that drops to zero or below once the safety gap is subtracted.
	ErrInvalidGeometry = errors.New("pins: invalid geometry")

	// ErrPinsTooClose is the manufacturability advisory. It is NOT fatal for
	// the computation; callers may log it and continue.
	ErrPinsTooClose = errors.New("pins: adjacent pins closer than minimum distance")
)
