// SPDX-License-Identifier: MIT

package pins

import (
	"fmt"
	"math"
)

// MinPinDistanceMM is the smallest centre-to-centre distance between
// adjacent pins that can be manufactured reliably.
const MinPinDistanceMM = 5.0

// Spacing describes the physical distance between adjacent pins.
type Spacing struct {
	BoardMM       float64 // board (pin circle) diameter; 0 = unknown
	PinDistanceMM float64 // chord length between adjacent pins
	MinDistanceMM float64 // threshold used for OK
	OK            bool
}

// CheckSpacing computes the adjacent-pin distance for count pins on a circle
// of diameter boardMM. A zero boardMM means "not provided" and always passes.
//
// When the distance is below MinPinDistanceMM the returned Spacing is still
// fully populated and the error wraps ErrPinsTooClose. This is advisory.
func CheckSpacing(count int, boardMM float64) (Spacing, error) {
	sp := Spacing{BoardMM: boardMM, MinDistanceMM: MinPinDistanceMM, OK: true}
	if count < MinPins {
		return sp, fmt.Errorf("CheckSpacing: count=%d: %w", count, ErrTooFewPins)
	}
	if boardMM < 0 || math.IsNaN(boardMM) || math.IsInf(boardMM, 0) {
		return sp, fmt.Errorf("CheckSpacing: board=%v: %w", boardMM, ErrInvalidGeometry)
	}
	if boardMM == 0 {
		return sp, nil
	}

	sp.PinDistanceMM = boardMM * math.Sin(math.Pi/float64(count))
	if sp.PinDistanceMM < MinPinDistanceMM {
		sp.OK = false
		return sp, fmt.Errorf("CheckSpacing: %.2fmm < %.2fmm: %w", sp.PinDistanceMM, MinPinDistanceMM, ErrPinsTooClose)
	}
	return sp, nil
}
