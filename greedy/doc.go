// SPDX-License-Identifier: MIT

// Package greedy runs the string-art selection loop.
//
// What:
//
//   - Starting from a configured pin, every step scores each chord from the
//     current pin to every other pin except itself and its two ring
//     neighbours, commits the best one to the canvas, appends its pin to the
//     sequence, and moves there.
//   - The loop runs exactly the configured number of steps. There is no
//     residual-error stopping rule and no backtracking.
//
// Determinism:
//
//   - Candidates are enumerated by relative offset from the current pin,
//     k = 2 … P−2, i.e. pin (current+k) mod P.
//   - The winner is the first candidate reaching the maximum (strict >).
//   - Parallel scoring does not change the outcome: scores are written to
//     per-candidate slots and reduced sequentially in enumeration order.
//
// Concurrency:
//
//   - Scoring inside a step fans out over WithWorkers goroutines
//     (golang.org/x/sync/errgroup). They only read the Target and Canvas.
//   - The commit runs after all scorers have returned, on the caller's
//     goroutine, so canvas writes never race scoring reads.
//   - The context passed via WithContext is checked once per step.
//
// Errors:
//
//   - ErrNilInput: nil target.
//   - ErrInvalidConfiguration: bad option values, pin count < 3, start pin
//     out of range.
//   - ErrDimensionMismatch: target and layout (or shared cache) disagree.
//   - ErrNoEligibleCandidate: a step was requested with no non-neighbour pin.
//
// Complexity per step: O(P·L) where L is the average chord length in pixels.
package greedy
