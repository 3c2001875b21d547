// SPDX-License-Identifier: MIT

// Package pins computes the pin layout of a circular string-art board.
//
// What:
//
//   - Generate places P pins evenly on a circle centred on a W×H canvas.
//   - The radius is round(min(W,H)/2) minus a configurable safety gap, so that
//     chords never touch the canvas border.
//   - Layout exposes ring adjacency helpers (Neighbors, Adjacent) used by the
//     selector to skip degenerate near-zero chords.
//   - CheckSpacing is an advisory: given the physical board diameter in mm it
//     reports whether adjacent pins stay at least MinPinDistanceMM apart.
//
// Determinism:
//
//   - Pin i sits at angle i·2π/P; index order is the ring order.
//   - Coordinates are rounded with math.Round (half away from zero).
//
// Errors:
//
//   - ErrTooFewPins: fewer than MinPins pins requested.
//   - ErrInvalidGeometry: non-positive canvas size or radius after the gap.
//   - ErrPinsTooClose: advisory only; the caller decides whether to abort.
package pins
