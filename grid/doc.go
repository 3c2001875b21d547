// SPDX-License-Identifier: MIT

// Package grid holds the two pixel buffers of a string-art run.
//
// What:
//
//   - Target is the desired darkness per pixel (0–255, higher = more ink).
//     It is built once from the source image and never mutated afterwards.
//   - Canvas accumulates the ink deposited by committed chords. Values are
//     plain ints and are NOT clamped: a pixel crossed by many chords may
//     exceed 255. Clamping is a display concern (see package render).
//   - View is the read-only surface shared by both, used by the scorer so
//     that scoring can run in parallel while nothing writes.
//
// Storage:
//
//   - Row-major flat buffers, offset = y*Width + x.
//   - Public indexers (At) return ErrOutOfRange instead of panicking.
//   - Value is the unchecked hot-path accessor; it returns 0 outside bounds.
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions or a value buffer of wrong length.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfRange: coordinate outside the grid.
package grid
