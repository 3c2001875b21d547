// SPDX-License-Identifier: MIT

// Package listing turns a pin sequence into the artefacts a maker works from:
// a chunked, numbered listing of pins and a short summary of the run.
//
// The listing is plain text, one line per chunk:
//
//	  1-10:   0 150  12 163  27 ...
//	 11-20: ...
//
// Step numbers are 1-based and count pins, so the first line starts with the
// start pin. Summary statistics (visit counts, unused pins, thread length)
// are computed from the sequence and its pins.Layout.
//
// Errors:
//
//   - ErrEmptySequence: the sequence has no entries.
//   - ErrPinIndex: an entry lies outside [0, P).
package listing
