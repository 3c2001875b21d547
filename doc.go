// SPDX-License-Identifier: MIT

// Package stringart turns a raster image into a string-art winding plan:
// an ordered sequence of pins on a circle such that stretching a single
// thread from pin to pin, in order, approximates the picture.
//
// What is inside?
//
//	A small, deterministic toolkit:
//		• pins   : evenly spaced pin layout on a circle + spacing advisory
//		• raster : DDA chord rasterizer and a concurrent, build-once line cache
//		• grid   : read-only Target grid and mutable Canvas accumulator
//		• score  : per-chord desirability ratio
//		• greedy : the selection loop that appends the best chord each step
//		• listing: chunked human-readable sequence + summary statistics
//		• imaging: decode, crop, scale, grayscale and invert source images
//		• render : PNG (with tEXt metadata) and SVG outputs
//		• config : YAML configuration with validation
//		• store  : SQLite run history
//
// The algorithm is a greedy heuristic: each step scores every chord from the
// current pin (except to itself and its two ring neighbours) against what is
// still missing from the target, commits the best one, and moves on. There is
// no backtracking and no convergence test; the loop always runs its full
// step budget.
//
// Quick ASCII example (P=8, start at 0):
//
//	      6
//	  5       7
//	4     ╳     0      0 → 4 → 1 → 5 → …
//	  3       1
//	      2
//
// See cmd/stringart for the end-to-end CLI.
package stringart
