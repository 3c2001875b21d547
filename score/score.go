// SPDX-License-Identifier: MIT

// Package score rates how much a candidate chord would help.
//
// For every pixel on the chord the scorer compares the target with the
// canvas as it would look after the chord is drawn:
//
//	diff = target(x,y) − (canvas(x,y) + weight)
//
// Negative diffs (overshoot) accumulate into regressions, the rest into
// progressions. The seeds progressions=1 and regressions=−1 avoid a
// division by zero and make near-empty chords score close to 1.
// The ratio |progressions| / |regressions| is the desirability; higher is
// better. It is a heuristic proxy, not a distance metric.
package score

import (
	"image"
	"math"

	"github.com/katalvlaran/stringart/grid"
)

const (
	seedProgressions = 1
	seedRegressions  = -1
)

// Ratio scores the chord given by pixels against target and canvas.
// Pixels outside either surface are skipped. Ratio only reads its inputs,
// so it may run concurrently for different chords over the same canvas.
func Ratio(target, canvas grid.View, pixels []image.Point, weight int) float64 {
	progressions, regressions := Tally(target, canvas, pixels, weight)
	return math.Abs(float64(progressions)) / math.Abs(float64(regressions))
}

// Tally returns the seeded progression and regression sums behind Ratio.
func Tally(target, canvas grid.View, pixels []image.Point, weight int) (progressions, regressions int) {
	progressions, regressions = seedProgressions, seedRegressions
	for _, p := range pixels {
		if !target.InBounds(p.X, p.Y) || !canvas.InBounds(p.X, p.Y) {
			continue
		}
		diff := target.Value(p.X, p.Y) - (canvas.Value(p.X, p.Y) + weight)
		if diff < 0 {
			regressions += diff
		} else {
			progressions += diff
		}
	}
	return progressions, regressions
}
