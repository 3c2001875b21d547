// SPDX-License-Identifier: MIT

package pins

import (
	"fmt"
	"image"
	"math"

	"github.com/jbeda/geom"
)

const methodGenerate = "Generate"

// Layout is an immutable set of pins on a circle.
// Pins[i] is the pixel coordinate of pin i; consecutive indices are ring
// neighbours and the last pin wraps around to the first.
type Layout struct {
	Width, Height int
	Center        image.Point
	Radius        int
	Gap           int
	Pins          []image.Point
}

// Generate computes count pins evenly spaced on a circle centred on a
// width×height canvas.
//
//	center = (round(W/2), round(H/2))
//	radius = round(min(W,H)/2) − gap
//	pin_i  = center + (round(r·cos θ), round(r·sin θ)),  θ = i·2π/count
//
// Returns ErrTooFewPins for count < MinPins and ErrInvalidGeometry when the
// canvas is empty or the radius is not positive.
// Complexity: O(count) time and memory.
func Generate(width, height, count int, opts ...Option) (Layout, error) {
	cfg := newConfig(opts...)

	if count < MinPins {
		return Layout{}, fmt.Errorf("%s: count=%d < min=%d: %w", methodGenerate, count, MinPins, ErrTooFewPins)
	}
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%s: canvas %dx%d: %w", methodGenerate, width, height, ErrInvalidGeometry)
	}

	radius := int(math.Round(float64(min(width, height))/2)) - cfg.safetyGap
	if radius <= 0 {
		return Layout{}, fmt.Errorf("%s: radius=%d after gap=%d: %w", methodGenerate, radius, cfg.safetyGap, ErrInvalidGeometry)
	}

	center := image.Pt(int(math.Round(float64(width)/2)), int(math.Round(float64(height)/2)))
	origin := geom.Coord{X: float64(center.X), Y: float64(center.Y)}
	step := 2 * math.Pi / float64(count)

	pts := make([]image.Point, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * step
		dir := geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
		off := dir.Times(float64(radius))
		pts[i] = image.Pt(
			int(origin.X+math.Round(off.X)),
			int(origin.Y+math.Round(off.Y)),
		)
	}

	return Layout{
		Width:  width,
		Height: height,
		Center: center,
		Radius: radius,
		Gap:    cfg.safetyGap,
		Pins:   pts,
	}, nil
}

// Len returns the number of pins.
func (l Layout) Len() int { return len(l.Pins) }

// Neighbors returns the two ring neighbours of pin i.
func (l Layout) Neighbors(i int) (prev, next int) {
	n := len(l.Pins)
	return (i - 1 + n) % n, (i + 1) % n
}

// Adjacent reports whether a and b are the same pin or ring neighbours.
func (l Layout) Adjacent(a, b int) bool {
	if a == b {
		return true
	}
	prev, next := l.Neighbors(a)
	return b == prev || b == next
}

// Coord returns pin i as a float coordinate.
func (l Layout) Coord(i int) geom.Coord {
	p := l.Pins[i]
	return geom.Coord{X: float64(p.X), Y: float64(p.Y)}
}

// ChordLength returns the Euclidean pixel length of the chord a–b.
func (l Layout) ChordLength(a, b int) float64 {
	ca, cb := l.Coord(a), l.Coord(b)
	return ca.DistanceFrom(cb)
}

// AngleStep returns the nominal angle between adjacent pins in degrees,
// measured at the circle centre from pins 0 and 1.
func (l Layout) AngleStep() float64 {
	if len(l.Pins) < 2 {
		return 0
	}
	// Use the ideal (unrounded) positions so the value does not jitter
	// with pixel rounding.
	c := geom.Coord{X: float64(l.Center.X), Y: float64(l.Center.Y)}
	step := 2 * math.Pi / float64(len(l.Pins))
	a := c.Plus(geom.Coord{X: 1, Y: 0})
	b := c.Plus(geom.Coord{X: math.Cos(step), Y: math.Sin(step)})
	return math.Abs(geom.VertexAngle(a, c, b)) * 180 / math.Pi
}
