// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"github.com/katalvlaran/stringart/grid"
)

// ErrNilCanvas is returned when no canvas is given.
var ErrNilCanvas = errors.New("render: nil canvas")

// Image returns the display image of v: each pixel is 255 minus the canvas
// value clamped to [0,255].
func Image(v grid.View) (*image.Gray, error) {
	if v == nil {
		return nil, ErrNilCanvas
	}
	w, h := v.Width(), v.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			row[x] = uint8(255 - min(max(v.Value(x, y), 0), 255))
		}
	}
	return img, nil
}
