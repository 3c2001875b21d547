// SPDX-License-Identifier: MIT

package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/katalvlaran/stringart/grid"
)

var (
	// ErrEmptyImage is returned for a nil image or one with empty bounds.
	ErrEmptyImage = errors.New("imaging: empty image")

	// ErrBadSize is returned for a non-positive target size.
	ErrBadSize = errors.New("imaging: size must be positive")
)

// Option configures ToTarget.
type Option func(*config)

type config struct {
	scaler draw.Scaler
	invert bool
}

// WithScaler replaces the Catmull-Rom resampler, e.g. with
// draw.NearestNeighbor for exact pixel art. Panics on nil.
func WithScaler(s draw.Scaler) Option {
	if s == nil {
		panic("imaging: WithScaler(nil)")
	}
	return func(c *config) { c.scaler = s }
}

// WithoutInvert keeps luminance as-is: bright source pixels ask for the
// most thread. Useful for light thread on a dark board.
func WithoutInvert() Option {
	return func(c *config) { c.invert = false }
}

// Decode reads an image in any registered format and reports the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("Decode: %w", err)
	}
	return img, format, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("Load %s: %w", path, err)
	}
	return img, format, nil
}

// SquareCrop returns the largest centred square inside r.
func SquareCrop(r image.Rectangle) image.Rectangle {
	side := min(r.Dx(), r.Dy())
	x0 := r.Min.X + (r.Dx()-side)/2
	y0 := r.Min.Y + (r.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// Gray scales the centred square of img to size×size luminance.
func Gray(img image.Image, size int, opts ...Option) (*image.Gray, error) {
	cfg := newConfig(opts...)
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("Gray: %w", ErrEmptyImage)
	}
	if size <= 0 {
		return nil, fmt.Errorf("Gray: size=%d: %w", size, ErrBadSize)
	}

	dst := image.NewGray(image.Rect(0, 0, size, size))
	cfg.scaler.Scale(dst, dst.Bounds(), img, SquareCrop(img.Bounds()), draw.Src, nil)
	return dst, nil
}

// ToTarget converts img into a size×size Target, inverted unless
// WithoutInvert is given.
func ToTarget(img image.Image, size int, opts ...Option) (*grid.Target, error) {
	cfg := newConfig(opts...)
	g, err := Gray(img, size, opts...)
	if err != nil {
		return nil, fmt.Errorf("ToTarget: %w", err)
	}
	t, err := grid.TargetFromGray(g, cfg.invert)
	if err != nil {
		return nil, fmt.Errorf("ToTarget: %w", err)
	}
	return t, nil
}

func newConfig(opts ...Option) config {
	c := config{scaler: draw.CatmullRom, invert: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
