// SPDX-License-Identifier: MIT

package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/stringart/imaging"
)

// bars returns a w×h image: white outside [x0,x1), black inside.
func bars(w, h, x0, x1 int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255)
			if x >= x0 && x < x1 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// TestDecode_Formats round-trips through the registered decoders.
func TestDecode_Formats(t *testing.T) {
	src := bars(8, 6, 2, 5)
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, enc(&buf))
			img, format, err := imaging.Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, name, format)
			require.Equal(t, src.Bounds(), img.Bounds())
		})
	}
}

// TestDecode_Unknown wraps image.ErrFormat.
func TestDecode_Unknown(t *testing.T) {
	_, _, err := imaging.Decode(bytes.NewReader([]byte("not an image")))
	require.ErrorIs(t, err, image.ErrFormat)
}

// TestLoad reads from disk and reports missing files.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, bars(4, 4, 0, 2)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	img, format, err := imaging.Load(path)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 4, img.Bounds().Dx())

	_, _, err = imaging.Load(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestSquareCrop centres the largest square.
func TestSquareCrop(t *testing.T) {
	require.Equal(t, image.Rect(50, 0, 150, 100), imaging.SquareCrop(image.Rect(0, 0, 200, 100)))
	require.Equal(t, image.Rect(0, 25, 60, 85), imaging.SquareCrop(image.Rect(0, 0, 60, 110)))
	require.Equal(t, image.Rect(15, 10, 25, 20), imaging.SquareCrop(image.Rect(10, 10, 30, 20)))
}

// TestToTarget_CropAndInvert: the centred square of a wide image is black,
// so every target pixel asks for full ink.
func TestToTarget_CropAndInvert(t *testing.T) {
	src := bars(200, 100, 50, 150)
	tg, err := imaging.ToTarget(src, 50, imaging.WithScaler(draw.NearestNeighbor))
	require.NoError(t, err)
	require.Equal(t, 50, tg.Width())
	require.Equal(t, 50, tg.Height())
	for _, v := range tg.Pix() {
		require.Equal(t, uint8(255), v)
	}

	tg, err = imaging.ToTarget(src, 50, imaging.WithScaler(draw.NearestNeighbor), imaging.WithoutInvert())
	require.NoError(t, err)
	for _, v := range tg.Pix() {
		require.Equal(t, uint8(0), v)
	}
}

// TestToTarget_CatmullRomUniform keeps a flat image flat.
func TestToTarget_CatmullRomUniform(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 100
	}
	tg, err := imaging.ToTarget(src, 20)
	require.NoError(t, err)
	for _, v := range tg.Pix() {
		require.InDelta(t, 155, int(v), 1)
	}
}

// TestToTarget_Errors covers empty images and bad sizes.
func TestToTarget_Errors(t *testing.T) {
	_, err := imaging.ToTarget(nil, 10)
	require.ErrorIs(t, err, imaging.ErrEmptyImage)
	_, err = imaging.ToTarget(image.NewGray(image.Rect(0, 0, 0, 5)), 10)
	require.ErrorIs(t, err, imaging.ErrEmptyImage)
	_, err = imaging.ToTarget(bars(4, 4, 0, 1), 0)
	require.ErrorIs(t, err, imaging.ErrBadSize)
	require.Panics(t, func() { imaging.WithScaler(nil) })
}
