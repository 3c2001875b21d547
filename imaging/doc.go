// SPDX-License-Identifier: MIT

// Package imaging derives a grid.Target from an ordinary raster image.
//
// Pipeline (ToTarget):
//
//  1. centre-crop to the largest square;
//  2. scale to size×size (Catmull-Rom by default, see WithScaler);
//  3. convert to 8-bit luminance;
//  4. invert so that dark source pixels ask for the most thread.
//
// Decode understands PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP through golang.org/x/image.
package imaging
