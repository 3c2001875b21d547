// SPDX-License-Identifier: MIT

// Package render produces viewable outputs from a finished run.
//
//   - Image maps the unclamped canvas to white paper with black thread:
//     pixel = 255 − clamp(value, 0, 255).
//   - PNG encodes that image and embeds run parameters as tEXt chunks;
//     ReadText reads them back.
//   - SVG draws the pins and the thread path as vector graphics, ready for
//     a plotter or a browser.
package render
