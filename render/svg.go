// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/stringart/listing"
	"github.com/katalvlaran/stringart/pins"
)

// SVG defaults.
const (
	DefaultStroke    = "stroke:black;stroke-width:0.25;stroke-opacity:0.8;fill:none"
	DefaultPinRadius = 1
	DefaultPinStyle  = "fill:gray"
)

// SVGOption configures SVG.
type SVGOption func(*svgConfig)

type svgConfig struct {
	stroke    string
	pinStyle  string
	pinRadius int
	title     string
}

// WithStroke sets the CSS style of the thread path.
func WithStroke(style string) SVGOption {
	return func(c *svgConfig) { c.stroke = style }
}

// WithPinStyle sets the CSS style of the pin markers.
func WithPinStyle(style string) SVGOption {
	return func(c *svgConfig) { c.pinStyle = style }
}

// WithPinRadius sets the pin marker radius; 0 hides pins.
// Panics if r < 0.
func WithPinRadius(r int) SVGOption {
	if r < 0 {
		panic("render: WithPinRadius(r<0)")
	}
	return func(c *svgConfig) { c.pinRadius = r }
}

// WithTitle sets the document title.
func WithTitle(title string) SVGOption {
	return func(c *svgConfig) { c.title = title }
}

// SVG draws the pins of layout and the thread path seq on a white board.
func SVG(w io.Writer, layout pins.Layout, seq []int, opts ...SVGOption) error {
	cfg := svgConfig{stroke: DefaultStroke, pinStyle: DefaultPinStyle, pinRadius: DefaultPinRadius}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := listing.Validate(seq, layout.Len()); err != nil {
		return fmt.Errorf("SVG: %w", err)
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(layout.Width, layout.Height)
	if cfg.title != "" {
		canvas.Title(cfg.title)
	}
	canvas.Rect(0, 0, layout.Width, layout.Height, "fill:white")

	if cfg.pinRadius > 0 {
		canvas.Gstyle(cfg.pinStyle)
		for _, p := range layout.Pins {
			canvas.Circle(p.X, p.Y, cfg.pinRadius)
		}
		canvas.Gend()
	}

	xs := make([]int, len(seq))
	ys := make([]int, len(seq))
	for i, pin := range seq {
		xs[i], ys[i] = layout.Pins[pin].X, layout.Pins[pin].Y
	}
	canvas.Polyline(xs, ys, cfg.stroke)
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("SVG: %w", err)
	}
	return nil
}
