// SPDX-License-Identifier: MIT

package greedy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/stringart/grid"
	"github.com/katalvlaran/stringart/raster"
)

// Sentinel errors for the selection loop.
var (
	// ErrNilInput is returned when a required input is nil.
	ErrNilInput = errors.New("greedy: nil input")

	// ErrInvalidConfiguration covers out-of-domain parameters: pin count < 3,
	// negative step count, line weight outside 0–255, start pin out of range,
	// worker count < 1.
	ErrInvalidConfiguration = errors.New("greedy: invalid configuration")

	// ErrDimensionMismatch indicates that target, layout or cache disagree on
	// their sizes.
	ErrDimensionMismatch = errors.New("greedy: dimension mismatch")

	// ErrNoEligibleCandidate is returned when the current pin has no
	// non-neighbour pin to draw to (fewer than 4 pins).
	ErrNoEligibleCandidate = errors.New("greedy: no eligible candidate")
)

// Defaults.
const (
	DefaultSteps         = 4000
	DefaultLineWeight    = 64
	DefaultProgressEvery = 500
	MaxLineWeight        = 255
)

// Option configures a run via functional arguments. Invalid values are
// recorded and surfaced as ErrInvalidConfiguration when the run starts.
type Option func(*Options)

// Options holds the parameters of a run.
type Options struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// StartPin is the first entry of the sequence.
	StartPin int

	// Steps is the exact number of chords to draw.
	Steps int

	// LineWeight is added to every pixel of a committed chord.
	LineWeight int

	// Workers bounds the number of goroutines scoring candidates per step.
	Workers int

	// PinMark is written at each pin when the canvas is created.
	PinMark int

	// Cache, if non-nil, is used instead of a fresh raster.Cache.
	Cache *raster.Cache

	// Logger receives progress records.
	Logger *slog.Logger

	// ProgressEvery logs a progress record every N steps; 0 disables.
	ProgressEvery int

	// OnStep is called after each commit. A non-nil error aborts the run.
	OnStep func(Step) error

	err error
}

// DefaultOptions returns Options with the documented defaults:
// start pin 0, 4000 steps, line weight 64, GOMAXPROCS workers,
// pin mark 255, slog.Default() and progress every 500 steps.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		StartPin:      0,
		Steps:         DefaultSteps,
		LineWeight:    DefaultLineWeight,
		Workers:       runtime.GOMAXPROCS(0),
		PinMark:       grid.DefaultPinMark,
		Logger:        slog.Default(),
		ProgressEvery: DefaultProgressEvery,
		OnStep:        func(Step) error { return nil },
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
	}
}

// WithContext sets a context checked once per step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartPin sets the first pin. Its upper bound is checked against the
// layout when the run starts.
func WithStartPin(pin int) Option {
	return func(o *Options) {
		if pin < 0 {
			o.fail("start pin cannot be negative (%d)", pin)
			return
		}
		o.StartPin = pin
	}
}

// WithSteps sets the exact number of steps. 0 is allowed and draws nothing.
func WithSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("steps cannot be negative (%d)", n)
			return
		}
		o.Steps = n
	}
}

// WithLineWeight sets the per-chord ink increment, 0–255.
func WithLineWeight(w int) Option {
	return func(o *Options) {
		if w < 0 || w > MaxLineWeight {
			o.fail("line weight %d outside [0,%d]", w, MaxLineWeight)
			return
		}
		o.LineWeight = w
	}
}

// WithWorkers bounds scoring parallelism; 1 scores sequentially.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("workers must be >= 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithPinMark sets the initial canvas value at each pin.
func WithPinMark(v int) Option {
	return func(o *Options) {
		o.PinMark = v
	}
}

// WithCache shares a prebuilt line cache. It must cover the same pins as
// the layout passed to Run.
func WithCache(c *raster.Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery logs progress every n steps; 0 disables it.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("progress interval cannot be negative (%d)", n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithOnStep registers a hook run after every commit.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Step records one committed chord.
type Step struct {
	Index  int     // 1-based step number
	From   int     // pin the chord starts at
	To     int     // winning pin
	Score  float64 // winning ratio
	Pixels int     // canvas pixels written
}

// Result is the outcome of Run.
type Result struct {
	// Sequence starts with the start pin and has Steps+1 entries on success.
	Sequence []int

	// Steps holds one record per committed chord.
	Steps []Step

	// Canvas is the final ink accumulator (unclamped).
	Canvas *grid.Canvas

	// Cache reports line cache counters at the end of the run.
	Cache raster.CacheStats

	// Elapsed is the wall time spent in the loop.
	Elapsed time.Duration
}
