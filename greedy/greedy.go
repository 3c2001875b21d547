// SPDX-License-Identifier: MIT

package greedy

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stringart/grid"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/raster"
	"github.com/katalvlaran/stringart/score"
)

// minSpread is the smallest relative offset a candidate may have: 0 is the
// current pin itself, 1 and P−1 are its ring neighbours.
const minSpread = 2

// Selector holds the mutable state of a run: the canvas, the line cache and
// the sequence so far. It is driven one step at a time by Next.
// A Selector is not safe for concurrent use.
type Selector struct {
	target *grid.Target
	layout pins.Layout
	canvas *grid.Canvas
	cache  *raster.Cache
	opts   Options

	current  int
	sequence []int
	steps    []Step

	// per-step scratch, reused across steps
	lines  [][]image.Point
	scores []float64
}

// NewSelector validates inputs and prepares a canvas with the pins marked.
//
// Validation order: nil target → option errors → pin count → start pin →
// target/layout shape → shared cache size.
func NewSelector(target *grid.Target, layout pins.Layout, opts ...Option) (*Selector, error) {
	if target == nil {
		return nil, fmt.Errorf("NewSelector: target: %w", ErrNilInput)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("NewSelector: %w", o.err)
	}

	n := layout.Len()
	if n < pins.MinPins {
		return nil, fmt.Errorf("NewSelector: %d pins < %d: %w", n, pins.MinPins, ErrInvalidConfiguration)
	}
	if o.StartPin >= n {
		return nil, fmt.Errorf("NewSelector: start pin %d not in [0,%d): %w", o.StartPin, n, ErrInvalidConfiguration)
	}
	if target.Width() != layout.Width || target.Height() != layout.Height {
		return nil, fmt.Errorf("NewSelector: target %dx%d vs layout %dx%d: %w",
			target.Width(), target.Height(), layout.Width, layout.Height, ErrDimensionMismatch)
	}

	cache := o.Cache
	if cache == nil {
		cache = raster.NewCache(layout.Pins)
	} else if cache.Len() != n {
		return nil, fmt.Errorf("NewSelector: cache has %d pins, layout %d: %w", cache.Len(), n, ErrDimensionMismatch)
	}

	canvas, err := grid.NewCanvas(layout.Width, layout.Height)
	if err != nil {
		return nil, fmt.Errorf("NewSelector: %w", err)
	}
	canvas.MarkPins(layout.Pins, o.PinMark)

	candidates := max(n-2*minSpread+1, 0)
	sequence := make([]int, 1, o.Steps+1)
	sequence[0] = o.StartPin

	return &Selector{
		target:   target,
		layout:   layout,
		canvas:   canvas,
		cache:    cache,
		opts:     o,
		current:  o.StartPin,
		sequence: sequence,
		steps:    make([]Step, 0, o.Steps),
		lines:    make([][]image.Point, candidates),
		scores:   make([]float64, candidates),
	}, nil
}

// Current returns the pin the next chord starts from.
func (s *Selector) Current() int { return s.current }

// Sequence returns a copy of the pin sequence so far.
func (s *Selector) Sequence() []int { return append([]int(nil), s.sequence...) }

// Canvas returns a read-only view of the canvas.
func (s *Selector) Canvas() grid.View { return s.canvas.View() }

// Candidates returns the pins eligible from pin `from`, in enumeration order:
// (from+k) mod P for k = 2 … P−2.
func Candidates(from, pinCount int) []int {
	if pinCount < 2*minSpread {
		return nil
	}
	out := make([]int, 0, pinCount-2*minSpread+1)
	for k := minSpread; k <= pinCount-minSpread; k++ {
		out = append(out, (from+k)%pinCount)
	}
	return out
}

// Next scores every eligible chord from the current pin, commits the best
// one and returns its record.
func (s *Selector) Next() (Step, error) {
	from := s.current
	cands := Candidates(from, s.layout.Len())
	if len(cands) == 0 {
		return Step{}, fmt.Errorf("Next: pin %d of %d: %w", from, s.layout.Len(), ErrNoEligibleCandidate)
	}

	if err := s.scoreAll(from, cands); err != nil {
		return Step{}, err
	}

	// Sequential reduction in enumeration order; strict > keeps the first max.
	best := 0
	for i := 1; i < len(cands); i++ {
		if s.scores[i] > s.scores[best] {
			best = i
		}
	}

	step := Step{
		Index:  len(s.steps) + 1,
		From:   from,
		To:     cands[best],
		Score:  s.scores[best],
		Pixels: s.canvas.Add(s.lines[best], s.opts.LineWeight),
	}
	s.sequence = append(s.sequence, step.To)
	s.steps = append(s.steps, step)
	s.current = step.To
	return step, nil
}

// scoreAll fills s.lines and s.scores for cands. With more than one worker
// the candidates are split into contiguous chunks scored concurrently; the
// canvas is only read here.
func (s *Selector) scoreAll(from int, cands []int) error {
	view := s.canvas.View()
	scoreRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			line, err := s.cache.Get(from, cands[i])
			if err != nil {
				return fmt.Errorf("score %d→%d: %w", from, cands[i], err)
			}
			s.lines[i] = line
			s.scores[i] = score.Ratio(s.target, view, line, s.opts.LineWeight)
		}
		return nil
	}

	workers := min(s.opts.Workers, len(cands))
	if workers <= 1 {
		return scoreRange(0, len(cands))
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(cands) + workers - 1) / workers
	for lo := 0; lo < len(cands); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(cands))
		g.Go(func() error { return scoreRange(lo, hi) })
	}
	return g.Wait()
}

// result snapshots the selector state.
func (s *Selector) result(elapsed time.Duration) *Result {
	return &Result{
		Sequence: s.Sequence(),
		Steps:    append([]Step(nil), s.steps...),
		Canvas:   s.canvas,
		Cache:    s.cache.Stats(),
		Elapsed:  elapsed,
	}
}

// Run executes the full selection loop and returns the sequence and canvas.
//
// On cancellation or a hook error the partial Result (everything committed
// so far) is returned together with the error.
func Run(target *grid.Target, layout pins.Layout, opts ...Option) (*Result, error) {
	s, err := NewSelector(target, layout, opts...)
	if err != nil {
		return nil, err
	}
	return s.run(s.opts.Ctx)
}

func (s *Selector) run(ctx context.Context) (*Result, error) {
	log := s.opts.Logger
	start := time.Now()

	log.Debug("greedy: run starting",
		"pins", s.layout.Len(),
		"start_pin", s.opts.StartPin,
		"steps", s.opts.Steps,
		"line_weight", s.opts.LineWeight,
		"workers", s.opts.Workers,
	)

	for i := 0; i < s.opts.Steps; i++ {
		// cancellation check (once per step)
		select {
		case <-ctx.Done():
			return s.result(time.Since(start)), fmt.Errorf("greedy: cancelled after %d steps: %w", i, ctx.Err())
		default:
		}

		step, err := s.Next()
		if err != nil {
			return s.result(time.Since(start)), fmt.Errorf("greedy: step %d: %w", i+1, err)
		}
		if err := s.opts.OnStep(step); err != nil {
			return s.result(time.Since(start)), fmt.Errorf("greedy: OnStep at step %d: %w", step.Index, err)
		}
		if every := s.opts.ProgressEvery; every > 0 && step.Index%every == 0 {
			log.Debug("greedy: progress",
				"step", step.Index,
				"of", s.opts.Steps,
				"pin", step.To,
				"score", step.Score,
			)
		}
	}

	res := s.result(time.Since(start))
	log.Info("greedy: run complete",
		"steps", len(res.Steps),
		"elapsed", res.Elapsed,
		"cache_lines", res.Cache.Size,
		"cache_hits", res.Cache.Hits,
	)
	return res, nil
}
