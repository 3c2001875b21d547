// SPDX-License-Identifier: MIT

package listing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultChunk is the number of pins per listing line.
const DefaultChunk = 10

// Option configures Write.
type Option func(*config)

type config struct {
	chunk int
}

// WithChunk sets the number of pins per line.
// Panics if n < 1.
func WithChunk(n int) Option {
	if n < 1 {
		panic("listing: WithChunk(n<1)")
	}
	return func(c *config) { c.chunk = n }
}

// Write prints seq in numbered chunks. Each line carries the 1-based range
// of positions it covers, right-aligned to the widest possible range.
func Write(w io.Writer, seq []int, opts ...Option) error {
	cfg := config{chunk: DefaultChunk}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(seq) == 0 {
		return fmt.Errorf("Write: %w", ErrEmptySequence)
	}

	width := len(strconv.Itoa(len(seq)))
	pinWidth := 1
	for _, p := range seq {
		pinWidth = max(pinWidth, len(strconv.Itoa(p)))
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for lo := 0; lo < len(seq); lo += cfg.chunk {
		hi := min(lo+cfg.chunk, len(seq))
		line.Reset()
		fmt.Fprintf(&line, "%*s:", 2*width+1, strconv.Itoa(lo+1)+"-"+strconv.Itoa(hi))
		for _, p := range seq[lo:hi] {
			fmt.Fprintf(&line, " %*d", pinWidth, p)
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// Format returns the listing as a string.
func Format(seq []int, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, seq, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteSummary prints s as aligned key/value lines.
func WriteSummary(w io.Writer, s Summary) error {
	thread := "n/a"
	if s.ThreadLengthMM > 0 {
		thread = fmt.Sprintf("%.1f m", s.ThreadLengthMM/1000)
	}
	unused := "none"
	if len(s.Unused) > 0 {
		unused = fmt.Sprintf("%d %v", len(s.Unused), s.Unused)
	}
	_, err := fmt.Fprintf(w,
		"pins:         %d\n"+
			"steps:        %d\n"+
			"angle step:   %.3f°\n"+
			"most visited: pin %d (%d times)\n"+
			"unused pins:  %s\n"+
			"thread:       %s\n",
		s.Pins, s.Steps, s.AngleStep, s.MostVisited, s.MostVisitedCount, unused, thread)
	if err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	return nil
}
