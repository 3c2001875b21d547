// SPDX-License-Identifier: MIT

package listing_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stringart/listing"
	"github.com/katalvlaran/stringart/pins"
)

func octagon(t *testing.T) pins.Layout {
	t.Helper()
	l, err := pins.Generate(100, 100, 8, pins.WithSafetyGap(0))
	require.NoError(t, err)
	return l
}

// TestValidate covers empty and out-of-range sequences.
func TestValidate(t *testing.T) {
	require.ErrorIs(t, listing.Validate(nil, 8), listing.ErrEmptySequence)
	require.ErrorIs(t, listing.Validate([]int{0, 8}, 8), listing.ErrPinIndex)
	require.ErrorIs(t, listing.Validate([]int{-1}, 8), listing.ErrPinIndex)
	require.NoError(t, listing.Validate([]int{0, 4, 7}, 8))
}

// TestSummarize checks visit statistics and thread length on an octagon.
func TestSummarize(t *testing.T) {
	l := octagon(t)
	seq := []int{0, 4, 1, 5}

	s, err := listing.Summarize(seq, l, 100)
	require.NoError(t, err)
	require.Equal(t, 8, s.Pins)
	require.Equal(t, 3, s.Steps)
	require.Equal(t, []int{1, 1, 0, 0, 1, 1, 0, 0}, s.VisitCounts)
	require.Equal(t, 0, s.MostVisited, "lowest index wins ties")
	require.Equal(t, 1, s.MostVisitedCount)
	require.Equal(t, []int{2, 3, 6, 7}, s.Unused)
	require.InDelta(t, 45.0, s.AngleStep, 1e-6)

	want := 100 + math.Hypot(85, 35) + math.Hypot(70, 70)
	require.InDelta(t, want, s.ThreadLengthPx, 1e-6)
	// Board of 100 mm over a 100 px diameter: 1 mm per pixel.
	require.InDelta(t, want, s.ThreadLengthMM, 1e-6)

	s, err = listing.Summarize(seq, l, 0)
	require.NoError(t, err)
	require.Zero(t, s.ThreadLengthMM)
}

// TestSummarize_MostVisited picks the highest count.
func TestSummarize_MostVisited(t *testing.T) {
	s, err := listing.Summarize([]int{3, 6, 3, 7, 3, 6}, octagon(t), 0)
	require.NoError(t, err)
	require.Equal(t, 3, s.MostVisited)
	require.Equal(t, 3, s.MostVisitedCount)
	require.Equal(t, []int{0, 1, 2, 4, 5}, s.Unused)
}

// TestSummarize_Errors rejects bad sequences.
func TestSummarize_Errors(t *testing.T) {
	_, err := listing.Summarize(nil, octagon(t), 0)
	require.ErrorIs(t, err, listing.ErrEmptySequence)
	_, err = listing.Summarize([]int{0, 9}, octagon(t), 0)
	require.ErrorIs(t, err, listing.ErrPinIndex)
}

// TestFormat checks chunking and alignment.
func TestFormat(t *testing.T) {
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	out, err := listing.Format(seq, listing.WithChunk(5))
	require.NoError(t, err)
	require.Equal(t,
		"  1-5:  0  1  2  3  4\n"+
			" 6-10:  5  6  7  8  9\n"+
			"11-12: 10 11\n", out)

	out, err = listing.Format([]int{7})
	require.NoError(t, err)
	require.Equal(t, "1-1: 7\n", out)

	_, err = listing.Format(nil)
	require.ErrorIs(t, err, listing.ErrEmptySequence)
}

// TestWithChunk_Panics on a non-positive chunk.
func TestWithChunk_Panics(t *testing.T) {
	require.Panics(t, func() { listing.WithChunk(0) })
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWrite_PropagatesWriterError surfaces I/O failures.
func TestWrite_PropagatesWriterError(t *testing.T) {
	require.Error(t, listing.Write(failWriter{}, []int{1, 2, 3}))
	require.Error(t, listing.WriteSummary(failWriter{}, listing.Summary{}))
}

// TestWriteSummary renders the key lines.
func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listing.WriteSummary(&buf, listing.Summary{
		Pins: 300, Steps: 4000, MostVisited: 12, MostVisitedCount: 40,
		AngleStep: 1.2, ThreadLengthMM: 2_345_600,
	}))
	out := buf.String()
	require.Contains(t, out, "pins:         300\n")
	require.Contains(t, out, "angle step:   1.200°\n")
	require.Contains(t, out, "most visited: pin 12 (40 times)\n")
	require.Contains(t, out, "unused pins:  none\n")
	require.Contains(t, out, "thread:       2345.6 m\n")
}
