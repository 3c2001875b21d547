// SPDX-License-Identifier: MIT

package listing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stringart/pins"
)

// roundScale stabilizes summed float lengths to 1e-9.
const roundScale = 1e9

// Summary describes a finished sequence.
type Summary struct {
	Pins             int     // P
	Steps            int     // chords drawn, len(seq)−1
	MostVisited      int     // pin with the highest visit count, lowest index on ties
	MostVisitedCount int     // its visit count
	Unused           []int   // pins never visited, ascending
	VisitCounts      []int   // visits per pin, indexed by pin
	AngleStep        float64 // degrees between adjacent pins
	ThreadLengthPx   float64 // summed chord length in pixels
	ThreadLengthMM   float64 // same, scaled to the board; 0 when the board is unknown
}

// Validate checks that seq is non-empty and every entry is a pin of a
// pinCount-pin layout.
//
// Complexity: O(len(seq)).
func Validate(seq []int, pinCount int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	for i, p := range seq {
		if p < 0 || p >= pinCount {
			return fmt.Errorf("Validate: seq[%d]=%d not in [0,%d): %w", i, p, pinCount, ErrPinIndex)
		}
	}
	return nil
}

// Summarize computes visit statistics and thread length for seq.
// boardMM is the physical board diameter; the pixel length is scaled by
// boardMM / (2·radius). boardMM ≤ 0 leaves ThreadLengthMM at zero.
//
// Complexity: O(len(seq) + P).
func Summarize(seq []int, layout pins.Layout, boardMM float64) (Summary, error) {
	n := layout.Len()
	if err := Validate(seq, n); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	s := Summary{
		Pins:        n,
		Steps:       len(seq) - 1,
		VisitCounts: make([]int, n),
		AngleStep:   layout.AngleStep(),
	}
	for _, p := range seq {
		s.VisitCounts[p]++
	}
	for p, c := range s.VisitCounts {
		if c > s.MostVisitedCount {
			s.MostVisited, s.MostVisitedCount = p, c
		}
		if c == 0 {
			s.Unused = append(s.Unused, p)
		}
	}

	var px float64
	for i := 1; i < len(seq); i++ {
		px += layout.ChordLength(seq[i-1], seq[i])
	}
	s.ThreadLengthPx = round1e9(px)
	if boardMM > 0 && layout.Radius > 0 {
		s.ThreadLengthMM = round1e9(px * boardMM / float64(2*layout.Radius))
	}
	return s, nil
}

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
