// SPDX-License-Identifier: MIT

package score_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stringart/grid"
	"github.com/katalvlaran/stringart/score"
)

func fixture(t *testing.T) (*grid.Target, *grid.Canvas) {
	t.Helper()
	tg, err := grid.TargetFromRows([][]uint8{
		{255, 255, 0, 0},
		{100, 100, 100, 100},
	})
	require.NoError(t, err)
	c, err := grid.NewCanvas(4, 2)
	require.NoError(t, err)
	return tg, c
}

// TestRatio_EmptyChord returns the seed ratio 1.
func TestRatio_EmptyChord(t *testing.T) {
	tg, c := fixture(t)
	require.Equal(t, 1.0, score.Ratio(tg, c, nil, 64))
}

// TestTally_SplitsByDiffSign checks accumulation into each bucket.
func TestTally_SplitsByDiffSign(t *testing.T) {
	tg, c := fixture(t)

	// (0,0): 255-64=191 → progression; (2,0): 0-64=-64 → regression.
	p, r := score.Tally(tg, c, []image.Point{{0, 0}, {2, 0}}, 64)
	require.Equal(t, 1+191, p)
	require.Equal(t, -1-64, r)
	require.InDelta(t, 192.0/65.0, score.Ratio(tg, c, []image.Point{{0, 0}, {2, 0}}, 64), 1e-12)

	// Exactly zero diff counts as progression.
	p, r = score.Tally(tg, c, []image.Point{{0, 1}}, 100)
	require.Equal(t, 1, p)
	require.Equal(t, -1, r)
}

// TestRatio_CanvasInkReducesScore shows already-inked pixels lose appeal.
func TestRatio_CanvasInkReducesScore(t *testing.T) {
	tg, c := fixture(t)
	chord := []image.Point{{0, 0}, {1, 0}}

	fresh := score.Ratio(tg, c, chord, 64)
	c.Add(chord, 64)
	c.Add(chord, 64)
	c.Add(chord, 64)
	inked := score.Ratio(tg, c, chord, 64)

	require.Greater(t, fresh, inked)
	// 255-(192+64) = -1 per pixel → p=1, r=-3.
	require.InDelta(t, 1.0/3.0, inked, 1e-12)
}

// TestRatio_SkipsOutOfBounds ignores pixels outside the grids.
func TestRatio_SkipsOutOfBounds(t *testing.T) {
	tg, c := fixture(t)
	in := []image.Point{{0, 0}}
	out := []image.Point{{0, 0}, {-1, 0}, {4, 1}, {0, 2}}
	require.Equal(t, score.Ratio(tg, c, in, 64), score.Ratio(tg, c, out, 64))
}

// TestRatio_Deterministic repeats the same scoring many times.
func TestRatio_Deterministic(t *testing.T) {
	tg, c := fixture(t)
	c.Add([]image.Point{{1, 1}, {2, 1}}, 30)
	chord := []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 0}}

	want := score.Ratio(tg, c, chord, 64)
	for i := 0; i < 100; i++ {
		require.Equal(t, want, score.Ratio(tg, c, chord, 64))
	}
}
