// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stringart/config"
	"github.com/katalvlaran/stringart/greedy"
)

// TestDefault matches the documented defaults and validates.
func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, 300, c.Pins)
	require.Equal(t, 0, c.StartPin)
	require.Equal(t, 10, c.SafetyGap)
	require.Equal(t, 4000, c.Steps)
	require.Equal(t, 64, c.LineWeight)
	require.Zero(t, c.BoardMM)
	require.Equal(t, 500, c.Size)
	require.NoError(t, c.Validate())
}

// TestDecode_Overlay keeps defaults for absent keys.
func TestDecode_Overlay(t *testing.T) {
	c, err := config.Decode(strings.NewReader("input: cat.jpg\npins: 200\nboard_mm: 600\nworkers: 4\n"))
	require.NoError(t, err)
	require.Equal(t, "cat.jpg", c.Input)
	require.Equal(t, 200, c.Pins)
	require.Equal(t, 600.0, c.BoardMM)
	require.Equal(t, 4, c.Workers)
	require.Equal(t, 4000, c.Steps)
	require.Equal(t, config.DefaultOutput, c.Output)

	c, err = config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

// TestDecode_Rejects unknown keys and out-of-range values.
func TestDecode_Rejects(t *testing.T) {
	_, err := config.Decode(strings.NewReader("pinz: 10\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "pinz")

	_, err = config.Decode(strings.NewReader("steps: [1, 2]\n"))
	require.Error(t, err)

	_, err = config.Decode(strings.NewReader("pins: 2\n"))
	require.ErrorIs(t, err, greedy.ErrInvalidConfiguration)
}

// TestValidate walks every range check.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"size", func(c *config.Config) { c.Size = 0 }},
		{"pins", func(c *config.Config) { c.Pins = 2 }},
		{"start negative", func(c *config.Config) { c.StartPin = -1 }},
		{"start too large", func(c *config.Config) { c.StartPin = c.Pins }},
		{"gap", func(c *config.Config) { c.SafetyGap = -1 }},
		{"steps", func(c *config.Config) { c.Steps = -1 }},
		{"weight high", func(c *config.Config) { c.LineWeight = 256 }},
		{"weight low", func(c *config.Config) { c.LineWeight = -1 }},
		{"board", func(c *config.Config) { c.BoardMM = -0.5 }},
		{"workers", func(c *config.Config) { c.Workers = -3 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), greedy.ErrInvalidConfiguration)
		})
	}
}

// TestLoad reads a file and reports a missing one.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: 10\nstrict: true\nsvg: out.svg\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, c.Steps)
	require.True(t, c.Strict)
	require.Equal(t, "out.svg", c.SVG)

	_, err = config.Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestOptions feed straight into pins.Generate and greedy.Run.
func TestOptions(t *testing.T) {
	c := config.Default()
	require.Len(t, c.PinOptions(), 1)
	require.Len(t, c.GreedyOptions(), 3)
	c.Workers = 2
	require.Len(t, c.GreedyOptions(), 4)

	o := greedy.DefaultOptions()
	for _, opt := range c.GreedyOptions() {
		opt(&o)
	}
	require.Equal(t, 2, o.Workers)
	require.Equal(t, 4000, o.Steps)
}
