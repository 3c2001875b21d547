// SPDX-License-Identifier: MIT

// Package config loads run parameters from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected so that typos do not silently fall
// back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stringart/greedy"
	"github.com/katalvlaran/stringart/pins"
)

// Defaults for a 500 px, 300-pin board.
const (
	DefaultSize   = 500
	DefaultPins   = 300
	DefaultOutput = "stringart.png"
)

// Config holds every tunable of a run.
type Config struct {
	Input   string `yaml:"input"`   // source image
	Output  string `yaml:"output"`  // PNG preview
	SVG     string `yaml:"svg"`     // optional vector output
	Listing string `yaml:"listing"` // optional text listing; "-" for stdout

	Size       int     `yaml:"size"`        // working canvas side in pixels
	Pins       int     `yaml:"pins"`        // P
	StartPin   int     `yaml:"start_pin"`   // first pin of the sequence
	SafetyGap  int     `yaml:"safety_gap"`  // pixels between circle and canvas edge
	Steps      int     `yaml:"steps"`       // chords to draw
	LineWeight int     `yaml:"line_weight"` // ink per chord pixel, 0-255
	BoardMM    float64 `yaml:"board_mm"`    // physical board diameter; 0 = unknown
	Workers    int     `yaml:"workers"`     // scoring goroutines; 0 = GOMAXPROCS

	Strict   bool   `yaml:"strict"`   // abort when pins are too close
	Database string `yaml:"database"` // optional SQLite run history
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:     DefaultOutput,
		Size:       DefaultSize,
		Pins:       DefaultPins,
		StartPin:   0,
		SafetyGap:  pins.DefaultSafetyGap,
		Steps:      greedy.DefaultSteps,
		LineWeight: greedy.DefaultLineWeight,
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over Default and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks numeric ranges. Every error wraps
// greedy.ErrInvalidConfiguration.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return invalid("size must be positive (%d)", c.Size)
	case c.Pins < pins.MinPins:
		return invalid("pins must be >= %d (%d)", pins.MinPins, c.Pins)
	case c.StartPin < 0 || c.StartPin >= c.Pins:
		return invalid("start_pin %d not in [0,%d)", c.StartPin, c.Pins)
	case c.SafetyGap < 0:
		return invalid("safety_gap cannot be negative (%d)", c.SafetyGap)
	case c.Steps < 0:
		return invalid("steps cannot be negative (%d)", c.Steps)
	case c.LineWeight < 0 || c.LineWeight > greedy.MaxLineWeight:
		return invalid("line_weight %d outside [0,%d]", c.LineWeight, greedy.MaxLineWeight)
	case c.BoardMM < 0:
		return invalid("board_mm cannot be negative (%g)", c.BoardMM)
	case c.Workers < 0:
		return invalid("workers cannot be negative (%d)", c.Workers)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", greedy.ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// PinOptions returns the pins.Generate options for c.
func (c Config) PinOptions() []pins.Option {
	return []pins.Option{pins.WithSafetyGap(c.SafetyGap)}
}

// GreedyOptions returns the greedy.Run options for c. Workers == 0 keeps
// the greedy default.
func (c Config) GreedyOptions() []greedy.Option {
	opts := []greedy.Option{
		greedy.WithStartPin(c.StartPin),
		greedy.WithSteps(c.Steps),
		greedy.WithLineWeight(c.LineWeight),
	}
	if c.Workers > 0 {
		opts = append(opts, greedy.WithWorkers(c.Workers))
	}
	return opts
}
