// SPDX-License-Identifier: MIT

// Command stringart computes a string-art pin sequence for an image.
//
//	stringart -in portrait.jpg -out preview.png -svg board.svg -list pins.txt
//
// Settings come from built-in defaults, then an optional YAML file
// (-config), then explicit flags. Interrupting a run keeps the chords drawn
// so far and still writes the outputs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stringart/config"
	"github.com/katalvlaran/stringart/greedy"
	"github.com/katalvlaran/stringart/imaging"
	"github.com/katalvlaran/stringart/listing"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/render"
	"github.com/katalvlaran/stringart/store"
)

const version = "0.3.0"

var errNoInput = errors.New("no input image (use -in or set input in the config file)")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("stringart failed", "error", err)
		os.Exit(1)
	}
}

// run is main without the process exits.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "stringart", version)
		return nil
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if opts.history > 0 {
		return printHistory(ctx, cfg.Database, opts.history, stdout)
	}
	return generate(ctx, cfg, logger, stdout)
}

type cliOptions struct {
	debug   bool
	version bool
	history int
}

// parseFlags layers defaults, the YAML file and explicitly set flags.
func parseFlags(args []string, stderr io.Writer) (config.Config, cliOptions, error) {
	fs := flag.NewFlagSet("stringart", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cli  cliOptions
		path string
		f    = config.Default()
	)
	fs.StringVar(&path, "config", "", "YAML configuration file")
	fs.StringVar(&f.Input, "in", f.Input, "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&f.Output, "out", f.Output, "PNG preview output")
	fs.StringVar(&f.SVG, "svg", f.SVG, "optional SVG output")
	fs.StringVar(&f.Listing, "list", f.Listing, `optional pin listing output ("-" for stdout)`)
	fs.IntVar(&f.Size, "size", f.Size, "working canvas side in pixels")
	fs.IntVar(&f.Pins, "pins", f.Pins, "number of pins")
	fs.IntVar(&f.StartPin, "start", f.StartPin, "start pin")
	fs.IntVar(&f.SafetyGap, "gap", f.SafetyGap, "safety gap between circle and canvas edge in pixels")
	fs.IntVar(&f.Steps, "steps", f.Steps, "number of chords")
	fs.IntVar(&f.LineWeight, "weight", f.LineWeight, "ink per chord pixel (0-255)")
	fs.Float64Var(&f.BoardMM, "board", f.BoardMM, "physical board diameter in mm (0 = unknown)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "scoring goroutines (0 = all CPUs)")
	fs.BoolVar(&f.Strict, "strict", f.Strict, "abort when pins would be closer than the minimum spacing")
	fs.StringVar(&f.Database, "db", f.Database, "SQLite run history")
	fs.BoolVar(&cli.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cli.version, "version", false, "print version and exit")
	fs.IntVar(&cli.history, "history", 0, "list the N most recent runs from -db and exit")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, cli, err
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, cli, err
		}
		cfg = loaded
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "in":
			cfg.Input = f.Input
		case "out":
			cfg.Output = f.Output
		case "svg":
			cfg.SVG = f.SVG
		case "list":
			cfg.Listing = f.Listing
		case "size":
			cfg.Size = f.Size
		case "pins":
			cfg.Pins = f.Pins
		case "start":
			cfg.StartPin = f.StartPin
		case "gap":
			cfg.SafetyGap = f.SafetyGap
		case "steps":
			cfg.Steps = f.Steps
		case "weight":
			cfg.LineWeight = f.LineWeight
		case "board":
			cfg.BoardMM = f.BoardMM
		case "workers":
			cfg.Workers = f.Workers
		case "strict":
			cfg.Strict = f.Strict
		case "db":
			cfg.Database = f.Database
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, cli, err
	}
	return cfg, cli, nil
}

// generate runs the full pipeline for cfg.
func generate(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	if cfg.Input == "" {
		return errNoInput
	}

	img, format, err := imaging.Load(cfg.Input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Info("image loaded", "path", cfg.Input, "format", format, "width", b.Dx(), "height", b.Dy())

	target, err := imaging.ToTarget(img, cfg.Size)
	if err != nil {
		return err
	}
	layout, err := pins.Generate(cfg.Size, cfg.Size, cfg.Pins, cfg.PinOptions()...)
	if err != nil {
		return err
	}

	spacing, err := pins.CheckSpacing(cfg.Pins, cfg.BoardMM)
	switch {
	case errors.Is(err, pins.ErrPinsTooClose):
		if cfg.Strict {
			return err
		}
		logger.Warn("pins are closer than the recommended minimum",
			"distance_mm", spacing.PinDistanceMM, "min_mm", spacing.MinDistanceMM)
	case err != nil:
		return err
	}

	opts := append(cfg.GreedyOptions(), greedy.WithContext(ctx), greedy.WithLogger(logger))
	res, runErr := greedy.Run(target, layout, opts...)
	if runErr != nil {
		if res == nil || !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		logger.Warn("run interrupted, writing partial result", "steps", len(res.Steps))
	}

	summary, err := listing.Summarize(res.Sequence, layout, cfg.BoardMM)
	if err != nil {
		return err
	}
	runID := uuid.NewString()

	if err := writeFile(cfg.Output, func(w io.Writer) error {
		return render.PNG(w, res.Canvas, render.Metadata{
			Pins:       cfg.Pins,
			StartPin:   cfg.StartPin,
			SafetyGap:  cfg.SafetyGap,
			Steps:      len(res.Steps),
			LineWeight: cfg.LineWeight,
			ThreadMM:   summary.ThreadLengthMM,
			Software:   "stringart " + version,
			RunID:      runID,
		})
	}); err != nil {
		return err
	}
	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, func(w io.Writer) error {
			return render.SVG(w, layout, res.Sequence, render.WithTitle(cfg.Input))
		}); err != nil {
			return err
		}
	}
	switch cfg.Listing {
	case "":
	case "-":
		if err := listing.Write(stdout, res.Sequence); err != nil {
			return err
		}
	default:
		if err := writeFile(cfg.Listing, func(w io.Writer) error {
			return listing.Write(w, res.Sequence)
		}); err != nil {
			return err
		}
	}
	if err := listing.WriteSummary(stdout, summary); err != nil {
		return err
	}

	if cfg.Database != "" {
		if err := saveRun(ctx, cfg, runID, summary, res); err != nil {
			return err
		}
		logger.Info("run saved", "db", cfg.Database, "id", runID)
	}
	return runErr
}

func saveRun(ctx context.Context, cfg config.Config, id string, s listing.Summary, res *greedy.Result) error {
	// The run context may already be cancelled; the save should still land.
	ctx = context.WithoutCancel(ctx)
	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Save(ctx, store.Run{
		ID:         id,
		CreatedAt:  time.Now(),
		Input:      cfg.Input,
		Pins:       cfg.Pins,
		StartPin:   cfg.StartPin,
		SafetyGap:  cfg.SafetyGap,
		Steps:      len(res.Steps),
		LineWeight: cfg.LineWeight,
		BoardMM:    cfg.BoardMM,
		ThreadMM:   s.ThreadLengthMM,
		Elapsed:    res.Elapsed,
		Sequence:   res.Sequence,
	})
	return err
}

func printHistory(ctx context.Context, path string, limit int, w io.Writer) error {
	if path == "" {
		return errors.New("-history needs -db")
	}
	db, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.List(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(w, "%s  %s  pins=%d steps=%d weight=%d  %s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Pins, r.Steps, r.LineWeight, r.Input); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates path and hands it to fn, reporting close errors.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return fn(f)
}
