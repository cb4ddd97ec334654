// Package main provides the nnfs CLI: it generates a toy classification
// dataset and hill-climbs a two-layer network on it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/born-ml/nnfs/internal/config"
	"github.com/born-ml/nnfs/internal/dataset"
	"github.com/born-ml/nnfs/internal/search"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("nnfs %s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(ctx, os.Args[1:], logger); err != nil {
		logger.Fatalf("nnfs: %v", err)
	}
}

// run parses args, builds the dataset and runs the search, logging to logger.
func run(ctx context.Context, args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("nnfs", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())

	cfgPath := fs.String("config", "", "Path to YAML config (defaults are used when empty)")
	datasetName := fs.String("dataset", "", "Dataset: spiral or vertical")
	samples := fs.Int("samples", 0, "Samples per class")
	classes := fs.Int("classes", 0, "Number of classes")
	hidden := fs.Int("hidden", 0, "Hidden layer width")
	iterations := fs.Int("iterations", 0, "Number of search iterations")
	budget := fs.Duration("budget", 0, "Wall-clock search budget")
	magnitude := fs.Float64("magnitude", 0, "Perturbation half-width per weight")
	seed := fs.Int64("seed", 0, "PRNG seed")
	workers := fs.Int("workers", 0, "Row-parallel workers (1 disables)")
	logEvery := fs.Int("log-every", 0, "Log throughput every N iterations")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		Dataset:    *datasetName,
		Samples:    *samples,
		Classes:    *classes,
		Hidden:     *hidden,
		Magnitude:  *magnitude,
		Iterations: *iterations,
		Budget:     *budget,
		Seed:       *seed,
		Workers:    *workers,
		LogEvery:   *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Synthetic data, not security-critical.
	x, y, err := dataset.Generate(cfg.Dataset, cfg.Samples, cfg.Classes, rng)
	if err != nil {
		return err
	}
	n, inputs := x.Dims()
	logger.Printf("dataset=%s samples=%d classes=%d features=%d", cfg.Dataset, n, cfg.Classes, inputs)

	sc := cfg.SearchConfig(inputs)
	sc.OnImprove = func(imp search.Improvement) {
		logger.Printf("New set of weights found, iteration: %d loss: %.6f acc: %.4f",
			imp.Iteration, imp.Loss, imp.Accuracy)
	}
	sc.OnProgress = func(p search.Progress) {
		w := p.Window
		logger.Printf("iteration=%d best_loss=%.6f accepted=%d/%d samples_per_sec=%.0f forward_ms=%.3f score_ms=%.3f",
			p.Iteration, p.BestLoss, w.Accepted, w.Trials, w.SamplesPerSec, w.AvgForwardMS, w.AvgScoreMS)
	}

	res, err := search.RunContext(ctx, sc, x, y)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if res.Canceled {
		logger.Printf("interrupted after %d iterations", res.Iterations)
	}
	logger.Printf("network=%q iterations=%d improvements=%d elapsed=%s",
		res.Network.String(), res.Iterations, len(res.Improvements), res.Elapsed)
	logger.Printf("loss=%.6f acc=%.4f", res.Loss, res.Accuracy)
	return nil
}
