// Package search improves a small classifier by random hill-climbing.
//
// Each iteration perturbs every weight and bias of the best network found so
// far, evaluates the trial on the full training batch, and keeps it only if
// its loss is strictly lower than the best loss. There is no gradient and no
// temperature schedule: a run can end in a local minimum.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/metrics"
	"github.com/born-ml/nnfs/internal/nn"
	"github.com/born-ml/nnfs/internal/parallel"
	"github.com/born-ml/nnfs/internal/tensor"
)

// Default search settings.
const (
	DefaultHidden     = 3
	DefaultMagnitude  = 0.05
	DefaultIterations = 1000
)

// Config captures the knobs of a search run.
type Config struct {
	Inputs  int // Feature width of a sample.
	Hidden  int // Width of the hidden layer.
	Classes int // Number of output classes.

	Magnitude  float64       // Perturbation half-width per weight.
	Iterations int           // Trial count; 0 means unbounded.
	Budget     time.Duration // Wall-clock limit; 0 means unbounded.
	Seed       int64         // Seed for initialization and perturbation.
	Workers    int           // Row-parallel workers; 0 uses one per CPU, 1 disables.
	LogEvery   int           // Progress callback period in iterations; 0 disables.

	// OnImprove is called after each accepted trial.
	OnImprove func(Improvement)
	// OnProgress is called every LogEvery iterations.
	OnProgress func(Progress)
}

// DefaultConfig returns a config for the given problem widths with the
// default hidden width, magnitude and iteration count.
func DefaultConfig(inputs, classes int) Config {
	return Config{
		Inputs:     inputs,
		Hidden:     DefaultHidden,
		Classes:    classes,
		Magnitude:  DefaultMagnitude,
		Iterations: DefaultIterations,
	}
}

// Validate verifies the config is runnable.
func (c Config) Validate() error {
	if c.Inputs <= 0 || c.Hidden <= 0 || c.Classes <= 0 {
		return fmt.Errorf("search: layer widths must be > 0 (inputs=%d hidden=%d classes=%d)",
			c.Inputs, c.Hidden, c.Classes)
	}
	if c.Magnitude <= 0 || math.IsNaN(c.Magnitude) || math.IsInf(c.Magnitude, 0) {
		return fmt.Errorf("search: magnitude must be a positive finite number (got %v)", c.Magnitude)
	}
	if c.Iterations < 0 || c.Budget < 0 {
		return errors.New("search: iterations and budget must not be negative")
	}
	if c.Iterations == 0 && c.Budget == 0 {
		return errors.New("search: one of iterations or budget must be set")
	}
	if c.Workers < 0 {
		return fmt.Errorf("search: workers must not be negative (got %d)", c.Workers)
	}
	return nil
}

func (c Config) parallelConfig() parallel.Config {
	if c.Workers == 0 {
		return parallel.DefaultConfig()
	}
	return parallel.DefaultConfig().WithWorkers(c.Workers)
}

// Improvement records an accepted trial.
type Improvement struct {
	Iteration int
	Loss      float64
	Accuracy  float64
}

// Progress is reported every Config.LogEvery iterations.
type Progress struct {
	Iteration int
	BestLoss  float64
	Window    metrics.Snapshot
}

// Result is the outcome of a search run.
type Result struct {
	Network      *Network      // Best network found.
	Loss         float64       // Mean loss of Network on the training batch.
	Accuracy     float64       // Accuracy of Network on the training batch.
	Predictions  *mat.Dense    // Probability rows of Network on the training batch.
	Iterations   int           // Trials evaluated.
	Improvements []Improvement // Accepted trials, in order; losses strictly decrease.
	Elapsed      time.Duration
	Canceled     bool // The context ended the run before its limits.
}

// Run hill-climbs a fresh random network on the batch x with labels y.
//
// Labels are either a single column of class indices or one column per
// class. Shape problems between the config and the data are reported as
// errors before the loop starts. A shape violation during evaluation
// panics and aborts the run.
func Run(cfg Config, x, y *mat.Dense) (*Result, error) {
	return RunContext(context.Background(), cfg, x, y)
}

// RunContext is Run with cancellation: the loop stops before the next trial
// once ctx is done and returns the best network found so far.
func RunContext(ctx context.Context, cfg Config, x, y *mat.Dense) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkData(cfg, x, y); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Search noise, not security-critical.
	par := cfg.parallelConfig()

	best := NewNetwork(cfg.Inputs, cfg.Hidden, cfg.Classes, rng)
	best.SetParallel(par)
	return climb(ctx, cfg, best, x, y, rng, par), nil
}

// RunFrom hill-climbs starting from a copy of start instead of a random
// network. The layer widths in cfg are taken from start; start itself is
// not modified.
func RunFrom(cfg Config, start *Network, x, y *mat.Dense) (*Result, error) {
	return RunFromContext(context.Background(), cfg, start, x, y)
}

// RunFromContext is RunFrom with cancellation.
func RunFromContext(ctx context.Context, cfg Config, start *Network, x, y *mat.Dense) (*Result, error) {
	if start == nil {
		return nil, errors.New("search: nil start network")
	}
	dense1, _ := start.Layers()
	cfg.Inputs = start.Inputs()
	cfg.Hidden = dense1.OutFeatures()
	cfg.Classes = start.Classes()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkData(cfg, x, y); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Search noise, not security-critical.
	par := cfg.parallelConfig()

	best := start.Clone()
	best.SetParallel(par)
	return climb(ctx, cfg, best, x, y, rng, par), nil
}

// climb runs the accept-if-strictly-better loop starting from start.
func climb(ctx context.Context, cfg Config, start *Network, x, y *mat.Dense, rng *rand.Rand, par parallel.Config) *Result {
	criterion := nn.NewCategoricalCrossEntropy()
	criterion.SetParallel(par)
	batchSize, _ := x.Dims()

	res := &Result{
		Network: start,
		Loss:    math.Inf(1),
	}
	var window metrics.Window
	began := time.Now()

	for iter := 0; ; iter++ {
		if cfg.Iterations > 0 && iter >= cfg.Iterations {
			break
		}
		if cfg.Budget > 0 && time.Since(began) >= cfg.Budget {
			break
		}
		if ctx.Err() != nil {
			res.Canceled = true
			break
		}

		trial := res.Network.Perturb(cfg.Magnitude, rng)

		forwardStart := time.Now()
		output := trial.Forward(x)
		forwardTime := time.Since(forwardStart)

		scoreStart := time.Now()
		loss := nn.Calculate(criterion, output, y)
		accuracy := nn.Accuracy(output, y)
		scoreTime := time.Since(scoreStart)

		accepted := loss < res.Loss
		if accepted {
			res.Network = trial
			res.Loss = loss
			res.Accuracy = accuracy
			res.Predictions = output

			imp := Improvement{Iteration: iter, Loss: loss, Accuracy: accuracy}
			res.Improvements = append(res.Improvements, imp)
			if cfg.OnImprove != nil {
				cfg.OnImprove(imp)
			}
		}
		res.Iterations++

		window.Record(batchSize, forwardTime, scoreTime, loss, accepted)
		if cfg.LogEvery > 0 && res.Iterations%cfg.LogEvery == 0 && cfg.OnProgress != nil {
			cfg.OnProgress(Progress{
				Iteration: res.Iterations,
				BestLoss:  res.Loss,
				Window:    window.Snapshot(),
			})
		}
	}

	// Nothing accepted: report the starting network as evaluated.
	if res.Predictions == nil {
		res.Predictions = res.Network.Forward(x)
		res.Loss = nn.Calculate(criterion, res.Predictions, y)
		res.Accuracy = nn.Accuracy(res.Predictions, y)
	}
	res.Elapsed = time.Since(began)

	return res
}

// checkData verifies that x and y fit the configured network.
func checkData(cfg Config, x, y *mat.Dense) error {
	if x == nil || y == nil {
		return errors.New("search: nil batch")
	}
	if err := tensor.ShapeOf(x).Validate(); err != nil {
		return fmt.Errorf("search: empty feature batch: %w", err)
	}
	if err := tensor.ShapeOf(y).Validate(); err != nil {
		return fmt.Errorf("search: empty label batch: %w", err)
	}

	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != yr {
		return fmt.Errorf("search: %d samples but %d labels", xr, yr)
	}
	if xc != cfg.Inputs {
		return fmt.Errorf("search: samples have %d features, network expects %d", xc, cfg.Inputs)
	}

	switch {
	case yc == 1:
		for r := 0; r < yr; r++ {
			v := math.Round(y.At(r, 0))
			if math.IsNaN(v) || v < 0 || v >= float64(cfg.Classes) {
				return fmt.Errorf("search: label %v at row %d out of range [0, %d)", y.At(r, 0), r, cfg.Classes)
			}
		}
	case yc != cfg.Classes:
		return fmt.Errorf("search: label width %d is neither 1 nor the class count %d", yc, cfg.Classes)
	}
	return nil
}
