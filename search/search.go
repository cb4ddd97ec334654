// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package search provides the public API for random hill-climbing of a
// two-layer classifier.
//
// The network is Dense → ReLU → Dense → Softmax. Each iteration perturbs the
// best network found so far and keeps the trial only when its categorical
// cross-entropy on the training batch is strictly lower.
//
// Example:
//
//	x, y := ... // [n, 2] samples and [n, 1] class indices
//	cfg := search.DefaultConfig(2, 3)
//	cfg.OnImprove = func(imp search.Improvement) {
//	    log.Printf("iteration=%d loss=%.6f acc=%.3f", imp.Iteration, imp.Loss, imp.Accuracy)
//	}
//	res, err := search.Run(cfg, x, y)
package search

import (
	"context"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/search"
)

// Default search settings.
const (
	DefaultHidden     = search.DefaultHidden
	DefaultMagnitude  = search.DefaultMagnitude
	DefaultIterations = search.DefaultIterations
)

// Config captures the knobs of a search run.
type Config = search.Config

// Improvement records an accepted trial.
type Improvement = search.Improvement

// Progress is reported every Config.LogEvery iterations.
type Progress = search.Progress

// Result is the outcome of a search run.
type Result = search.Result

// Network is the Dense → ReLU → Dense → Softmax classifier being searched.
type Network = search.Network

// DefaultConfig returns a config for the given input width and class count.
func DefaultConfig(inputs, classes int) Config {
	return search.DefaultConfig(inputs, classes)
}

// NewNetwork creates a randomly initialized network.
func NewNetwork(inputs, hidden, classes int, rng *rand.Rand) *Network {
	return search.NewNetwork(inputs, hidden, classes, rng)
}

// Run hill-climbs a fresh random network on the batch x with labels y.
func Run(cfg Config, x, y *mat.Dense) (*Result, error) {
	return search.Run(cfg, x, y)
}

// RunFrom hill-climbs starting from an existing network. start is not modified.
func RunFrom(cfg Config, start *Network, x, y *mat.Dense) (*Result, error) {
	return search.RunFrom(cfg, start, x, y)
}

// RunContext is Run with cancellation. The best network found before ctx
// ended is returned with Result.Canceled set.
func RunContext(ctx context.Context, cfg Config, x, y *mat.Dense) (*Result, error) {
	return search.RunContext(ctx, cfg, x, y)
}

// RunFromContext is RunFrom with cancellation.
func RunFromContext(ctx context.Context, cfg Config, start *Network, x, y *mat.Dense) (*Result, error) {
	return search.RunFromContext(ctx, cfg, start, x, y)
}
