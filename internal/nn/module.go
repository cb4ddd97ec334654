// Package nn implements the forward-pass building blocks of a small
// fully-connected classifier.
//
// This package provides:
//   - Module interface: Base interface for all forward-capable stages
//   - Parameter: Weight and bias storage owned by a single layer
//   - Neuron, Dense: Fully connected layer (y = x·W + b)
//   - Activations: ReLU, Softmax, Linear
//   - Loss functions: CategoricalCrossEntropy
//   - Accuracy: Fraction of correctly classified samples
//   - Sequential: Container for stacking stages
//
// Batches are *mat.Dense values with one row per sample. Contract violations
// (shape mismatch, empty batch, ambiguous labels) panic.
package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/parallel"
)

// Module is the base interface for all neural network stages.
//
// Every stage must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all parameters owned by the stage
//
// Stages can be composed:
//
//	model := nn.NewSequential(
//	    nn.NewDense(2, 3, rng),
//	    nn.NewReLU(),
//	    nn.NewDense(3, 3, rng),
//	    nn.NewSoftmax(),
//	)
type Module interface {
	// Forward computes the output batch for the given input batch.
	//
	// The output has the same number of rows as the input.
	Forward(input *mat.Dense) *mat.Dense

	// Parameters returns the parameters owned by this stage.
	//
	// Returns an empty slice for stages without parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}

// ParallelModule is implemented by stages whose per-row work can be spread
// across goroutines.
type ParallelModule interface {
	SetParallel(cfg parallel.Config)
}
