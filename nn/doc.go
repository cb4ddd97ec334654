// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the forward-pass building blocks of a small
// fully-connected classifier.
//
// # Overview
//
// This package contains:
//   - Layers: Neuron, Dense
//   - Activations: ReLU, Softmax, Linear
//   - Loss functions: CategoricalCrossEntropy
//   - Metrics: Accuracy, Argmax
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Uniform, Zeros
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/nnfs/nn"
//	    "github.com/born-ml/nnfs/tensor"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(0))
//
//	    model := nn.NewSequential(
//	        nn.NewDense(2, 3, rng),
//	        nn.NewReLU(),
//	        nn.NewDense(3, 3, rng),
//	        nn.NewSoftmax(),
//	    )
//
//	    x := tensor.FromRows([][]float64{{0.1, 0.2}, {0.5, -0.3}})
//	    y := tensor.Labels([]int{0, 2})
//
//	    probs := model.Forward(x)
//	    loss := nn.Calculate(nn.NewCategoricalCrossEntropy(), probs, y)
//	    acc := nn.Accuracy(probs, y)
//	}
//
// # Layers
//
// Dense computes y = x·W + b with W of shape [inputs, outputs]. Weights start
// uniform in [-InitBound, InitBound], biases at zero. Perturb returns a new
// layer with random offsets and leaves the original intact.
//
// # Activations
//
// ReLU clamps negatives to zero. Softmax normalizes each row into a
// probability distribution after subtracting the row maximum.
//
// # Loss
//
// CategoricalCrossEntropy clips predictions into [1e-7, 1-1e-7] and accepts
// labels as a single class-index column or as one-hot rows.
//
// # Contract violations
//
// Shape mismatches, empty batches and ambiguous label widths panic.
package nn
