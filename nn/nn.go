// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/nn"
)

// Module interface defines the common interface for all forward-capable stages.
type Module = nn.Module

// Parameter represents a weight or bias matrix owned by a layer.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Neuron is a single unit of a dense layer.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with the given weights and bias.
func NewNeuron(weights []float64, bias float64) Neuron {
	return nn.NewNeuron(weights, bias)
}

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a new dense layer with uniform weights and zero biases.
//
// Example:
//
//	layer := nn.NewDense(2, 3, rand.New(rand.NewSource(0)))
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	return nn.NewDense(inFeatures, outFeatures, rng)
}

// NewDenseFromNeurons creates a dense layer whose j-th output is neurons[j].
func NewDenseFromNeurons(neurons ...Neuron) *Dense {
	return nn.NewDenseFromNeurons(neurons...)
}

// NewDenseFromParams creates a dense layer from [in, out] weights and [1, out] biases.
func NewDenseFromParams(weights, bias *mat.Dense) *Dense {
	return nn.NewDenseFromParams(weights, bias)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Softmax represents the row-wise softmax activation function.
type Softmax = nn.Softmax

// NewSoftmax creates a new Softmax activation layer.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// Linear represents the identity activation function.
type Linear = nn.Linear

// NewLinear creates a new identity activation layer.
func NewLinear() *Linear {
	return nn.NewLinear()
}

// Containers

// Sequential chains stages together.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Loss and metrics

// Loss reduces predictions and labels to per-sample losses.
type Loss = nn.Loss

// CategoricalCrossEntropy is the cross-entropy loss over probability rows.
type CategoricalCrossEntropy = nn.CategoricalCrossEntropy

// NewCategoricalCrossEntropy creates a new categorical cross-entropy loss.
func NewCategoricalCrossEntropy() *CategoricalCrossEntropy {
	return nn.NewCategoricalCrossEntropy()
}

// Calculate returns the mean per-sample loss.
func Calculate(loss Loss, predictions, labels *mat.Dense) float64 {
	return nn.Calculate(loss, predictions, labels)
}

// Accuracy returns the fraction of rows whose argmax matches the label.
func Accuracy(predictions, labels *mat.Dense) float64 {
	return nn.Accuracy(predictions, labels)
}

// Argmax returns the first index of the maximum value in row.
func Argmax(row []float64) int {
	return nn.Argmax(row)
}

// LabelForm tells how a label batch encodes the target class.
type LabelForm = nn.LabelForm

// Label encodings.
const (
	LabelIndex  = nn.LabelIndex
	LabelOneHot = nn.LabelOneHot
)

// DetectLabelForm determines the label encoding from the widths.
func DetectLabelForm(predWidth, labelWidth int) LabelForm {
	return nn.DetectLabelForm(predWidth, labelWidth)
}

// Initialization

// Uniform creates a rows×cols matrix drawn from U(-bound, bound).
func Uniform(rows, cols int, bound float64, rng *rand.Rand) *mat.Dense {
	return nn.Uniform(rows, cols, bound, rng)
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *mat.Dense {
	return nn.Zeros(rows, cols)
}
