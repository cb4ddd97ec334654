package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Neuron is a single unit of a dense layer: output = Σ wᵢxᵢ + b.
type Neuron struct {
	weights []float64
	bias    float64
}

// NewNeuron creates a neuron with the given weights and bias.
// The weights are copied.
func NewNeuron(weights []float64, bias float64) Neuron {
	w := make([]float64, len(weights))
	copy(w, weights)
	return Neuron{weights: w, bias: bias}
}

// Forward computes the neuron output for one sample.
//
// Panics if len(input) differs from the number of weights.
func (n Neuron) Forward(input []float64) float64 {
	if len(input) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(input)))
	}
	return floats.Dot(n.weights, input) + n.bias
}

// Weights returns a copy of the neuron weights.
func (n Neuron) Weights() []float64 {
	w := make([]float64, len(n.weights))
	copy(w, n.weights)
	return w
}

// Bias returns the neuron bias.
func (n Neuron) Bias() float64 {
	return n.bias
}
