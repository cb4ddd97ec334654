package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/parallel"
	"github.com/born-ml/nnfs/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// NaN inputs propagate unchanged. The most recent output is kept and can be
// read back with Output.
//
// Example:
//
//	relu := nn.NewReLU()
//	output := relu.Forward(input)  // All negative values become 0
type ReLU struct {
	output *mat.Dense
	par    parallel.Config
}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{par: parallel.DefaultConfig()}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(input *mat.Dense) *mat.Dense {
	tensor.MustNonEmpty("ReLU.Forward", input)
	rows, cols := input.Dims()

	output := mat.NewDense(rows, cols, nil)
	parallel.For(rows, func(i int) {
		reluInto(output.RawRowView(i), input.RawRowView(i))
	}, r.par)

	r.output = output
	return output
}

// ForwardSample applies ReLU to a single row.
func (r *ReLU) ForwardSample(input []float64) []float64 {
	out := make([]float64, len(input))
	reluInto(out, input)
	return out
}

// Output returns the result of the most recent Forward call, or nil.
func (r *ReLU) Output() *mat.Dense {
	return r.output
}

// SetParallel sets the row-parallelism used by Forward.
func (r *ReLU) SetParallel(cfg parallel.Config) {
	r.par = cfg
}

// Parameters returns an empty slice (ReLU has no parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

func reluInto(dst, src []float64) {
	for i, v := range src {
		dst[i] = math.Max(0, v)
	}
}

// Softmax is a softmax activation module, applied to each row independently.
//
// Applies: softmax(x)[i] = exp(x[i] - max(x)) / Σ exp(x[j] - max(x))
//
// The row maximum is subtracted before exponentiating so large inputs do not
// overflow. Every output row sums to 1 and all entries lie in [0, 1].
//
// Example:
//
//	softmax := nn.NewSoftmax()
//	probs := softmax.Forward(logits)  // Each row is a probability distribution
type Softmax struct {
	output *mat.Dense
	par    parallel.Config
}

// NewSoftmax creates a new Softmax activation module.
func NewSoftmax() *Softmax {
	return &Softmax{par: parallel.DefaultConfig()}
}

// Forward applies softmax to every row of input.
//
// Panics on an empty batch or zero-width rows.
func (s *Softmax) Forward(input *mat.Dense) *mat.Dense {
	tensor.MustNonEmpty("Softmax.Forward", input)
	rows, cols := input.Dims()

	output := mat.NewDense(rows, cols, nil)
	parallel.For(rows, func(i int) {
		softmaxInto(output.RawRowView(i), input.RawRowView(i))
	}, s.par)

	s.output = output
	return output
}

// ForwardSample applies softmax to a single row.
//
// Panics if row is empty.
func (s *Softmax) ForwardSample(row []float64) []float64 {
	if len(row) == 0 {
		panic("Softmax.ForwardSample: empty row")
	}
	out := make([]float64, len(row))
	softmaxInto(out, row)
	return out
}

// Output returns the result of the most recent Forward call, or nil.
func (s *Softmax) Output() *mat.Dense {
	return s.output
}

// SetParallel sets the row-parallelism used by Forward.
func (s *Softmax) SetParallel(cfg parallel.Config) {
	s.par = cfg
}

// Parameters returns an empty slice (Softmax has no parameters).
func (s *Softmax) Parameters() []*Parameter {
	return nil
}

// softmaxInto writes softmax(src) into dst. dst and src must not alias.
func softmaxInto(dst, src []float64) {
	maxVal := floats.Max(src)
	for i, v := range src {
		dst[i] = math.Exp(v - maxVal)
	}
	sum := floats.Sum(dst)
	for i := range dst {
		dst[i] /= sum
	}
}

// Linear is the identity activation: f(x) = x.
//
// It is used where a stage is required but no non-linearity is wanted,
// e.g. regression outputs.
type Linear struct {
	output *mat.Dense
}

// NewLinear creates a new identity activation module.
func NewLinear() *Linear {
	return &Linear{}
}

// Forward returns a copy of input.
func (l *Linear) Forward(input *mat.Dense) *mat.Dense {
	tensor.MustNonEmpty("Linear.Forward", input)
	l.output = mat.DenseCopyOf(input)
	return l.output
}

// Output returns the result of the most recent Forward call, or nil.
func (l *Linear) Output() *mat.Dense {
	return l.output
}

// Parameters returns an empty slice (Linear has no parameters).
func (l *Linear) Parameters() []*Parameter {
	return nil
}

// String implements fmt.Stringer for logging stage lists.
func (r *ReLU) String() string { return "ReLU" }

// String implements fmt.Stringer for logging stage lists.
func (s *Softmax) String() string { return "Softmax" }

// String implements fmt.Stringer for logging stage lists.
func (l *Linear) String() string { return "Linear" }
