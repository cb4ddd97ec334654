package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/parallel"
	"github.com/born-ml/nnfs/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x·W + b
// where:
//   - x is the input batch with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [1, out_features]
//   - y is the output batch with shape [batch_size, out_features]
//
// Column j of W together with b[j] is the j-th neuron of the layer.
//
// Weights are initialized from U(-InitBound, InitBound).
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewDense(2, 3, rng)
//	output := layer.Forward(input)  // shape: [batch_size, 3]
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
	par         parallel.Config
}

// NewDense creates a new Dense layer with random weights and zero biases.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features (neurons)
//   - rng: Random source for the weights; nil uses the global source
//
// Returns a new Dense layer.
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewDense: invalid shape [%d, %d]", inFeatures, outFeatures))
	}
	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Uniform(inFeatures, outFeatures, InitBound, rng)),
		bias:        NewParameter("bias", Zeros(1, outFeatures)),
		par:         parallel.DefaultConfig(),
	}
}

// NewDenseFromNeurons creates a Dense layer from explicit neurons.
//
// Neuron j becomes output column j. All neurons must have the same
// number of weights.
//
// Example:
//
//	layer := nn.NewDenseFromNeurons(
//	    nn.NewNeuron([]float64{0.2, 0.8, -0.5, 1.0}, 2.0),
//	    nn.NewNeuron([]float64{0.5, -0.91, 0.26, -0.5}, 3.0),
//	    nn.NewNeuron([]float64{-0.26, -0.27, 0.17, 0.87}, 0.5),
//	)
func NewDenseFromNeurons(neurons ...Neuron) *Dense {
	if len(neurons) == 0 {
		panic("NewDenseFromNeurons: no neurons")
	}
	in := len(neurons[0].weights)
	if in == 0 {
		panic("NewDenseFromNeurons: neurons have no weights")
	}

	w := mat.NewDense(in, len(neurons), nil)
	b := mat.NewDense(1, len(neurons), nil)
	for j, n := range neurons {
		if len(n.weights) != in {
			panic(fmt.Sprintf("NewDenseFromNeurons: neuron %d has %d weights, expected %d", j, len(n.weights), in))
		}
		w.SetCol(j, n.weights)
		b.Set(0, j, n.bias)
	}

	return NewDenseFromParams(w, b)
}

// NewDenseFromParams creates a Dense layer from a weight matrix of shape
// [in, out] and a bias matrix of shape [1, out]. Both are copied.
func NewDenseFromParams(weights, bias *mat.Dense) *Dense {
	in, out := weights.Dims()
	br, bc := bias.Dims()
	if br != 1 || bc != out {
		panic(fmt.Sprintf("NewDenseFromParams: bias shape [%d, %d] does not match %d outputs", br, bc, out))
	}
	return &Dense{
		inFeatures:  in,
		outFeatures: out,
		weight:      NewParameter("weight", mat.DenseCopyOf(weights)),
		bias:        NewParameter("bias", mat.DenseCopyOf(bias)),
		par:         parallel.DefaultConfig(),
	}
}

// Forward computes the output of the dense layer.
//
// Performs: y = x·W + b
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Every row is computed exactly as ForwardSample would compute it, so
// batched and per-sample results are bit-identical. Rows are spread over
// goroutines according to the layer's parallel config. The layer is not
// modified.
func (d *Dense) Forward(input *mat.Dense) *mat.Dense {
	tensor.MustNonEmpty("Dense.Forward", input)
	rows, cols := input.Dims()
	if cols != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input with %d features, got %d", d.inFeatures, cols))
	}

	output := mat.NewDense(rows, d.outFeatures, nil)
	parallel.For(rows, func(r int) {
		d.forwardInto(output.RawRowView(r), input.RawRowView(r))
	}, d.par)

	return output
}

// ForwardSample computes the output for a single sample.
//
// Panics if len(input) != InFeatures().
func (d *Dense) ForwardSample(input []float64) []float64 {
	if len(input) != d.inFeatures {
		panic(fmt.Sprintf("Dense.ForwardSample: expected %d features, got %d", d.inFeatures, len(input)))
	}
	out := make([]float64, d.outFeatures)
	d.forwardInto(out, input)
	return out
}

// forwardInto writes x·W + b into dst, accumulating one input feature at a time.
func (d *Dense) forwardInto(dst, x []float64) {
	copy(dst, d.bias.Value().RawRowView(0))
	w := d.weight.Value()
	for i, xi := range x {
		floats.AddScaled(dst, xi, w.RawRowView(i))
	}
}

// Perturb returns a new layer whose every weight and bias entry is offset
// by an independent draw from U[-magnitude, magnitude].
//
// The receiver is left unchanged so callers can roll back to it.
// Panics if magnitude is negative.
func (d *Dense) Perturb(magnitude float64, rng *rand.Rand) *Dense {
	if magnitude < 0 {
		panic(fmt.Sprintf("Dense.Perturb: negative magnitude %g", magnitude))
	}
	next := d.Clone()
	for _, p := range next.Parameters() {
		m := p.Value()
		r, _ := m.Dims()
		for i := 0; i < r; i++ {
			row := m.RawRowView(i)
			for j := range row {
				row[j] += symmetric(magnitude, rng)
			}
		}
	}
	return next
}

// Clone returns a deep copy of the layer.
func (d *Dense) Clone() *Dense {
	return &Dense{
		inFeatures:  d.inFeatures,
		outFeatures: d.outFeatures,
		weight:      d.weight.Clone(),
		bias:        d.bias.Clone(),
		par:         d.par,
	}
}

// SetParallel sets the row-parallelism used by Forward.
func (d *Dense) SetParallel(cfg parallel.Config) {
	d.par = cfg
}

// Neuron returns the j-th neuron of the layer.
func (d *Dense) Neuron(j int) Neuron {
	if j < 0 || j >= d.outFeatures {
		panic(fmt.Sprintf("Dense.Neuron: index %d out of range [0, %d)", j, d.outFeatures))
	}
	return Neuron{
		weights: mat.Col(nil, j, d.weight.Value()),
		bias:    d.bias.Value().At(0, j),
	}
}

// Parameters returns the parameters of this layer: [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// String implements fmt.Stringer for logging stage lists.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d→%d)", d.inFeatures, d.outFeatures)
}
