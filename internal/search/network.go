package search

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/nn"
	"github.com/born-ml/nnfs/internal/parallel"
)

// Network is the fixed two-layer classifier driven by the search loop.
//
// Architecture:
//   - Dense₁: inputs → hidden
//   - ReLU
//   - Dense₂: hidden → classes
//   - Softmax
//
// Perturb and Clone return new networks; a Network's weights are never
// changed in place, so the last accepted state is always available.
type Network struct {
	dense1  *nn.Dense
	relu    *nn.ReLU
	dense2  *nn.Dense
	softmax *nn.Softmax
	model   *nn.Sequential
	par     parallel.Config
}

// NewNetwork creates a network with randomly initialized dense layers.
func NewNetwork(inputs, hidden, classes int, rng *rand.Rand) *Network {
	return NewNetworkFromLayers(
		nn.NewDense(inputs, hidden, rng),
		nn.NewDense(hidden, classes, rng),
	)
}

// NewNetworkFromLayers assembles a network around existing dense layers.
// The layers are used as-is, not copied.
//
// Panics if dense1's output width differs from dense2's input width.
func NewNetworkFromLayers(dense1, dense2 *nn.Dense) *Network {
	if dense1.OutFeatures() != dense2.InFeatures() {
		panic(fmt.Sprintf("search.NewNetworkFromLayers: layer 1 has %d outputs but layer 2 expects %d inputs",
			dense1.OutFeatures(), dense2.InFeatures()))
	}
	n := &Network{
		dense1:  dense1,
		relu:    nn.NewReLU(),
		dense2:  dense2,
		softmax: nn.NewSoftmax(),
	}
	n.model = nn.NewSequential(n.dense1, n.relu, n.dense2, n.softmax)
	n.SetParallel(parallel.DefaultConfig())
	return n
}

// Forward runs the batch through Dense₁→ReLU→Dense₂→Softmax and returns
// one probability row per sample.
func (n *Network) Forward(x *mat.Dense) *mat.Dense {
	return n.model.Forward(x)
}

// Perturb returns a new network with every weight and bias of both dense
// layers offset by an independent U[-magnitude, magnitude] draw.
// Activations are fixed and the receiver is left unchanged.
func (n *Network) Perturb(magnitude float64, rng *rand.Rand) *Network {
	next := NewNetworkFromLayers(
		n.dense1.Perturb(magnitude, rng),
		n.dense2.Perturb(magnitude, rng),
	)
	next.SetParallel(n.par)
	return next
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	next := NewNetworkFromLayers(n.dense1.Clone(), n.dense2.Clone())
	next.SetParallel(n.par)
	return next
}

// SetParallel sets the row-parallelism of every stage.
func (n *Network) SetParallel(cfg parallel.Config) {
	n.par = cfg
	n.model.SetParallel(cfg)
}

// Layers returns the two dense layers.
func (n *Network) Layers() (dense1, dense2 *nn.Dense) {
	return n.dense1, n.dense2
}

// Parameters returns the weights and biases of both dense layers.
func (n *Network) Parameters() []*nn.Parameter {
	return n.model.Parameters()
}

// Inputs returns the input feature width.
func (n *Network) Inputs() int {
	return n.dense1.InFeatures()
}

// Classes returns the prediction width.
func (n *Network) Classes() int {
	return n.dense2.OutFeatures()
}

// String describes the stage chain.
func (n *Network) String() string {
	return n.model.String()
}
