package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/parallel"
)

// Sequential is a container module that chains multiple stages together.
//
// Each stage's output becomes the next stage's input. Parameters stay owned
// by the stages themselves.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(2, 3, rng),
//	    nn.NewReLU(),
//	    nn.NewDense(3, 3, rng),
//	    nn.NewSoftmax(),
//	)
//
//	output := model.Forward(input)
//
// This is equivalent to:
//
//	h1 := dense1.Forward(input)
//	h2 := relu.Forward(h1)
//	h3 := dense2.Forward(h2)
//	output := softmax.Forward(h3)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all stages in sequence.
//
// Returns the output of the last stage. Panics if the container is empty.
func (s *Sequential) Forward(input *mat.Dense) *mat.Dense {
	if len(s.modules) == 0 {
		panic("Sequential.Forward: no modules")
	}

	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}

	return output
}

// Parameters returns all parameters from all stages.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// Add appends a stage to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of stages in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the stage at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// SetParallel propagates cfg to every stage that supports row parallelism.
func (s *Sequential) SetParallel(cfg parallel.Config) {
	for _, module := range s.modules {
		if pm, ok := module.(ParallelModule); ok {
			pm.SetParallel(cfg)
		}
	}
}

// String lists the stages, e.g. "Dense(2→3) → ReLU → Dense(3→3) → Softmax".
func (s *Sequential) String() string {
	names := make([]string, len(s.modules))
	for i, m := range s.modules {
		names[i] = fmt.Sprint(m)
	}
	return strings.Join(names, " → ")
}
