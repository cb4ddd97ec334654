package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/tensor"
)

// Parameter represents a weight or bias matrix owned by a single layer.
//
// Parameters are only changed by weight-update operations (random init,
// perturbation), which always produce a new Parameter. A Parameter handed
// out by a layer must be treated as read-only.
//
// Example:
//
//	weight := nn.NewParameter("weight", mat.NewDense(4, 3, nil))
//	w := weight.Value()
type Parameter struct {
	name  string     // Parameter name (e.g., "weight", "bias")
	value *mat.Dense // The parameter values
}

// NewParameter creates a new parameter.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Shape returns the [rows, cols] shape of the parameter.
func (p *Parameter) Shape() tensor.Shape {
	return tensor.ShapeOf(p.value)
}

// Clone returns a deep copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	return NewParameter(p.name, mat.DenseCopyOf(p.value))
}
