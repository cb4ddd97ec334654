package tensor

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a batch: [rows, cols].
type Shape []int

// ShapeOf returns the [rows, cols] shape of m.
func ShapeOf(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{r, c}
}

// NumElements returns the product of the dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate returns an error if any dimension is not positive.
// A batch with no samples or zero-width samples fails.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(dim int) bool { return dim <= 0 }); i >= 0 {
		return fmt.Errorf("dimension %d is %d, must be > 0", i, s[i])
	}
	return nil
}

// Equal reports whether s and other have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// String formats the shape as [r c].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
