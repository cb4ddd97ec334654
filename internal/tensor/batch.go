// Package tensor provides batch and label helpers over gonum dense matrices.
//
// A batch is a *mat.Dense with one row per sample. Labels are a *mat.Dense
// with one row per sample too: either a single column of class indices or
// one column per class (one-hot or probability rows).
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows builds a batch from a slice of equal-width rows.
//
// The rows are copied. Panics if rows is empty, any row is empty, or the
// rows have different widths.
//
// Example:
//
//	x := tensor.FromRows([][]float64{
//	    {1.0, 2.0, 3.0, 2.5},
//	    {2.0, 5.0, -1.0, 2.0},
//	})
func FromRows(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		panic("tensor.FromRows: empty batch")
	}
	width := len(rows[0])
	if width == 0 {
		panic("tensor.FromRows: zero-width rows")
	}

	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("tensor.FromRows: row %d has width %d, expected %d", i, len(row), width))
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), width, data)
}

// FromRow builds a single-sample batch of shape [1, len(row)].
func FromRow(row []float64) *mat.Dense {
	return FromRows([][]float64{row})
}

// Rows copies a batch back into a slice of rows.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(make([]float64, c), i, m)
	}
	return out
}

// Labels builds a single-column label batch from class indices.
func Labels(classes []int) *mat.Dense {
	if len(classes) == 0 {
		panic("tensor.Labels: empty labels")
	}
	data := make([]float64, len(classes))
	for i, c := range classes {
		data[i] = float64(c)
	}
	return mat.NewDense(len(classes), 1, data)
}

// OneHot builds a one-hot label batch with numClasses columns.
//
// Panics if any class index is outside [0, numClasses).
func OneHot(classes []int, numClasses int) *mat.Dense {
	if len(classes) == 0 {
		panic("tensor.OneHot: empty labels")
	}
	if numClasses <= 0 {
		panic(fmt.Sprintf("tensor.OneHot: invalid class count %d", numClasses))
	}
	out := mat.NewDense(len(classes), numClasses, nil)
	for i, c := range classes {
		if c < 0 || c >= numClasses {
			panic(fmt.Sprintf("tensor.OneHot: class %d out of range [0, %d)", c, numClasses))
		}
		out.Set(i, c, 1)
	}
	return out
}

// MustNonEmpty panics if m has no rows or no columns.
//
// The op string prefixes the panic message, e.g. "Dense.Forward".
func MustNonEmpty(op string, m mat.Matrix) {
	if d, ok := m.(*mat.Dense); m == nil || (ok && d == nil) {
		panic(op + ": nil batch")
	}
	if err := ShapeOf(m).Validate(); err != nil {
		panic(fmt.Sprintf("%s: degenerate batch %v: %v", op, ShapeOf(m), err))
	}
}
