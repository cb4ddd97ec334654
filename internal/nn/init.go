package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// InitBound is the half-width of the uniform range used for weight
// initialization: weights are drawn from U(-InitBound, InitBound).
var InitBound = 1.0

// Uniform creates a rows×cols matrix with values drawn independently from
// U(-bound, bound).
//
// Parameters:
//   - rows, cols: Shape of the matrix
//   - bound: Half-width of the range
//   - rng: Random source; nil uses the math/rand global source
//
// Returns the initialized matrix.
func Uniform(rows, cols int, bound float64, rng *rand.Rand) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = symmetric(bound, rng)
		}
	}
	return m
}

// Zeros creates a rows×cols matrix filled with zeros.
//
// This is used for bias initialization.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// symmetric draws one value from U(-bound, bound).
func symmetric(bound float64, rng *rand.Rand) float64 {
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		//nolint:gosec // Weight initialization is not security-critical.
		u = rand.Float64()
	}
	return (u*2.0 - 1.0) * bound
}
