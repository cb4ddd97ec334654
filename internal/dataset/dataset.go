// Package dataset generates the synthetic point clouds used to exercise the
// classifier: spirals, vertical stripes and a sine wave.
//
// Every generator returns a feature batch x with one row per point and a
// parallel label batch y with one column. For the classification sets the
// label is the class index; for Sine it is the regression target.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced values over [start, end].
//
// Linspace(0, 1, 1) returns [0].
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		panic(fmt.Sprintf("dataset.Linspace: invalid count %d", n))
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// Spiral generates classes interleaved spirals of samples points each.
//
// For class c, r runs linearly over [0, 1] and t over [4c, 4(c+1)] with
// U(0, 0.2) noise added; the point is (r·sin(2.5t), r·cos(2.5t)).
func Spiral(samples, classes int, rng *rand.Rand) (x, y *mat.Dense) {
	checkCounts("Spiral", samples, classes)

	x = mat.NewDense(samples*classes, 2, nil)
	y = mat.NewDense(samples*classes, 1, nil)

	row := 0
	for class := 0; class < classes; class++ {
		r := Linspace(0, 1, samples)
		t := Linspace(float64(class)*4, float64(class+1)*4, samples)
		for i := 0; i < samples; i++ {
			ti := t[i] + uniform(rng)*0.2
			x.Set(row, 0, r[i]*math.Sin(ti*2.5))
			x.Set(row, 1, r[i]*math.Cos(ti*2.5))
			y.Set(row, 0, float64(class))
			row++
		}
	}

	return x, y
}

// Vertical generates classes vertical stripes of samples points each.
//
// A point of class c is (0.1·u + c/3, 0.1·v + 0.5) with u, v ~ U(0, 1).
func Vertical(samples, classes int, rng *rand.Rand) (x, y *mat.Dense) {
	checkCounts("Vertical", samples, classes)

	x = mat.NewDense(samples*classes, 2, nil)
	y = mat.NewDense(samples*classes, 1, nil)

	row := 0
	for class := 0; class < classes; class++ {
		for i := 0; i < samples; i++ {
			x.Set(row, 0, uniform(rng)*0.1+float64(class)/3)
			x.Set(row, 1, uniform(rng)*0.1+0.5)
			y.Set(row, 0, float64(class))
			row++
		}
	}

	return x, y
}

// Sine samples one period of sin(2πx) at x = i/samples.
func Sine(samples int) (x, y *mat.Dense) {
	checkCounts("Sine", samples, 1)

	x = mat.NewDense(samples, 1, nil)
	y = mat.NewDense(samples, 1, nil)
	for i := 0; i < samples; i++ {
		v := float64(i) / float64(samples)
		x.Set(i, 0, v)
		y.Set(i, 0, math.Sin(v*2*math.Pi))
	}

	return x, y
}

// Generate dispatches to a classification generator by name.
//
// Supported names are "spiral" and "vertical".
func Generate(name string, samples, classes int, rng *rand.Rand) (x, y *mat.Dense, err error) {
	if samples <= 0 || classes <= 0 {
		return nil, nil, fmt.Errorf("dataset %q: samples and classes must be > 0 (got %d, %d)", name, samples, classes)
	}
	switch strings.ToLower(name) {
	case "spiral":
		x, y = Spiral(samples, classes, rng)
	case "vertical":
		x, y = Vertical(samples, classes, rng)
	default:
		return nil, nil, fmt.Errorf("unknown dataset %q (want spiral or vertical)", name)
	}
	return x, y, nil
}

func checkCounts(op string, samples, classes int) {
	if samples <= 0 || classes <= 0 {
		panic(fmt.Sprintf("dataset.%s: samples and classes must be > 0 (got %d, %d)", op, samples, classes))
	}
}

func uniform(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	//nolint:gosec // Synthetic data, not security-critical.
	return rand.Float64()
}
