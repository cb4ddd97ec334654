// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public helpers for building sample batches.
//
// A batch is a *mat.Dense with one sample per row. Labels are either a single
// column of class indices or one one-hot row per sample.
//
// Example:
//
//	x := tensor.FromRows([][]float64{{1, 2, 3, 2.5}, {2, 5, -1, 2}})
//	y := tensor.Labels([]int{0, 1})
//	fmt.Println(tensor.ShapeOf(x)) // [2 4]
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/tensor"
)

// Shape represents the dimensions of a batch.
// Example: Shape{2, 3} is a batch of 2 samples with 3 features each.
type Shape = tensor.Shape

// ShapeOf returns the [rows, cols] shape of m.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}

// FromRows builds a batch from equally sized rows.
// Panics on empty, zero-width or ragged input.
func FromRows(rows [][]float64) *mat.Dense {
	return tensor.FromRows(rows)
}

// FromRow builds a single-sample batch.
func FromRow(row []float64) *mat.Dense {
	return tensor.FromRow(row)
}

// Rows copies m into a slice of rows.
func Rows(m mat.Matrix) [][]float64 {
	return tensor.Rows(m)
}

// Labels builds an [n, 1] column of class indices.
func Labels(classes []int) *mat.Dense {
	return tensor.Labels(classes)
}

// OneHot builds an [n, numClasses] one-hot label batch.
func OneHot(classes []int, numClasses int) *mat.Dense {
	return tensor.OneHot(classes, numClasses)
}
