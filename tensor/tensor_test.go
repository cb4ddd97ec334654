// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/nnfs/tensor"
)

// TestBatchAPI verifies the public helpers expose the internal batch layout.
func TestBatchAPI(t *testing.T) {
	x := tensor.FromRows([][]float64{{1, 2, 3, 2.5}, {2, 5, -1, 2}})
	assert.True(t, tensor.ShapeOf(x).Equal(tensor.Shape{2, 4}))
	assert.Equal(t, [][]float64{{1, 2, 3, 2.5}, {2, 5, -1, 2}}, tensor.Rows(x))

	y := tensor.Labels([]int{0, 2})
	assert.True(t, tensor.ShapeOf(y).Equal(tensor.Shape{2, 1}))
	assert.Equal(t, 2.0, y.At(1, 0))

	oh := tensor.OneHot([]int{0, 2}, 3)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 0, 1}}, tensor.Rows(oh))

	assert.True(t, tensor.ShapeOf(tensor.FromRow([]float64{1, 2})).Equal(tensor.Shape{1, 2}))
}

func TestFromRows_Ragged(t *testing.T) {
	assert.Panics(t, func() {
		tensor.FromRows([][]float64{{1, 2}, {3}})
	})
}
