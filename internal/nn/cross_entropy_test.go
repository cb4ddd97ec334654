package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nnfs/internal/nn"
	"github.com/born-ml/nnfs/internal/tensor"
)

var softmaxOutputs = [][]float64{
	{0.7, 0.1, 0.2},
	{0.1, 0.5, 0.4},
	{0.02, 0.9, 0.08},
}

// TestCategoricalCrossEntropy_IndexLabels tests loss with class-index labels.
func TestCategoricalCrossEntropy_IndexLabels(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRows(softmaxOutputs)
	labels := tensor.Labels([]int{0, 1, 1})

	losses := criterion.Forward(preds, labels)
	require.Len(t, losses, 3)
	assert.InDelta(t, -math.Log(0.7), losses[0], 1e-12)
	assert.InDelta(t, -math.Log(0.5), losses[1], 1e-12)
	assert.InDelta(t, -math.Log(0.9), losses[2], 1e-12)

	mean := nn.Calculate(criterion, preds, labels)
	assert.InDelta(t, 0.38506088005216804, mean, 1e-12)
}

// TestCategoricalCrossEntropy_OneHotLabels tests that one-hot labels agree with index labels.
func TestCategoricalCrossEntropy_OneHotLabels(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRows(softmaxOutputs)

	byIndex := nn.Calculate(criterion, preds, tensor.Labels([]int{0, 1, 1}))
	byOneHot := nn.Calculate(criterion, preds, tensor.OneHot([]int{0, 1, 1}, 3))

	assert.InDelta(t, byIndex, byOneHot, 1e-12)
}

func TestCategoricalCrossEntropy_ProbabilityLabels(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRow([]float64{0.7, 0.1, 0.2})
	labels := tensor.FromRow([]float64{0.5, 0.0, 0.5})

	losses := criterion.Forward(preds, labels)
	assert.InDelta(t, -math.Log(0.45), losses[0], 1e-12)
}

// TestCategoricalCrossEntropy_Clipping tests that 0 and 1 predictions give finite losses.
func TestCategoricalCrossEntropy_Clipping(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRows([][]float64{
		{1.0, 0.0, 0.0},
		{1.0, 0.0, 0.0},
	})

	losses := criterion.Forward(preds, tensor.Labels([]int{0, 1}))
	for _, l := range losses {
		assert.False(t, math.IsInf(l, 0) || math.IsNaN(l), "loss %v must be finite", l)
	}
	assert.InDelta(t, -math.Log(1-nn.Epsilon), losses[0], 1e-15)
	assert.InDelta(t, -math.Log(nn.Epsilon), losses[1], 1e-9)

	oneHot := criterion.Forward(preds, tensor.OneHot([]int{0, 1}, 3))
	assert.InDelta(t, losses[0], oneHot[0], 1e-15)
	assert.InDelta(t, losses[1], oneHot[1], 1e-9)
}

func TestCategoricalCrossEntropy_LabelRounding(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRow([]float64{0.2, 0.8})

	losses := criterion.Forward(preds, tensor.FromRow([]float64{0.9999}))
	assert.InDelta(t, -math.Log(0.8), losses[0], 1e-12)
}

func TestCategoricalCrossEntropy_ContractViolations(t *testing.T) {
	criterion := nn.NewCategoricalCrossEntropy()
	preds := tensor.FromRows(softmaxOutputs)

	// Width 2 against 3 classes is ambiguous.
	assert.Panics(t, func() {
		criterion.Forward(preds, tensor.FromRows([][]float64{{1, 0}, {0, 1}, {0, 1}}))
	})
	// Row count mismatch.
	assert.Panics(t, func() {
		criterion.Forward(preds, tensor.Labels([]int{0, 1}))
	})
	// Index out of range.
	assert.Panics(t, func() {
		criterion.Forward(preds, tensor.Labels([]int{0, 1, 3}))
	})
}

func TestDetectLabelForm(t *testing.T) {
	assert.Equal(t, nn.LabelIndex, nn.DetectLabelForm(3, 1))
	assert.Equal(t, nn.LabelOneHot, nn.DetectLabelForm(3, 3))
	assert.Equal(t, nn.LabelIndex, nn.DetectLabelForm(1, 1))
	assert.Panics(t, func() { nn.DetectLabelForm(3, 2) })

	assert.Equal(t, "index", nn.LabelIndex.String())
	assert.Equal(t, "one-hot", nn.LabelOneHot.String())
}
