package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/tensor"
)

// Loss reduces a batch of predictions and labels to per-sample losses.
type Loss interface {
	// Forward returns one loss value per sample.
	Forward(predictions, labels *mat.Dense) []float64
}

// Calculate returns the mean of loss.Forward over the batch.
//
// Example:
//
//	loss := nn.Calculate(nn.NewCategoricalCrossEntropy(), probs, labels)
func Calculate(loss Loss, predictions, labels *mat.Dense) float64 {
	losses := loss.Forward(predictions, labels)
	return floats.Sum(losses) / float64(len(losses))
}

// LabelForm tells how a label batch encodes the target class.
type LabelForm int

const (
	// LabelIndex labels carry one class index per sample (width 1).
	LabelIndex LabelForm = iota + 1
	// LabelOneHot labels carry one value per class (width == prediction width).
	LabelOneHot
)

// String implements fmt.Stringer.
func (f LabelForm) String() string {
	switch f {
	case LabelIndex:
		return "index"
	case LabelOneHot:
		return "one-hot"
	default:
		return fmt.Sprintf("LabelForm(%d)", int(f))
	}
}

// DetectLabelForm determines the label encoding from the widths.
//
// Width 1 means class indices, width equal to the prediction width means
// one-hot or probability rows. Any other width is ambiguous and panics.
func DetectLabelForm(predWidth, labelWidth int) LabelForm {
	switch {
	case labelWidth == 1:
		return LabelIndex
	case labelWidth == predWidth:
		return LabelOneHot
	default:
		panic(fmt.Sprintf("label width should be 1 or equal to prediction width: prediction width %d, label width %d",
			predWidth, labelWidth))
	}
}

// checkLabels validates the pairing of predictions and labels and returns the label form.
func checkLabels(op string, predictions, labels *mat.Dense) LabelForm {
	tensor.MustNonEmpty(op, predictions)
	tensor.MustNonEmpty(op, labels)
	pr, pc := predictions.Dims()
	lr, lc := labels.Dims()
	if pr != lr {
		panic(fmt.Sprintf("%s: %d predictions but %d labels", op, pr, lr))
	}
	return DetectLabelForm(pc, lc)
}

// classIndex converts an index label to a class number in [0, numClasses).
//
// Labels are rounded to the nearest integer; out of range values panic.
func classIndex(op string, label float64, numClasses int) int {
	idx := math.Round(label)
	if math.IsNaN(idx) || idx < 0 || idx >= float64(numClasses) {
		panic(fmt.Sprintf("%s: label %v out of range [0, %d)", op, label, numClasses))
	}
	return int(idx)
}
