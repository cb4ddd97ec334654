package nn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Argmax returns the index of the maximum value in row.
//
// When several entries share the maximum the first one wins, so the result
// is reproducible for identical input. Panics if row is empty.
func Argmax(row []float64) int {
	if len(row) == 0 {
		panic("Argmax: empty row")
	}
	return floats.MaxIdx(row)
}

// Accuracy computes classification accuracy for a batch.
//
// The predicted class of each row is its argmax. It is compared with the
// class index for width-1 labels, or with the argmax of the label row for
// one-hot labels.
//
// Parameters:
//   - predictions: Prediction rows [batch_size, num_classes]
//   - labels: [batch_size, 1] class indices or [batch_size, num_classes] one-hot rows
//
// Returns:
//   - Fraction of correctly classified samples, between 0 and 1.
func Accuracy(predictions, labels *mat.Dense) float64 {
	const op = "Accuracy"
	form := checkLabels(op, predictions, labels)
	rows, numClasses := predictions.Dims()

	correct := 0
	for r := 0; r < rows; r++ {
		predicted := Argmax(predictions.RawRowView(r))

		var target int
		if form == LabelIndex {
			target = classIndex(op, labels.At(r, 0), numClasses)
		} else {
			target = Argmax(labels.RawRowView(r))
		}

		if predicted == target {
			correct++
		}
	}

	return float64(correct) / float64(rows)
}
