package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/parallel"
)

// Epsilon bounds predictions away from 0 and 1 before taking logarithms.
const Epsilon = 1e-7

// CategoricalCrossEntropy computes cross-entropy loss over probability rows.
//
// Predictions are expected to be probabilities (e.g. Softmax output).
// Each value is clipped into [Epsilon, 1-Epsilon] first so log(0) never
// happens; both bounds are clipped so the mean is not pulled toward either end.
//
// Mathematical Formulation:
//
//	index labels:   loss = -ln(p[label])
//	one-hot labels: loss = -ln(Σ pᵢ·yᵢ)
//
// Usage:
//
//	criterion := nn.NewCategoricalCrossEntropy()
//	probs := softmax.Forward(logits)               // [batch_size, num_classes]
//	losses := criterion.Forward(probs, labels)     // one loss per sample
//	mean := nn.Calculate(criterion, probs, labels) // scalar
type CategoricalCrossEntropy struct {
	par parallel.Config
}

// NewCategoricalCrossEntropy creates a new categorical cross-entropy loss.
func NewCategoricalCrossEntropy() *CategoricalCrossEntropy {
	return &CategoricalCrossEntropy{par: parallel.DefaultConfig()}
}

// Forward computes the per-sample losses.
//
// Parameters:
//   - predictions: Probability rows with shape [batch_size, num_classes]
//   - labels: [batch_size, 1] class indices or [batch_size, num_classes] one-hot rows
//
// Panics if the row counts differ or the label width is neither 1 nor num_classes.
func (c *CategoricalCrossEntropy) Forward(predictions, labels *mat.Dense) []float64 {
	const op = "CategoricalCrossEntropy.Forward"
	form := checkLabels(op, predictions, labels)
	rows, numClasses := predictions.Dims()

	// Resolve index labels up front so a bad label panics on the caller's goroutine.
	var targets []int
	if form == LabelIndex {
		targets = make([]int, rows)
		for r := range targets {
			targets[r] = classIndex(op, labels.At(r, 0), numClasses)
		}
	}

	losses := make([]float64, rows)
	parallel.For(rows, func(r int) {
		pred := predictions.RawRowView(r)
		switch form {
		case LabelIndex:
			losses[r] = -math.Log(clip(pred[targets[r]]))
		case LabelOneHot:
			clipped := make([]float64, numClasses)
			for i, p := range pred {
				clipped[i] = clip(p)
			}
			losses[r] = -math.Log(floats.Dot(clipped, labels.RawRowView(r)))
		}
	}, c.par)

	return losses
}

// SetParallel sets the row-parallelism used by Forward.
func (c *CategoricalCrossEntropy) SetParallel(cfg parallel.Config) {
	c.par = cfg
}

// clip bounds p into [Epsilon, 1-Epsilon].
func clip(p float64) float64 {
	return math.Min(math.Max(p, Epsilon), 1-Epsilon)
}
