package search

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/nnfs/internal/dataset"
	"github.com/born-ml/nnfs/internal/nn"
	"github.com/born-ml/nnfs/internal/tensor"
)

func verticalData(t *testing.T) (x, y *mat.Dense) {
	t.Helper()
	x, y = dataset.Vertical(100, 3, rand.New(rand.NewSource(42)))
	return x, y
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig(2, 3)
	require.NoError(t, cfg.Validate())

	for name, mutate := range map[string]func(*Config){
		"zero inputs":        func(c *Config) { c.Inputs = 0 },
		"zero hidden":        func(c *Config) { c.Hidden = 0 },
		"zero classes":       func(c *Config) { c.Classes = 0 },
		"zero magnitude":     func(c *Config) { c.Magnitude = 0 },
		"nan magnitude":      func(c *Config) { c.Magnitude = math.NaN() },
		"unbounded":          func(c *Config) { c.Iterations = 0 },
		"negative budget":    func(c *Config) { c.Budget = -time.Second },
		"negative workers":   func(c *Config) { c.Workers = -1 },
		"negative iteration": func(c *Config) { c.Iterations = -5 },
	} {
		c := DefaultConfig(2, 3)
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}

	budgetOnly := DefaultConfig(2, 3)
	budgetOnly.Iterations = 0
	budgetOnly.Budget = time.Second
	assert.NoError(t, budgetOnly.Validate())
}

func TestRun_Monotonic(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 500
	cfg.Seed = 1

	var seen []Improvement
	cfg.OnImprove = func(imp Improvement) { seen = append(seen, imp) }

	res, err := Run(cfg, x, y)
	require.NoError(t, err)

	assert.Equal(t, 500, res.Iterations)
	require.NotEmpty(t, res.Improvements)
	assert.Equal(t, res.Improvements, seen)
	assert.Equal(t, 0, res.Improvements[0].Iteration, "the first trial beats +Inf")

	for i := 1; i < len(res.Improvements); i++ {
		prev, cur := res.Improvements[i-1], res.Improvements[i]
		assert.Less(t, cur.Loss, prev.Loss, "improvement %d did not lower the loss", i)
		assert.Greater(t, cur.Iteration, prev.Iteration)
	}

	last := res.Improvements[len(res.Improvements)-1]
	assert.Equal(t, last.Loss, res.Loss)
	assert.Equal(t, last.Accuracy, res.Accuracy)
}

func TestRun_ResultMatchesBestNetwork(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 200
	cfg.Seed = 9

	res, err := Run(cfg, x, y)
	require.NoError(t, err)

	out := res.Network.Forward(x)
	assert.True(t, mat.Equal(out, res.Predictions))
	assert.Equal(t, nn.Calculate(nn.NewCategoricalCrossEntropy(), out, y), res.Loss)
	assert.Equal(t, nn.Accuracy(out, y), res.Accuracy)

	r, c := res.Predictions.Dims()
	assert.Equal(t, 300, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, floats.Sum(res.Predictions.RawRowView(i)), 1e-8)
	}
}

func TestRun_Improves(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 2000
	cfg.Seed = 3

	res, err := Run(cfg, x, y)
	require.NoError(t, err)

	first := res.Improvements[0]
	assert.Less(t, res.Loss, first.Loss)
}

func TestRun_Deterministic(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 300
	cfg.Seed = 77

	cfg.Workers = 1
	a, err := Run(cfg, x, y)
	require.NoError(t, err)

	cfg.Workers = 4
	b, err := Run(cfg, x, y)
	require.NoError(t, err)

	assert.Equal(t, a.Improvements, b.Improvements)
	assert.Equal(t, a.Loss, b.Loss)
	assert.True(t, mat.Equal(a.Predictions, b.Predictions))
}

func TestRun_OneHotLabels(t *testing.T) {
	x, y := verticalData(t)
	classes := make([]int, 300)
	for i := range classes {
		classes[i] = int(y.At(i, 0))
	}

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 100
	cfg.Seed = 5

	byIndex, err := Run(cfg, x, y)
	require.NoError(t, err)
	byOneHot, err := Run(cfg, x, tensor.OneHot(classes, 3))
	require.NoError(t, err)

	assert.InDelta(t, byIndex.Loss, byOneHot.Loss, 1e-12)
	assert.Equal(t, byIndex.Accuracy, byOneHot.Accuracy)
}

func TestRun_Budget(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 0
	cfg.Budget = 50 * time.Millisecond

	res, err := Run(cfg, x, y)
	require.NoError(t, err)
	assert.Positive(t, res.Iterations)
	assert.GreaterOrEqual(t, res.Elapsed, cfg.Budget)
}

func TestRun_Progress(t *testing.T) {
	x, y := verticalData(t)

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 100
	cfg.LogEvery = 25

	var reports []Progress
	cfg.OnProgress = func(p Progress) { reports = append(reports, p) }

	_, err := Run(cfg, x, y)
	require.NoError(t, err)

	require.Len(t, reports, 4)
	for i, p := range reports {
		assert.Equal(t, (i+1)*25, p.Iteration)
		assert.Equal(t, 25, p.Window.Trials)
		assert.False(t, math.IsInf(p.BestLoss, 0))
	}
}

func TestRun_DataErrors(t *testing.T) {
	x, y := verticalData(t)
	cfg := DefaultConfig(2, 3)

	_, err := Run(cfg, x, tensor.Labels([]int{0, 1}))
	assert.ErrorContains(t, err, "300 samples but 2 labels")

	wrongWidth := DefaultConfig(4, 3)
	_, err = Run(wrongWidth, x, y)
	assert.ErrorContains(t, err, "network expects 4")

	_, err = Run(cfg, x, mat.NewDense(300, 2, nil))
	assert.ErrorContains(t, err, "neither 1 nor the class count")

	bad := mat.DenseCopyOf(y)
	bad.Set(10, 0, 3)
	_, err = Run(cfg, x, bad)
	assert.ErrorContains(t, err, "out of range")

	_, err = Run(cfg, nil, y)
	assert.Error(t, err)

	cfg.Magnitude = -1
	_, err = Run(cfg, x, y)
	assert.Error(t, err)
}

func TestRunFrom(t *testing.T) {
	x, y := verticalData(t)
	start := NewNetwork(2, 4, 3, rand.New(rand.NewSource(8)))
	before := mat.DenseCopyOf(start.Parameters()[0].Value())

	cfg := Config{Magnitude: 0.05, Iterations: 50, Seed: 2}
	res, err := RunFrom(cfg, start, x, y)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, start.Parameters()[0].Value()), "start network must not change")
	dense1, _ := res.Network.Layers()
	assert.Equal(t, 4, dense1.OutFeatures())

	_, err = RunFrom(cfg, nil, x, y)
	assert.Error(t, err)
}

func TestRunContext_Canceled(t *testing.T) {
	x, y := verticalData(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig(2, 3)
	res, err := RunContext(ctx, cfg, x, y)
	require.NoError(t, err)

	assert.True(t, res.Canceled)
	assert.Zero(t, res.Iterations)
	assert.Empty(t, res.Improvements)
	require.NotNil(t, res.Predictions, "the starting network is still evaluated")
	assert.False(t, math.IsInf(res.Loss, 1))
}

func TestRunContext_CancelMidRun(t *testing.T) {
	x, y := verticalData(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := DefaultConfig(2, 3)
	cfg.Iterations = 0
	cfg.Budget = time.Minute
	cfg.LogEvery = 10
	cfg.OnProgress = func(p Progress) {
		if p.Iteration >= 30 {
			cancel()
		}
	}

	res, err := RunContext(ctx, cfg, x, y)
	require.NoError(t, err)
	assert.True(t, res.Canceled)
	assert.Equal(t, 30, res.Iterations)
}
