package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(300, 20*time.Millisecond, 10*time.Millisecond, 1.2, true)
	w.Record(300, 10*time.Millisecond, 20*time.Millisecond, 0.8, false)
	assert.Equal(t, 2, w.Trials())

	snap := w.Snapshot()
	assert.InDelta(t, 10000.0, snap.SamplesPerSec, 1)
	assert.InDelta(t, 15.0, snap.AvgForwardMS, 1e-9)
	assert.InDelta(t, 15.0, snap.AvgScoreMS, 1e-9)
	assert.Equal(t, 2, snap.Trials)
	assert.Equal(t, 1, snap.Accepted)
	assert.Equal(t, 0.8, snap.LastLoss)

	assert.Equal(t, 0, w.Trials(), "window was not reset")
	assert.Equal(t, Window{}, w)
}

func TestWindowSnapshot_Empty(t *testing.T) {
	var w Window
	snap := w.Snapshot()
	assert.Equal(t, Snapshot{}, snap)
}
