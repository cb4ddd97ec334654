// Package metrics accumulates timing statistics for the search loop.
package metrics

import "time"

// Window accumulates trial timing across multiple iterations.
type Window struct {
	samples  int
	forward  time.Duration
	score    time.Duration
	trials   int
	accepted int
	lastLoss float64
}

// Record adds one trial to the window.
//
// forwardTime covers the network forward pass, scoreTime the loss and
// accuracy reduction.
func (w *Window) Record(batchSize int, forwardTime, scoreTime time.Duration, loss float64, accepted bool) {
	w.samples += batchSize
	w.forward += forwardTime
	w.score += scoreTime
	w.trials++
	if accepted {
		w.accepted++
	}
	w.lastLoss = loss
}

// Trials returns the number of trials recorded since the last snapshot.
func (w *Window) Trials() int {
	return w.trials
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Trials: w.trials, Accepted: w.accepted}
	total := w.forward + w.score
	if total > 0 {
		snap.SamplesPerSec = float64(w.samples) / total.Seconds()
	}
	if w.trials > 0 {
		snap.AvgForwardMS = (w.forward.Seconds() * 1000) / float64(w.trials)
		snap.AvgScoreMS = (w.score.Seconds() * 1000) / float64(w.trials)
	}
	snap.LastLoss = w.lastLoss

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Trials        int
	Accepted      int
	SamplesPerSec float64
	AvgForwardMS  float64
	AvgScoreMS    float64
	LastLoss      float64
}
