// Package parallel provides data-parallel row execution for forward passes.
//
// Work items handed to For must be independent: each call of f(i) may read
// shared state but must only write state owned by index i.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum rows per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// WithWorkers returns a copy of c using n workers.
// n <= 1 disables parallelism.
func (c Config) WithWorkers(n int) Config {
	c.NumWorkers = max(n, 1)
	c.Enabled = n > 1
	return c
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	}, cfg)
}

// ForChunks splits [0, n) into contiguous ranges and calls f(lo, hi) for each,
// one goroutine per range. Ranges differ in size by at most one and hold at
// least MinChunkSize items unless n itself is smaller. Runs f(0, n) inline
// when parallelism is off or only one range would be formed.
func ForChunks(n int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	chunks := 1
	if cfg.Enabled && cfg.NumWorkers > 1 {
		chunks = min(cfg.NumWorkers, n/max(cfg.MinChunkSize, 1))
	}
	if chunks <= 1 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	base, extra := n/chunks, n%chunks
	lo := 0
	for c := 0; c < chunks; c++ {
		hi := lo + base
		if c < extra {
			hi++
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
}
