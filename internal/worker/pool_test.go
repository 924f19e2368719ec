package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Move: item.Move}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Nodes: uint64(item.Depth)}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func items(n int) []WorkItem {
	out := make([]WorkItem, n)
	for i := range out {
		out[i] = WorkItem{Index: i, Board: chess.NewBoard(), Depth: i}
	}
	return out
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolRunOrdersResults tests that Run returns results in index order.
func TestPoolRunOrdersResults(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(8), WithBufferSize(4))

	const numItems = 50
	results := pool.Run(items(numItems))

	if len(results) != numItems {
		t.Fatalf("len(results) = %d; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d; want %d", i, r.Index, i)
		}
		if r.Nodes != uint64(i) {
			t.Errorf("results[%d].Nodes = %d; want %d", i, r.Nodes, i)
		}
	}
}

// TestPoolRunEmpty tests Run with no work.
func TestPoolRunEmpty(t *testing.T) {
	results := NewPool(noopProcessFunc()).Run(nil)
	if len(results) != 0 {
		t.Errorf("len(results) = %d; want 0", len(results))
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	collectResults(pool)
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPool(noopProcessFunc())
		if pool.NumWorkers() != 1 {
			t.Errorf("default workers = %d; want 1", pool.NumWorkers())
		}
		if pool.bufferSize != 16 {
			t.Errorf("default bufferSize = %d; want 16", pool.bufferSize)
		}
	})

	t.Run("with workers", func(t *testing.T) {
		pool := NewPool(noopProcessFunc(), WithWorkers(4))
		if pool.NumWorkers() != 4 {
			t.Errorf("NumWorkers() = %d; want 4", pool.NumWorkers())
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		pool := NewPool(noopProcessFunc(), WithWorkers(0))
		if pool.NumWorkers() != 1 {
			t.Errorf("NumWorkers() = %d; want 1 (default)", pool.NumWorkers())
		}
	})

	t.Run("invalid buffer size ignored", func(t *testing.T) {
		pool := NewPool(noopProcessFunc(), WithBufferSize(-5))
		if pool.bufferSize != 16 {
			t.Errorf("bufferSize = %d; want 16 (default)", pool.bufferSize)
		}
	})
}
