package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if err := pool.ExecuteAll(context.Background(), work); err != nil {
		t.Fatalf("ExecuteAll() error = %v", err)
	}
	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if err := pool.ExecuteAll(context.Background(), nil); err != nil {
		t.Errorf("ExecuteAll(nil) error = %v, want nil", err)
	}
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var ran atomic.Bool
	if err := pool.ExecuteAll(context.Background(), []func(){func() { ran.Store(true) }}); err != nil {
		t.Errorf("ExecuteAll() on closed pool error = %v, want nil", err)
	}
	if ran.Load() {
		t.Error("work ran on a closed pool")
	}
}

func TestWorkerPool_ExecuteAll_Cancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var counter atomic.Int64
	work := make([]func(), 10)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	err := pool.ExecuteAll(ctx, work)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ExecuteAll() error = %v, want context.Canceled", err)
	}
	if counter.Load() != 0 {
		t.Errorf("counter = %d, want 0 for a context cancelled up front", counter.Load())
	}
}

// =============================================================================
// Collect Tests
// =============================================================================

func TestCollect_PreservesIndexOrder(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	n := 32
	got, err := Collect(context.Background(), pool, n, func(i int) int {
		// Later indexes finish first.
		time.Sleep(time.Duration(n-i) * 100 * time.Microsecond)
		return i * i
	})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != n {
		t.Fatalf("len(Collect()) = %d, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i*i {
			t.Errorf("got[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestCollect_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Collect(context.Background(), pool, 16, func(i int) int { return i + g })
			if err != nil {
				t.Errorf("Collect() error = %v", err)
				return
			}
			for i, v := range got {
				if v != i+g {
					t.Errorf("goroutine %d: got[%d] = %d, want %d", g, i, v, i+g)
				}
			}
		}()
	}
	wg.Wait()
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
}
