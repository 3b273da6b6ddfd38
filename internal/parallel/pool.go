// Package parallel provides the worker pool used to fan out per-file work
// and join it before a batch result is produced.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by ExecuteAll when the pool shut down before all
// work could be queued.
var ErrPoolClosed = errors.New("parallel: pool closed")

// WorkerPool runs work items on a fixed set of goroutines.
//
// Each worker owns a queue and steals from its siblings when the queue runs
// dry, so a single slow item (a large font file) does not hold back the
// items queued behind it.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()

	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			run(work)
		default:
			if stolen := p.steal(id); stolen != nil {
				run(stolen)
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				run(work)
			}
		}
	}
}

func run(work func()) {
	if work != nil {
		work()
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			run(work)
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across workers and blocks until
// every item has finished. Items not yet queued when ctx is cancelled are
// skipped; items already running are allowed to finish.
//
// ExecuteAll returns ctx.Err() if any item was skipped.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) error {
	if len(work) == 0 || !p.running.Load() {
		return nil
	}

	var pending sync.WaitGroup
	var skipped atomic.Bool

	for i, fn := range work {
		if ctx.Err() != nil {
			skipped.Store(true)
			break
		}
		pending.Add(1)
		item := func() {
			defer pending.Done()
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- item:
		case <-ctx.Done():
			pending.Done()
			skipped.Store(true)
		case <-p.done:
			pending.Done()
			skipped.Store(true)
		}
	}

	pending.Wait()
	if skipped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		return ErrPoolClosed
	}
	return nil
}

// Collect runs fn for every index in [0, n) on the pool and returns the
// results in index order, independent of completion order.
func Collect[T any](ctx context.Context, p *WorkerPool, n int, fn func(i int) T) ([]T, error) {
	out := make([]T, n)
	work := make([]func(), n)
	for i := range n {
		work[i] = func() { out[i] = fn(i) }
	}
	err := p.ExecuteAll(ctx, work)
	return out, err
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
