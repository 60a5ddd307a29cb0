// Package parallel runs independent jobs on a fixed number of workers.
package parallel

import (
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool hands jobs to its workers through Do. With a single worker Do runs
// the job inline. A job that panics is logged and counted; the worker
// keeps going.
type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc

	workers  int
	done     atomic.Int64
	panicked atomic.Int64
	logger   *slog.Logger
}

// Start creates a pool of numWorkers workers, GOMAXPROCS when
// numWorkers < 1.
func Start(numWorkers int, logger *slog.Logger) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.Default()
	}

	pool := &Pool{
		workers: numWorkers,
		logger:  logger,
		Wait:    func(bool) {},
		Cancel:  func() {},
	}
	pool.Do = pool.run

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					pool.run(f)
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

func (p *Pool) run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.logger.Error("job panicked", "panic", r, "stack", string(debug.Stack()))
		}
		p.done.Add(1)
	}()
	f()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Stats returns the number of finished jobs and how many of them panicked.
func (p *Pool) Stats() (done, panicked int64) {
	return p.done.Load(), p.panicked.Load()
}
