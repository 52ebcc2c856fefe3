// Package parallel runs jobs on a fixed number of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job.
	WorkerFunc func(func())
	// WaitFunc blocks until scheduled jobs finished. With done set no more
	// jobs may be scheduled afterwards.
	WaitFunc func(done bool)
	// CancelFunc stops accepting jobs.
	CancelFunc func()
)

type Pool struct {
	wg     sync.WaitGroup
	jobs   sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start returns a pool of numWorkers goroutines. A single worker runs jobs
// inline on the caller's goroutine; numWorkers below 1 uses GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.jobs.Add(1)
			workChan <- func() {
				defer pool.jobs.Done()
				f()
			}
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			pool.jobs.Wait()
			if done {
				pool.Cancel()
				pool.wg.Wait()
			}
		}
	}

	return pool
}
