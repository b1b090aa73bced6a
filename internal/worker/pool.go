// Package worker provides a fixed-size goroutine pool for I/O-bound
// jobs such as translation calls and page fetches.
package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when a job is submitted after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// Job is a unit of work submitted to the Pool. Errors are the
// submitter's concern; the pool does not collect them.
type Job func(ctx context.Context)

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int

	closeMu sync.Mutex
	closed  bool
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		jobs:    make(chan Job, workers*2),
		workers: workers,
	}
}

// Start launches the worker goroutines. They run until ctx is done or
// Close is called.
func (p *Pool) Start(ctx context.Context) {
	for range p.workers {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					job(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a job, blocking while the queue is full.
func (p *Pool) Submit(job Job) error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.jobs <- job
	return nil
}

// Close stops accepting jobs and waits for in-flight ones to finish.
func (p *Pool) Close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
