// Package worker provides a worker pool that counts perft subtrees in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Task is one root move whose subtree is counted by a worker.
type Task struct {
	Index    int             // Position of the move in the root move list
	Position *chess.Position // Position after Move has been played
	Move     chess.Move
	Depth    int // Remaining depth below Position
}

// Result is the node count of a Task's subtree.
type Result struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// TaskFunc counts the subtree of a task. It should return early with
// ctx.Err() once ctx is cancelled.
type TaskFunc func(ctx context.Context, task Task) Result

// Pool manages a fixed set of goroutines consuming tasks.
type Pool struct {
	numWorkers int
	bufferSize int
	taskChan   chan Task
	resultChan chan Result
	taskFunc   TaskFunc
	wg         sync.WaitGroup
	stopFlag   atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, fn TaskFunc) *Pool {
	return NewPoolWithOptions(fn, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(fn TaskFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		taskFunc:   fn,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.taskChan = make(chan Task, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Tasks received after ctx is
// cancelled are answered with ctx.Err() instead of being counted.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for task := range p.taskChan {
		if p.IsStopped() {
			continue // Drain
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- Result{Index: task.Index, Move: task.Move, Err: err}
			continue
		}
		p.resultChan <- p.taskFunc(ctx, task)
	}
}

// Submit queues a task, blocking while the buffer is full.
// It returns ctx.Err() if ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers discard the tasks still queued.
func (p *Pool) Stop() {
	p.stopFlag.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopFlag.Load()
}

// Close closes the task channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.taskChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}
