// Package worker provides a worker pool for evaluating independent positions
// in parallel. Boards are immutable, so items share them without locking.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// WorkItem is one root move (or position) to evaluate.
type WorkItem struct {
	// Index is the original position in the submitted batch.
	Index int
	// Board is the position after Move was played, or the position itself
	// when Move is the null move.
	Board *engine.Board
	Move  engine.Move
	// Depth is the remaining search depth below Board.
	Depth int
}

// ProcessResult is the outcome of evaluating a WorkItem.
type ProcessResult struct {
	Index   int
	Move    engine.Move
	Score   float64
	Nodes   int
	Cutoffs int
	Err     error
}

// ProcessFunc evaluates one item. It runs on a worker goroutine and must
// not retain the item's board beyond the call unless it treats it as
// read-only.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool evaluates submitted items on a fixed set of goroutines.
type Pool struct {
	workers int
	buffer  int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless the
// options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers. Items received after ctx ends or Stop is
// called are drained without being evaluated.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()
	for item := range p.items {
		if p.Stopped() || ctx.Err() != nil {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It reports
// false without queueing when the pool is stopped or ctx ends first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.Stopped() || ctx.Err() != nil {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop makes workers skip every item they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of evaluated items in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run evaluates every item on a fresh pool and returns the results ordered by
// Index. When ctx is cancelled, remaining items are skipped and ctx.Err() is
// returned together with the results gathered so far.
func Run(ctx context.Context, items []WorkItem, process ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	opts = append([]PoolOption{WithBufferSize(len(items))}, opts...)
	p := NewPool(process, opts...)
	p.Start(ctx)

	go func() {
		defer p.Close()
		for _, item := range items {
			if !p.Submit(ctx, item) {
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, ctx.Err()
}
