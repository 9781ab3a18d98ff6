// Package worker provides a worker pool for replaying scripts in parallel.
package worker

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules/internal/parser"
	"github.com/lgbarn/chessrules/internal/processing"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *parser.Script
	Index  int // Original index for tracking
}

// ProcessResult represents the result of replaying a script.
type ProcessResult struct {
	Index        int
	Result       *processing.Result
	Matched      bool   // Whether the result passed the filters
	Label        string // Label of the matched position, if any
	ShouldOutput bool   // Whether to output this result
	OutputToDup  bool   // Whether to output to duplicate file
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel script replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	// Once stopped, items with an Index above cutoff are drained unprocessed.
	stopped atomic.Bool
	cutoff  atomic.Int64
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

// NewPool creates a worker pool. processFunc is required; by default the
// pool has 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cutoff.Store(math.MaxInt64)
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() && int64(item.Index) > p.cutoff.Load() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// StopAfter stops processing of items whose Index is above index. Items at
// or below it are still processed. Repeated calls only lower the cutoff.
func (p *Pool) StopAfter(index int) {
	for {
		cur := p.cutoff.Load()
		if cur <= int64(index) || p.cutoff.CompareAndSwap(cur, int64(index)) {
			break
		}
	}
	p.stopped.Store(true)
}

// IsStopped returns true once StopAfter has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// ProcessAll replays items on a pool of numWorkers and returns the results
// ordered by Index. If stopAt is not nil, the first result it accepts ends
// the batch: items after it are not replayed and no result past it is
// returned, while every item before it still is.
func ProcessAll(items []WorkItem, numWorkers int, processFunc ProcessFunc, stopAt func(ProcessResult) bool) []ProcessResult {
	pool := NewPool(processFunc, WithWorkers(numWorkers), WithBufferSize(2*numWorkers))
	pool.Start()

	// Items go in in Index order, so when the pool stops at some item every
	// item before it has already been submitted.
	go func() {
		defer pool.Close()
		for _, item := range items {
			if pool.TrySubmit(item) {
				continue
			}
			if pool.IsStopped() {
				return
			}
			pool.Submit(item)
		}
	}()

	last := math.MaxInt
	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		if stopAt != nil && stopAt(r) && r.Index < last {
			last = r.Index
			pool.StopAfter(last)
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	n := sort.Search(len(results), func(i int) bool { return results[i].Index > last })
	return results[:n]
}
