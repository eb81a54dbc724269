// Package workerpool runs tasks on a fixed set of goroutines. Pending tasks wait
// in a priority queue: higher priority runs first, equal priorities run in
// submission order.
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/pqueue"
)

var (
	// ErrPoolClosed is returned when submitting to a closed pool
	ErrPoolClosed = errors.New("workerpool: pool is closed")
	// ErrJobPanicked wraps the value recovered from a panicking task
	ErrJobPanicked = errors.New("workerpool: job panicked")
)

// Task is a unit of work producing a single result
type Task[T any] func() (T, error)

// job is a queued task together with its ordering keys
type job[T any] struct {
	id       uint64
	seq      uint64
	priority int
	task     Task[T]
	receipt  *Receipt[T]
}

func (j *job[T]) UID() uint64 {
	return j.id
}

// Compare ranks higher priority first, then earlier submission
func (j *job[T]) Compare(other *job[T]) int {
	switch {
	case j.priority > other.priority:
		return 1
	case j.priority < other.priority:
		return -1
	case j.seq < other.seq:
		return 1
	case j.seq > other.seq:
		return -1
	default:
		return 0
	}
}

// Option configures a Pool
type Option func(*options)

type options struct {
	maxPending int
}

// WithMaxPending caps the number of queued (not yet running) jobs. Submit
// blocks while the queue is full. Zero means unbounded.
func WithMaxPending(n int) Option {
	return func(o *options) { o.maxPending = max(0, n) }
}

// Pool is a fixed-size set of workers fed from a shared priority queue
type Pool[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	queue    *pqueue.BinaryMaxHeap[*job[T]]
	nextID   uint64
	closed   bool

	maxPending int
	workers    int
	wg         sync.WaitGroup
}

// New starts a pool with the given number of workers. Zero or fewer workers
// means one per usable CPU.
func New[T any](workers int, opts ...Option) *Pool[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		queue:      pqueue.New[*job[T]](),
		maxPending: o.maxPending,
		workers:    workers,
	}
	p.notEmpty = sync.NewCond(&p.mu)
	p.notFull = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// Workers returns the number of worker goroutines
func (p *Pool[T]) Workers() int {
	return p.workers
}

// Pending returns the number of queued jobs that have not started
func (p *Pool[T]) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// Submit queues a task. It blocks while the pool is at its pending limit and
// fails with ErrPoolClosed once Close has been called.
func (p *Pool[T]) Submit(priority int, task Task[T]) (*Receipt[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for !p.closed && p.maxPending > 0 && p.queue.Len() >= p.maxPending {
		p.notFull.Wait()
	}
	if p.closed {
		return nil, ErrPoolClosed
	}

	p.nextID++
	j := &job[T]{
		id:       p.nextID,
		seq:      p.nextID,
		priority: priority,
		task:     task,
		receipt:  newReceipt[T](p.nextID),
	}
	p.queue.Push(j)
	j.receipt.setState(Scheduled)
	p.notEmpty.Signal()
	return j.receipt, nil
}

// Reprioritize changes the priority of a job that has not started yet. It
// reports false if the job is unknown or already running.
func (p *Pool[T]) Reprioritize(id uint64, priority int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Update(id, func(j *job[T]) *job[T] {
		j.priority = priority
		return j
	})
}

// Close stops accepting work, lets the workers drain the queue and waits for
// them to exit
func (p *Pool[T]) Close() {
	p.mu.Lock()
	p.closed = true
	p.notEmpty.Broadcast()
	p.notFull.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool[T]) worker(id int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.queue.Len() == 0 && !p.closed {
			p.notEmpty.Wait()
		}
		j, ok := p.queue.Pop()
		if !ok {
			p.mu.Unlock()
			return
		}
		j.receipt.setState(Running)
		p.notFull.Signal()
		p.mu.Unlock()

		value, err := p.run(id, j)
		j.receipt.finish(value, err)
	}
}

// run executes the task, converting a panic into an error so the worker and
// the queue survive it
func (p *Pool[T]) run(worker int, j *job[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
			core.Logger().Warn("job panicked",
				"worker", worker,
				"job", j.id,
				"panic", r)
		}
	}()
	return j.task()
}
