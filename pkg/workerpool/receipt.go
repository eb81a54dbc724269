package workerpool

import (
	"context"
	"fmt"
	"sync/atomic"
)

// State is the lifecycle stage of a submitted job
type State int32

const (
	Created State = iota
	Scheduled
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Scheduled:
		return "scheduled"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Receipt is the caller's handle on a submitted job. The result is delivered
// exactly once; every Wait after that returns the same value.
type Receipt[T any] struct {
	id    uint64
	state atomic.Int32
	done  chan struct{}
	value T
	err   error
}

func newReceipt[T any](id uint64) *Receipt[T] {
	return &Receipt[T]{id: id, done: make(chan struct{})}
}

// ID identifies the job within its pool, for use with Pool.Reprioritize
func (r *Receipt[T]) ID() uint64 {
	return r.id
}

// State returns the job's current lifecycle stage
func (r *Receipt[T]) State() State {
	return State(r.state.Load())
}

// Done is closed once the job has completed or failed
func (r *Receipt[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the job finishes or ctx is done. A cancelled context stops
// the wait only; the job itself still runs to completion.
func (r *Receipt[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (r *Receipt[T]) setState(s State) {
	r.state.Store(int32(s))
}

func (r *Receipt[T]) finish(value T, err error) {
	r.value, r.err = value, err
	if err != nil {
		r.setState(Failed)
	} else {
		r.setState(Completed)
	}
	close(r.done)
}
