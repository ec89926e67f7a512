// Package queue provides a blocking hand-off queue between one producer and
// any number of consumers.
package queue

import (
	"context"
	"sync"
)

// Queue is a mutex and condition-variable guarded sequence of values.
//
// Receive removes the most recently sent value (LIFO), not the oldest one.
// When values pile up before a consumer wakes, the consumer observes the
// newest value and older pending ones stay behind it.
type Queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []T
	capacity int
}

type Option func(*config)

type config struct {
	capacity int
}

// CapacityOption bounds the queue. A full queue drops its oldest value on
// Send. Zero or negative means unbounded.
func CapacityOption(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// New returns an empty, unbounded queue unless CapacityOption says otherwise.
func New[T any](options ...Option) *Queue[T] {
	var c config
	for _, o := range options {
		o(&c)
	}

	q := &Queue[T]{
		capacity: c.capacity,
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send appends v and wakes one blocked receiver, if any. It never blocks.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	if q.capacity > 0 && len(q.items) >= q.capacity {
		n := copy(q.items, q.items[1:])
		var zero T
		q.items[n] = zero
		q.items = q.items[:n]
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.cond.Signal()
}

// Receive blocks until the queue is not empty and then removes and returns
// the newest value.
func (q *Queue[T]) Receive() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		q.cond.Wait()
	}
	return q.pop()
}

// ReceiveContext is Receive that gives up with ctx.Err() once ctx is done
// and the queue is still empty.
func (q *Queue[T]) ReceiveContext(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.cond.Wait()
	}
	return q.pop(), nil
}

// Len returns the number of pending values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// pop must be called with mu held and a non-empty queue.
func (q *Queue[T]) pop() T {
	n := len(q.items) - 1
	v := q.items[n]
	var zero T
	q.items[n] = zero
	q.items = q.items[:n]
	return v
}
