package wordmode

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO shared between one producer and one consumer.
//
// Push never blocks. Pop blocks while the queue is empty and still open, and
// can be abandoned through its context. Close is a one-way latch: once closed
// the queue accepts no more values, and Pop reports Drained after the
// remaining values have been handed out.
//
// A single mutex guards both the items and the closed flag, so a consumer can
// never observe "closed" without also observing every value pushed before it.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	// wake is created by a waiter that finds the queue empty and is closed
	// (and cleared) by the next Push or Close. Waiters capture it under mu.
	wake chan struct{}
}

// NewQueue creates an empty, open queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends value to the tail of the queue and wakes any waiting Pop.
// It returns ErrQueueClosed if Close has already been called.
func (q *Queue[T]) Push(value T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, value)
	q.wakeLocked()
	return nil
}

// Close marks the queue as finished and wakes all waiters. Values already in
// the queue can still be popped. Calling Close more than once is a no-op.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.wakeLocked()
}

// Closed returns true once Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of values waiting in the queue.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Pop removes and returns the head of the queue.
//
// If the queue is empty and open, Pop waits until a value is pushed, the
// queue is closed or ctx is done. The returned status is Popped when a value
// was taken, Drained when the queue is empty and closed, and Cancelled when
// ctx is done while the queue is still open. Once the queue is closed no more
// waiting can happen, so the remaining values are handed out and Drained is
// reported even if ctx is done.
func (q *Queue[T]) Pop(ctx context.Context) (T, PopStatus) {
	for {
		value, status, wake := q.tryPop(ctx.Err() != nil)
		if wake == nil {
			return value, status
		}

		select {
		case <-ctx.Done():
			// Re-check: a Close may have raced with the cancellation.
		case <-wake:
			// State changed. Re-check under the lock.
		}
	}
}

// tryPop takes the head of the queue if there is one. When the queue is
// empty and open it returns the channel the caller should wait on instead.
// A cancelled caller of an open queue gets Cancelled rather than a value.
func (q *Queue[T]) tryPop(cancelled bool) (value T, status PopStatus, wake <-chan struct{}) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if cancelled && !q.closed {
		return value, Cancelled, nil
	}
	if len(q.items) > 0 {
		var zero T
		value = q.items[0]
		q.items[0] = zero
		q.items = q.items[1:]
		if len(q.items) == 0 {
			q.items = nil
		}
		return value, Popped, nil
	}
	if q.closed {
		return value, Drained, nil
	}
	if q.wake == nil {
		q.wake = make(chan struct{})
	}
	return value, Popped, q.wake
}

func (q *Queue[T]) wakeLocked() {
	if q.wake != nil {
		close(q.wake)
		q.wake = nil
	}
}
