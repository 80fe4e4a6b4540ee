package wordmode

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInputUnavailable is returned when a Source cannot be opened or fails mid-read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrCancelled is returned when a run is cancelled before the consumer drains the queue.
	ErrCancelled = errors.New("cancelled")

	// ErrQueueClosed is returned by Push once the queue has been closed.
	ErrQueueClosed = errors.New("queue closed")
)

// PopStatus describes the outcome of a Queue.Pop call.
type PopStatus int

const (
	// Popped means a value was removed from the head of the queue.
	Popped PopStatus = iota

	// Drained means the queue is empty and closed. No value will ever arrive.
	Drained

	// Cancelled means the caller's context was done before a value was available.
	Cancelled
)

func (s PopStatus) String() string {
	switch s {
	case Popped:
		return "popped"
	case Drained:
		return "drained"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// cancelledErr wraps the reason ctx was cancelled with ErrCancelled.
func cancelledErr(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}
