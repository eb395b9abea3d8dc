// Package queue implements a fixed-capacity FIFO queue over a ring buffer.
//
// front and back are indices modulo Capacity(); the queue never reallocates,
// so overflowing it is an error rather than a growth event.
package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrFull indicates an Enqueue on a queue holding Capacity() elements.
	ErrFull = errors.New("queue: queue is full")

	// ErrEmpty indicates a Dequeue or Peek on an empty queue.
	ErrEmpty = errors.New("queue: queue is empty")
)

// Queue is a bounded ring-buffer FIFO.
type Queue[T any] struct {
	data  []T
	count int
	front int // next slot to read
	back  int // next slot to write
}

// New returns an empty queue that holds at most capacity elements.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Queue[T]{data: make([]T, capacity)}, nil
}

// FromSlice returns a full queue holding a copy of values, values[0] at the front.
func FromSlice[T any](values []T) (*Queue[T], error) {
	q, err := New[T](len(values))
	if err != nil {
		return nil, err
	}
	q.count = copy(q.data, values)
	q.back = q.count % len(q.data)

	return q, nil
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return fmt.Errorf("%w: capacity %d", ErrFull, len(q.data))
	}

	q.data[q.back] = v
	q.back = (q.back + 1) % len(q.data)
	q.count++

	return nil
}

// Dequeue removes and returns the front element. The vacated slot is zeroed
// so the queue holds no reference to the returned value.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}

	v := q.data[q.front]
	q.data[q.front] = zero
	q.front = (q.front + 1) % len(q.data)
	q.count--

	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}

	return q.data[q.front], nil
}

// Values returns a copy of the queued elements from front to back.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.count)
	for i := range out {
		out[i] = q.data[(q.front+i)%len(q.data)]
	}

	return out
}

// IsFull reports whether Count() == Capacity().
func (q *Queue[T]) IsFull() bool { return q.count == len(q.data) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Count returns the number of queued elements.
func (q *Queue[T]) Count() int { return q.count }

// Capacity returns the fixed maximum number of elements.
func (q *Queue[T]) Capacity() int { return len(q.data) }
