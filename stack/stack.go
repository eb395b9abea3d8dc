// Package stack implements a fixed-capacity LIFO stack over a flat buffer.
package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("stack: capacity must be positive")

	// ErrFull indicates a Push on a stack holding Capacity() elements.
	ErrFull = errors.New("stack: stack is full")

	// ErrEmpty indicates a Pop or Peek on an empty stack.
	ErrEmpty = errors.New("stack: stack is empty")
)

// Stack is a bounded LIFO. data[count-1] is the top.
type Stack[T any] struct {
	data  []T
	count int
}

// New returns an empty stack that holds at most capacity elements.
func New[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Stack[T]{data: make([]T, capacity)}, nil
}

// FromSlice returns a full stack holding a copy of values; the last value is the top.
func FromSlice[T any](values []T) (*Stack[T], error) {
	s, err := New[T](len(values))
	if err != nil {
		return nil, err
	}
	s.count = copy(s.data, values)

	return s, nil
}

// Push places v on top.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return fmt.Errorf("%w: capacity %d", ErrFull, len(s.data))
	}
	s.data[s.count] = v
	s.count++

	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}

	s.count--
	v := s.data[s.count]
	s.data[s.count] = zero

	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}

	return s.data[s.count-1], nil
}

// Values returns a copy of the stacked elements from bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, s.count)
	copy(out, s.data)

	return out
}

// IsFull reports whether Count() == Capacity().
func (s *Stack[T]) IsFull() bool { return s.count == len(s.data) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.count == 0 }

// Count returns the number of stacked elements.
func (s *Stack[T]) Count() int { return s.count }

// Capacity returns the fixed maximum number of elements.
func (s *Stack[T]) Capacity() int { return len(s.data) }
