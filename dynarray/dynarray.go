// Package dynarray implements a generic growable array that owns one
// contiguous block of elements and doubles that block on overflow.
//
// The Array keeps 0 <= Count() <= Capacity() at all times. Growth allocates a
// new block, copies the live elements into it element by element and only then
// adopts it, so a reader never observes a half-moved buffer.
//
// Views returned by Raw are valid until the next mutating call (Append, Clear).
//
// Complexity:
//
//   - Append: amortized O(1) per element, O(n) for the call that reallocates.
//   - At, Set, Count, Capacity: O(1).
package dynarray

import (
	"errors"
	"fmt"
)

// InitialCapacity is the conventional starting capacity of a new Array.
const InitialCapacity = 8

// growthFactor is applied to the capacity every time the block overflows.
const growthFactor = 2

// Sentinel errors for Array operations.
var (
	// ErrInvalidCapacity indicates a non-positive starting capacity.
	ErrInvalidCapacity = errors.New("dynarray: capacity must be positive")

	// ErrOutOfRange indicates an index outside [0, Count()).
	ErrOutOfRange = errors.New("dynarray: index out of range")
)

// Array is a growable, exclusively-owned block of T.
type Array[T any] struct {
	data  []T // len(data) is the allocated capacity
	count int // number of live elements at the front of data
}

// New returns an empty Array with room for capacity elements.
func New[T any](capacity int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Array[T]{data: make([]T, capacity)}, nil
}

// FromSlice returns an Array holding a copy of values. The capacity equals
// len(values), or InitialCapacity when values is empty.
func FromSlice[T any](values []T) *Array[T] {
	capacity := len(values)
	if capacity == 0 {
		capacity = InitialCapacity
	}
	a := &Array[T]{data: make([]T, capacity), count: len(values)}
	copy(a.data, values)

	return a
}

// Append adds values to the end of the Array, preserving their order.
// If the batch does not fit, the capacity is doubled until it does.
func (a *Array[T]) Append(values ...T) {
	if a.count+len(values) > len(a.data) {
		a.reallocate(a.count + len(values))
	}
	for _, v := range values {
		a.data[a.count] = v
		a.count++
	}
}

// reallocate doubles the capacity until at least required slots exist,
// copies the live elements and adopts the new block.
func (a *Array[T]) reallocate(required int) {
	capacity := len(a.data)
	if capacity == 0 {
		capacity = InitialCapacity
	}
	for capacity < required {
		capacity *= growthFactor
	}

	block := make([]T, capacity)
	for i := 0; i < a.count; i++ {
		block[i] = a.data[i]
	}
	a.data = block
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.count {
		var zero T
		return zero, fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, i, a.count)
	}

	return a.data[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.count {
		return fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, i, a.count)
	}
	a.data[i] = v

	return nil
}

// Raw returns a read/write view over the live elements. The view's capacity
// is clipped to Count() so appending to it never writes into the Array.
func (a *Array[T]) Raw() []T {
	return a.data[:a.count:a.count]
}

// Count returns the number of live elements.
func (a *Array[T]) Count() int { return a.count }

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int { return len(a.data) }

// Clear drops every element but keeps the allocated block.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.count; i++ {
		a.data[i] = zero
	}
	a.count = 0
}
