// Package heap implements an array-backed binary max-heap with a fixed
// upper bound on its element count.
//
// For every index i in [1, Count()) the heap keeps data[Parent(i)] >= data[i].
// Ordering is decided by a three-way comparison function, so the same type
// serves as a min-heap when given a reversed comparison.
//
// Unlike dynarray.Array the heap never grows: exceeding MaxCount is an error.
//
// Complexity:
//
//   - Add, Pop:        O(log n)
//   - FromSlice:       O(n) bulk heapify
//   - Peek, Count:     O(1)
//   - Sort:            O(n log n), in place
package heap

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for heap operations.
var (
	// ErrInvalidCapacity indicates a non-positive maximum element count.
	ErrInvalidCapacity = errors.New("heap: max count must be positive")

	// ErrCapacityExceeded indicates an insertion beyond MaxCount.
	ErrCapacityExceeded = errors.New("heap: capacity exceeded")

	// ErrEmptyHeap indicates a Pop or Peek on an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrOutOfRange indicates a Pop index outside [0, Count()).
	ErrOutOfRange = errors.New("heap: index out of range")
)

// MaxHeap is a binary max-heap over a fixed-size block of T.
type MaxHeap[T any] struct {
	data  []T // len(data) is the fixed maximum count
	count int
	cmp   func(a, b T) int
}

// New returns an empty heap ordered by cmp.Compare that holds at most maxCount elements.
func New[T cmp.Ordered](maxCount int) (*MaxHeap[T], error) {
	return NewFunc(maxCount, cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare. The element for which
// compare reports the greatest value sits at the root.
func NewFunc[T any](maxCount int, compare func(a, b T) int) (*MaxHeap[T], error) {
	if maxCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxCount)
	}

	return &MaxHeap[T]{data: make([]T, maxCount), cmp: compare}, nil
}

// FromSlice builds a heap from a copy of values in linear time.
// maxCount must be at least len(values).
func FromSlice[T cmp.Ordered](values []T, maxCount int) (*MaxHeap[T], error) {
	return FromSliceFunc(values, maxCount, cmp.Compare[T])
}

// FromSliceFunc is FromSlice with a caller-supplied comparison.
func FromSliceFunc[T any](values []T, maxCount int, compare func(a, b T) int) (*MaxHeap[T], error) {
	h, err := NewFunc(maxCount, compare)
	if err != nil {
		return nil, err
	}
	if len(values) > maxCount {
		return nil, fmt.Errorf("%w: %d values, max count %d", ErrCapacityExceeded, len(values), maxCount)
	}

	h.count = copy(h.data, values)
	BuildMaxHeapFunc(h.data[:h.count], compare)

	return h, nil
}

// Add inserts v and sifts it up until its parent is not smaller.
func (h *MaxHeap[T]) Add(v T) error {
	if h.count == len(h.data) {
		return fmt.Errorf("%w: max count %d", ErrCapacityExceeded, len(h.data))
	}

	h.data[h.count] = v
	h.count++
	h.siftUp(h.count - 1)

	return nil
}

// Pop removes and returns the element at index. The last element takes its
// slot and is sifted down (towards the larger child) and then up, so the
// heap property holds for arbitrary positions, not only the root.
func (h *MaxHeap[T]) Pop(index int) (T, error) {
	var zero T
	if h.count == 0 {
		return zero, ErrEmptyHeap
	}
	if index < 0 || index >= h.count {
		return zero, fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, index, h.count)
	}

	result := h.data[index]
	h.count--
	h.data[index] = h.data[h.count]
	h.data[h.count] = zero

	if index < h.count {
		heapify(h.data, h.count, index, h.cmp)
		h.siftUp(index)
	}

	return result, nil
}

// PopMax removes and returns the root.
func (h *MaxHeap[T]) PopMax() (T, error) {
	return h.Pop(0)
}

// Peek returns the root without removing it.
func (h *MaxHeap[T]) Peek() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// siftUp swaps the element at child with its parent while it is larger.
func (h *MaxHeap[T]) siftUp(child int) {
	for child > 0 {
		parent := Parent(child)
		if h.cmp(h.data[parent], h.data[child]) >= 0 {
			return
		}
		h.data[parent], h.data[child] = h.data[child], h.data[parent]
		child = parent
	}
}

// Count returns the number of elements in the heap.
func (h *MaxHeap[T]) Count() int { return h.count }

// MaxCount returns the fixed upper bound on Count.
func (h *MaxHeap[T]) MaxCount() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *MaxHeap[T]) IsEmpty() bool { return h.count == 0 }

// IsFull reports whether another Add would fail.
func (h *MaxHeap[T]) IsFull() bool { return h.count == len(h.data) }

// Raw returns a view of the heap's level-order storage, valid until the next Add or Pop.
func (h *MaxHeap[T]) Raw() []T {
	return h.data[:h.count:h.count]
}
