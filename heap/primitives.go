package heap

import "cmp"

// Left returns the index of the left child of parent.
func Left(parent int) int { return 2*parent + 1 }

// Right returns the index of the right child of parent.
func Right(parent int) int { return 2*parent + 2 }

// Parent returns the index of the parent of child. The root is its own parent.
func Parent(child int) int {
	if child == 0 {
		return 0
	}

	return (child - 1) / 2
}

// Heapify restores the heap property at index within a[:count], assuming both
// subtrees of index already satisfy it. It swaps with the larger child and
// recurses into that child.
// Complexity: O(log count).
func Heapify[T cmp.Ordered](a []T, count, index int) {
	heapify(a, count, index, cmp.Compare[T])
}

// HeapifyFunc is Heapify with a caller-supplied comparison.
func HeapifyFunc[T any](a []T, count, index int, compare func(a, b T) int) {
	heapify(a, count, index, compare)
}

func heapify[T any](a []T, count, index int, compare func(a, b T) int) {
	largest := index
	left, right := Left(index), Right(index)

	if left < count && compare(a[left], a[largest]) > 0 {
		largest = left
	}
	if right < count && compare(a[right], a[largest]) > 0 {
		largest = right
	}

	if largest != index {
		a[index], a[largest] = a[largest], a[index]
		heapify(a, count, largest, compare)
	}
}

// BuildMaxHeap rearranges a into a max-heap in linear time by heapifying
// every internal node from the last parent back to the root.
func BuildMaxHeap[T cmp.Ordered](a []T) {
	BuildMaxHeapFunc(a, cmp.Compare[T])
}

// BuildMaxHeapFunc is BuildMaxHeap with a caller-supplied comparison.
func BuildMaxHeapFunc[T any](a []T, compare func(a, b T) int) {
	n := len(a)
	if n < 2 {
		return
	}
	for i := Parent(n - 1); i >= 0; i-- {
		heapify(a, n, i, compare)
	}
}

// Sort sorts a in ascending order with heap-sort: build a max-heap, then
// repeatedly swap the root with the last element of the shrinking heap.
// Complexity: O(n log n) time, O(1) extra space. Not stable.
func Sort[T cmp.Ordered](a []T) {
	SortFunc(a, cmp.Compare[T])
}

// SortFunc is Sort with a caller-supplied comparison.
func SortFunc[T any](a []T, compare func(a, b T) int) {
	BuildMaxHeapFunc(a, compare)
	for end := len(a) - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		heapify(a, end, 0, compare)
	}
}
