// Package sorting implements the classic comparison sorts (insertion, bubble,
// selection, merge, quick, heap) over cmp.Ordered, and two non-comparison
// sorts (counting, radix) over integer types.
//
// Every function sorts its argument in place in ascending order.
//
//	Algorithm   Time (avg / worst)     Extra space   Stable
//	Insertion   O(n²) / O(n²)          O(1)          yes
//	Bubble      O(n²) / O(n²)          O(1)          yes
//	Selection   O(n²) / O(n²)          O(1)          no
//	Merge       O(n log n)             O(n)          yes
//	Quick       O(n log n) / O(n²)     O(log n)      no
//	Heap        O(n log n)             O(1)          no
//	Counting    O(n + k)               O(n + k)      yes
//	Radix       O(d·(n + 10))          O(n)          yes
package sorting

import (
	"cmp"

	"github.com/Naxaes/Algorithms/arrayutil"
	"github.com/Naxaes/Algorithms/heap"
)

// Insertion sorts a by growing a sorted prefix, shifting larger elements right.
// Runs in O(n) on already sorted input.
func Insertion[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		element := a[i]
		j := i - 1
		for j >= 0 && element < a[j] {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = element
	}
}

// Bubble sorts a by repeatedly swapping adjacent out-of-order pairs.
// It stops after the first pass that performs no swap.
func Bubble[T cmp.Ordered](a []T) {
	for i := 0; i < len(a)-1; i++ {
		swapped := false
		for j := 0; j < len(a)-i-1; j++ {
			if a[j] > a[j+1] {
				arrayutil.Swap(a, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts a by moving the minimum of the unsorted suffix to its front.
// It performs at most n-1 swaps.
func Selection[T cmp.Ordered](a []T) {
	for i := 0; i < len(a)-1; i++ {
		minIndex := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			arrayutil.Swap(a, i, minIndex)
		}
	}
}

// Merge sorts a top-down, using a single auxiliary buffer of len(a).
func Merge[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	aux := make([]T, len(a))
	mergeSort(a, aux, 0, len(a))
}

// mergeSort sorts the half-open range a[left:right].
func mergeSort[T cmp.Ordered](a, aux []T, left, right int) {
	if right-left < 2 {
		return
	}
	middle := left + (right-left)/2
	mergeSort(a, aux, left, middle)
	mergeSort(a, aux, middle, right)
	merge(a, aux, left, middle, right)
}

// merge combines the sorted runs a[left:middle] and a[middle:right].
// Ties take the left element first, which keeps the sort stable.
func merge[T cmp.Ordered](a, aux []T, left, middle, right int) {
	copy(aux[left:right], a[left:right])

	i, l, r := left, left, middle
	for l < middle && r < right {
		if aux[l] <= aux[r] {
			a[i] = aux[l]
			l++
		} else {
			a[i] = aux[r]
			r++
		}
		i++
	}
	i += copy(a[i:], aux[l:middle])
	copy(a[i:], aux[r:right])
}

// Quick sorts a with Lomuto partitioning around the last element of each range.
func Quick[T cmp.Ordered](a []T) {
	quickSort(a, 0, len(a))
}

func quickSort[T cmp.Ordered](a []T, left, right int) {
	for right-left > 1 {
		p := partition(a, left, right)
		// recurse on the smaller side, loop on the larger
		if p-left < right-p-1 {
			quickSort(a, left, p)
			left = p + 1
		} else {
			quickSort(a, p+1, right)
			right = p
		}
	}
}

// partition places the pivot a[right-1] at its final index and returns it.
func partition[T cmp.Ordered](a []T, left, right int) int {
	pivot := a[right-1]
	i := left
	for j := left; j < right-1; j++ {
		if a[j] < pivot {
			arrayutil.Swap(a, i, j)
			i++
		}
	}
	arrayutil.Swap(a, i, right-1)

	return i
}

// Heap sorts a with heap.Sort.
func Heap[T cmp.Ordered](a []T) {
	heap.Sort(a)
}

// IsSorted reports whether a is in ascending order.
func IsSorted[T cmp.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}
