package sorting

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAlgorithm indicates a name not present in the registry.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm names accepted by Lookup.
const (
	NameInsertion = "insertion"
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameMerge     = "merge"
	NameQuick     = "quick"
	NameHeap      = "heap"
	NameCounting  = "counting"
	NameRadix     = "radix"
)

// IntSorter sorts a slice of ints in place.
type IntSorter func([]int) error

// infallible adapts a sort that cannot fail to IntSorter.
func infallible(fn func([]int)) IntSorter {
	return func(a []int) error {
		fn(a)
		return nil
	}
}

var registry = map[string]IntSorter{
	NameInsertion: infallible(Insertion[int]),
	NameBubble:    infallible(Bubble[int]),
	NameSelection: infallible(Selection[int]),
	NameMerge:     infallible(Merge[int]),
	NameQuick:     infallible(Quick[int]),
	NameHeap:      infallible(Heap[int]),
	NameCounting:  Counting[int],
	NameRadix:     infallible(Radix[int]),
}

// Lookup returns the int sorter registered under name.
func Lookup(name string) (IntSorter, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}

// Names returns every registered algorithm name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
