// Package unionfind implements four disjoint-set variants over the elements
// 0..n-1, from the naive eager QuickFind up to weighted union with path
// compression.
//
// Complexity per operation (n elements):
//
//	QuickFind       Union O(n)          Connected O(1)
//	QuickUnion      Union O(depth)      Connected O(depth), depth up to n
//	Weighted        Union O(log n)      Connected O(log n)
//	PathCompressed  Union ~O(α(n))      Connected ~O(α(n))
package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a non-positive element count.
	ErrInvalidSize = errors.New("unionfind: size must be positive")

	// ErrOutOfRange indicates an element outside [0, Len()).
	ErrOutOfRange = errors.New("unionfind: element out of range")

	// ErrUnknownKind indicates an unrecognized variant name passed to New.
	ErrUnknownKind = errors.New("unionfind: unknown kind")
)

// UnionFind is the behavior shared by every variant.
type UnionFind interface {
	// Union merges the sets containing a and b.
	Union(a, b int) error
	// Connected reports whether a and b belong to the same set.
	Connected(a, b int) (bool, error)
	// Find returns the representative of the set containing a.
	Find(a int) (int, error)
	// Count returns the number of disjoint sets.
	Count() int
	// Len returns the number of elements.
	Len() int
}

// Kind names a union-find variant.
type Kind string

// Supported variants.
const (
	KindQuickFind      Kind = "quick-find"
	KindQuickUnion     Kind = "quick-union"
	KindWeighted       Kind = "weighted"
	KindPathCompressed Kind = "path-compressed"
)

// Kinds returns every supported variant name in sorted order.
func Kinds() []Kind {
	return []Kind{KindPathCompressed, KindQuickFind, KindQuickUnion, KindWeighted}
}

// New constructs the variant named by kind over n elements.
func New(kind Kind, n int) (UnionFind, error) {
	switch kind {
	case KindQuickFind:
		return NewQuickFind(n)
	case KindQuickUnion:
		return NewQuickUnion(n)
	case KindWeighted:
		return NewWeighted(n)
	case KindPathCompressed:
		return NewPathCompressed(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// forest is the identity-initialized parent array shared by all variants.
type forest struct {
	id    []int
	count int // number of disjoint sets
}

func newForest(n int) (forest, error) {
	if n <= 0 {
		return forest{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}

	return forest{id: id, count: n}, nil
}

func (f *forest) check(elems ...int) error {
	for _, e := range elems {
		if e < 0 || e >= len(f.id) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, e, len(f.id))
		}
	}

	return nil
}

// root walks parent links up to the representative of node.
func (f *forest) root(node int) int {
	for node != f.id[node] {
		node = f.id[node]
	}

	return node
}

// Count returns the number of disjoint sets.
func (f *forest) Count() int { return f.count }

// Len returns the number of elements.
func (f *forest) Len() int { return len(f.id) }
