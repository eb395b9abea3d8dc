package dynarray_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naxaes/Algorithms/dynarray"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		a, err := dynarray.New[int](c)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, dynarray.ErrInvalidCapacity)
	}
}

func TestAppend_GrowthPreservesOrder(t *testing.T) {
	a, err := dynarray.New[int](dynarray.InitialCapacity)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	var want []int
	for step := 0; step < 200; step++ {
		batch := make([]int, r.Intn(5))
		for i := range batch {
			batch[i] = r.Int()
		}
		before := make([]int, a.Count())
		copy(before, a.Raw())

		a.Append(batch...)
		want = append(want, batch...)

		// count tracks the running total
		require.Equal(t, len(want), a.Count())
		// existing elements are neither lost nor reordered
		require.Equal(t, before, a.Raw()[:len(before)])
		require.LessOrEqual(t, a.Count(), a.Capacity())
	}
	assert.Equal(t, want, a.Raw())
}

func TestAppend_DoublesCapacity(t *testing.T) {
	a, err := dynarray.New[string](2)
	require.NoError(t, err)

	a.Append("a", "b")
	assert.Equal(t, 2, a.Capacity())

	a.Append("c")
	assert.Equal(t, 4, a.Capacity())

	// a batch larger than one doubling keeps doubling until it fits
	a.Append("d", "e", "f", "g", "h", "i", "j")
	assert.Equal(t, 16, a.Capacity())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, a.Raw())
}

func TestAt_OutOfRange(t *testing.T) {
	a := dynarray.FromSlice([]int{10, 20, 30})

	v, err := a.At(2)
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	for _, idx := range []int{a.Count(), a.Count() + 1, a.Count() + 100, -1} {
		_, err = a.At(idx)
		assert.ErrorIs(t, err, dynarray.ErrOutOfRange, "index %d", idx)
	}
}

func TestSet(t *testing.T) {
	a := dynarray.FromSlice([]int{1, 2})
	require.NoError(t, a.Set(1, 5))
	assert.Equal(t, []int{1, 5}, a.Raw())
	assert.ErrorIs(t, a.Set(2, 0), dynarray.ErrOutOfRange)
}

func TestRaw_ViewIsClipped(t *testing.T) {
	a, err := dynarray.New[int](8)
	require.NoError(t, err)
	a.Append(1, 2, 3)

	view := a.Raw()
	view[0] = 42 // writes through
	_ = append(view, 99)

	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, []int{42, 2, 3}, a.Raw())
}

func TestFromSlice_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	a := dynarray.FromSlice(src)
	src[0] = 100
	assert.Equal(t, []int{1, 2, 3}, a.Raw())
	assert.Equal(t, 3, a.Capacity())

	empty := dynarray.FromSlice[int](nil)
	assert.Equal(t, 0, empty.Count())
	assert.Equal(t, dynarray.InitialCapacity, empty.Capacity())
}

func TestClear(t *testing.T) {
	a := dynarray.FromSlice([]int{1, 2, 3})
	a.Clear()
	assert.Equal(t, 0, a.Count())
	assert.Empty(t, a.Raw())
	a.Append(7)
	assert.Equal(t, []int{7}, a.Raw())
}

func BenchmarkAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a, _ := dynarray.New[int](dynarray.InitialCapacity)
		for j := 0; j < 1024; j++ {
			a.Append(j)
		}
	}
}

func ExampleArray_Append() {
	a, _ := dynarray.New[int](2)
	a.Append(1, 2)
	a.Append(3)
	fmt.Println(a.Raw(), a.Count(), a.Capacity())
	// Output:
	// [1 2 3] 3 4
}
