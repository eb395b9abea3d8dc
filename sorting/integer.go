package sorting

import (
	"errors"
	"fmt"

	"github.com/Naxaes/Algorithms/arrayutil"
)

// MaxCountingRange bounds max-min+1 for Counting, which allocates one counter per key.
const MaxCountingRange = 1 << 24

// radixBase is the digit base used by Radix.
const radixBase = 10

// ErrRangeTooLarge indicates a Counting input whose key span exceeds MaxCountingRange.
var ErrRangeTooLarge = errors.New("sorting: key range too large for counting sort")

// Integer is the set of element types accepted by the non-comparison sorts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// key maps v to its offset from minimum; the result is exact for v >= minimum.
func key[T Integer](v, minimum T) uint64 {
	return uint64(int64(v)) - uint64(int64(minimum))
}

// Counting sorts a by tallying each key's occurrences and writing the keys
// back in order. Keys are offset by the minimum, so negative values are allowed.
func Counting[T Integer](a []T) error {
	if len(a) < 2 {
		return nil
	}
	minimum, maximum, err := arrayutil.MinMax(a)
	if err != nil {
		return err
	}
	// compare before adding one: the full int64 range wraps to 0
	largest := key(maximum, minimum)
	if largest >= MaxCountingRange {
		return fmt.Errorf("%w: span %d exceeds %d", ErrRangeTooLarge, largest, MaxCountingRange)
	}

	counts := make([]int, largest+1)
	for _, v := range a {
		counts[key(v, minimum)]++
	}

	i := 0
	for k, c := range counts {
		for ; c > 0; c-- {
			a[i] = T(int64(minimum) + int64(k))
			i++
		}
	}

	return nil
}

// Radix sorts a with least-significant-digit radix sort in base 10,
// running one stable counting pass per digit of the largest offset key.
func Radix[T Integer](a []T) {
	if len(a) < 2 {
		return
	}
	minimum, maximum, err := arrayutil.MinMax(a)
	if err != nil {
		return
	}
	largest := key(maximum, minimum)

	out := make([]T, len(a))
	for exp := uint64(1); largest/exp > 0; exp *= radixBase {
		var counts [radixBase]int
		for _, v := range a {
			counts[(key(v, minimum)/exp)%radixBase]++
		}
		for d := 1; d < radixBase; d++ {
			counts[d] += counts[d-1]
		}
		for i := len(a) - 1; i >= 0; i-- {
			d := (key(a[i], minimum) / exp) % radixBase
			counts[d]--
			out[counts[d]] = a[i]
		}
		copy(a, out)

		if exp > largest/radixBase {
			break
		}
	}
}
