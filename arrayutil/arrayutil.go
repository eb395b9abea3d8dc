// Package arrayutil provides the small slice helpers shared by the sorting
// routines, the containers and the demo runner: swapping, bounded copying,
// minimum/maximum scans and the space-separated array printer.
package arrayutil

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for slice helpers.
var (
	// ErrSizeMismatch indicates a copy into a destination shorter than its source.
	ErrSizeMismatch = errors.New("arrayutil: destination is smaller than source")

	// ErrEmpty indicates a scan over a zero-length slice.
	ErrEmpty = errors.New("arrayutil: slice is empty")
)

// emptyMarker is printed in place of the elements of a zero-length slice.
const emptyMarker = "(empty)"

// Swap exchanges a[i] and a[j].
func Swap[T any](a []T, i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Copy copies every element of src into the front of dst.
// It fails with ErrSizeMismatch, leaving dst untouched, when dst is shorter than src.
// Complexity: O(len(src)).
func Copy[T any](dst, src []T) error {
	if len(src) > len(dst) {
		return fmt.Errorf("%w: len(dst)=%d, len(src)=%d", ErrSizeMismatch, len(dst), len(src))
	}
	for i := range src {
		dst[i] = src[i]
	}

	return nil
}

// MinMax returns the smallest and largest element of a in a single pass.
// Complexity: O(n).
func MinMax[T cmp.Ordered](a []T) (T, T, error) {
	var zero T
	if len(a) == 0 {
		return zero, zero, ErrEmpty
	}

	minimum, maximum := a[0], a[0]
	for _, v := range a[1:] {
		if v < minimum {
			minimum = v
		} else if v > maximum {
			maximum = v
		}
	}

	return minimum, maximum, nil
}

// Min returns the smallest element of a.
func Min[T cmp.Ordered](a []T) (T, error) {
	minimum, _, err := MinMax(a)

	return minimum, err
}

// Max returns the largest element of a.
func Max[T cmp.Ordered](a []T) (T, error) {
	_, maximum, err := MinMax(a)

	return maximum, err
}

// FormatArray renders values space-separated, or "(empty)" for a zero-length slice.
// No trailing newline is added.
func FormatArray[T any](values []T) string {
	if len(values) == 0 {
		return emptyMarker
	}

	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// PrintArray writes FormatArray(values) followed by a newline to w.
func PrintArray[T any](w io.Writer, values []T) error {
	_, err := fmt.Fprintln(w, FormatArray(values))

	return err
}
