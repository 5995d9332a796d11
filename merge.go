package order

import (
	"cmp"
	"slices"
)

// Merge sorts the slice in ascending order with a stable merge sort.
func Merge[T cmp.Ordered](s []T) { mergeSort(s, Natural[T]()) }

// MergeFunc sorts the slice with a stable merge sort: elements that
// compare equal keep their relative order. It allocates one buffer
// the size of the slice.
//
// Every level of the sort writes into the slice or the buffer, so if
// the comparator panics the contents of the slice are unspecified:
// items may be duplicated or missing. The other comparison sorts only
// swap items and always leave a permutation.
func MergeFunc[T any](s []T, c Comparator[T]) error { return sortFunc(s, c, mergeSort[T]) }

// MergeRange sorts s[start:start+count] with a stable merge sort.
func MergeRange[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, mergeSort[T])
}

func mergeSort[T any](s []T, c Comparator[T]) {
	if len(s) < 2 {
		return
	}
	mergeInto(slices.Clone(s), s, c)
}

// mergeInto sorts the elements of src into dst. On entry both hold
// the same elements; each level of recursion swaps their roles so
// only the outermost merge writes into the caller's slice and no
// level copies its result back. src is clobbered.
func mergeInto[T any](src, dst []T, c Comparator[T]) {
	if len(dst) < 2 {
		return
	}
	mid := len(dst) / 2
	mergeInto(dst[:mid], src[:mid], c)
	mergeInto(dst[mid:], src[mid:], c)
	merge(src[:mid], src[mid:], dst, c)
}

// merge interleaves two sorted runs into dst, which must not overlap
// either of them. Ties take from the left run, which is what makes
// the sort stable.
func merge[T any](left, right, dst []T, c Comparator[T]) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if c(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
