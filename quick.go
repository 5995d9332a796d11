package order

import "cmp"

// Quick sorts the slice in ascending order with quicksort.
func Quick[T cmp.Ordered](s []T) { quickSort(s, Natural[T]()) }

// QuickFunc sorts the slice with quicksort. Quicksort is not stable.
func QuickFunc[T any](s []T, c Comparator[T]) error { return sortFunc(s, c, quickSort[T]) }

// QuickRange sorts s[start:start+count] with quicksort, leaving the
// rest of the slice untouched.
func QuickRange[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, quickSort[T])
}

// quickSort recurses into the smaller partition and loops on the
// larger one so the stack depth is logarithmic for every input.
func quickSort[T any](s []T, c Comparator[T]) {
	for len(s) > 1 {
		p := partition(s, c)
		if left, right := s[:p], s[p+1:]; len(left) < len(right) {
			quickSort(left, c)
			s = right
		} else {
			quickSort(right, c)
			s = left
		}
	}
}

// partition uses the middle element as the pivot, moving it to the
// last slot while the prefix of elements <= pivot grows, and returns
// the pivot's final index.
func partition[T any](s []T, c Comparator[T]) int {
	last := len(s) - 1
	mid := last / 2
	s[mid], s[last] = s[last], s[mid]
	pivot := s[last]

	store := 0
	for idx := 0; idx < last; idx++ {
		if c(s[idx], pivot) <= 0 {
			s[idx], s[store] = s[store], s[idx]
			store++
		}
	}
	s[store], s[last] = s[last], s[store]
	return store
}
