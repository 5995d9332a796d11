package order

import "cmp"

// Bubble sorts the slice in ascending order with bubble sort.
func Bubble[T cmp.Ordered](s []T) { bubbleSort(s, Natural[T]()) }

// BubbleFunc sorts the slice with bubble sort. It is stable, and
// quadratic in the worst case, so it is only suitable for small or
// nearly sorted input.
func BubbleFunc[T any](s []T, c Comparator[T]) error { return sortFunc(s, c, bubbleSort[T]) }

// BubbleRange sorts s[start:start+count] with bubble sort.
func BubbleRange[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, bubbleSort[T])
}

// bubbleSort bounds each pass by the position of the previous pass's
// last swap: everything after it is already in place.
func bubbleSort[T any](s []T, c Comparator[T]) {
	for bound := len(s); bound > 1; {
		last := 0
		for idx := 1; idx < bound; idx++ {
			if c(s[idx-1], s[idx]) > 0 {
				s[idx-1], s[idx] = s[idx], s[idx-1]
				last = idx
			}
		}
		bound = last
	}
}
