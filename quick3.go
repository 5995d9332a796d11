package order

import "cmp"

// Quick3 sorts the slice in ascending order with three-way quicksort,
// which settles every element equal to the pivot in one pass and is
// the better choice for inputs with few distinct values.
func Quick3[T cmp.Ordered](s []T) { quick3Sort(s, Natural[T]()) }

// Quick3Func sorts the slice with three-way quicksort. It is not
// stable.
func Quick3Func[T any](s []T, c Comparator[T]) error { return sortFunc(s, c, quick3Sort[T]) }

// Quick3Range sorts s[start:start+count] with three-way quicksort.
func Quick3Range[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, quick3Sort[T])
}

func quick3Sort[T any](s []T, c Comparator[T]) {
	for len(s) > 1 {
		lt, gt := partition3(s, c)
		if left, right := s[:lt], s[gt:]; len(left) < len(right) {
			quick3Sort(left, c)
			s = right
		} else {
			quick3Sort(right, c)
			s = left
		}
	}
}

// partition3 is the Bentley-McIlroy partition. The pivot is moved to
// the last slot and during the scan the slice holds
// [= from the left][<][unscanned][>][= from the right][pivot]; the
// equal runs are then swapped into the middle. On return s[:lt] is
// less than the pivot, s[lt:gt] equals it, and s[gt:] is greater.
func partition3[T any](s []T, c Comparator[T]) (lt, gt int) {
	n := len(s)
	mid := (n - 1) / 2
	s[mid], s[n-1] = s[n-1], s[mid]
	pivot := s[n-1]

	a, b := 0, 0
	d, e := n-2, n-2
	for {
		for ; b <= d; b++ {
			r := c(s[b], pivot)
			if r > 0 {
				break
			}
			if r == 0 {
				s[a], s[b] = s[b], s[a]
				a++
			}
		}
		for ; d >= b; d-- {
			r := c(s[d], pivot)
			if r < 0 {
				break
			}
			if r == 0 {
				s[d], s[e] = s[e], s[d]
				e--
			}
		}
		if b > d {
			break
		}
		s[b], s[d] = s[d], s[b]
		b++
		d--
	}

	// s[a:b] is less, s[b:e+1] is greater, and s[e+1:] (with the
	// pivot) is equal.
	less, greater := b-a, e+1-b
	swapRange(s, 0, b-min(a, less), min(a, less))
	swapRange(s, b, n-min(greater, n-1-e), min(greater, n-1-e))
	return less, n - greater
}

func swapRange[T any](s []T, i, j, n int) {
	for k := 0; k < n; k++ {
		s[i+k], s[j+k] = s[j+k], s[i+k]
	}
}
