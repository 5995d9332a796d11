package order

import "cmp"

// Heap sorts the slice in ascending order with heap sort.
func Heap[T cmp.Ordered](s []T) { heapSort(s, Natural[T]()) }

// HeapFunc sorts the slice in place with heap sort, using constant
// auxiliary space. It is not stable.
func HeapFunc[T any](s []T, c Comparator[T]) error { return sortFunc(s, c, heapSort[T]) }

// HeapRange sorts s[start:start+count] with heap sort.
func HeapRange[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, heapSort[T])
}

// heapSort builds a max-heap (with respect to c) bottom up, then
// repeatedly moves the root behind the shrinking heap.
func heapSort[T any](s []T, c Comparator[T]) {
	n := len(s)
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(s, root, n, c)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, c)
	}
}

func siftDown[T any](s []T, root, n int, c Comparator[T]) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && c(s[child], s[child+1]) < 0 {
			child++
		}
		if c(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
