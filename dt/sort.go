package dt

import (
	"github.com/tychoish/order"
	"github.com/tychoish/order/opt"
	"github.com/tychoish/order/wpa"
)

// SortMerge sorts the list with a stable merge sort that relinks the
// elements. A nil comparator resolves to order.Default.
func (l *List[T]) SortMerge(c order.Comparator[T]) error {
	return order.ListMerge[T, *Element[T]](l, c)
}

// SortMergeRange sorts count elements starting at position start.
func (l *List[T]) SortMergeRange(start, count int, c order.Comparator[T]) error {
	return order.ListMergeRange[T, *Element[T]](l, start, count, c)
}

// SortMergeNodes sorts the elements from first through last.
func (l *List[T]) SortMergeNodes(first, last *Element[T], c order.Comparator[T]) error {
	return order.ListMergeNodes[T, *Element[T]](l, first, last, c)
}

// SortMergeParallel sorts the list with the parallel linked merge
// sort.
func (l *List[T]) SortMergeParallel(c order.Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return order.ParallelListMerge[T, *Element[T]](l, c, opts...)
}

// IsSorted reports whether the values of the list are in order.
func (l *List[T]) IsSorted(c order.Comparator[T]) bool {
	for e := l.Front(); e.Ok() && e.Next().Ok(); e = e.Next() {
		if c(e.Value(), e.Next().Value()) > 0 {
			return false
		}
	}
	return true
}

// Empty returns a new list that can take elements detached from l.
// The linked merge sort splits ranges into such lists.
func (l *List[T]) Empty() order.Linked[T, *Element[T]] { return &List[T]{} }
