package order

import (
	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/wpa"
)

// ListMerge sorts a whole linked sequence with a stable merge sort
// that relinks the nodes rather than copying values: every node keeps
// its identity and payload. A nil comparator resolves to the Default
// order.
//
// Because the node type cannot be inferred from the sequence, callers
// instantiate it explicitly, e.g. ListMerge[int, *dt.Element[int]].
func ListMerge[T any, N Node[T, N]](seq Linked[T, N], c Comparator[T]) (err error) {
	if c, err = Resolve(c); err != nil {
		return err
	}
	return listMerge(seq, whole(seq), c, wpa.Budget{})
}

// ListMergeRange sorts the count nodes starting at index start.
func ListMergeRange[T any, N Node[T, N]](seq Linked[T, N], start, count int, c Comparator[T]) error {
	r, err := nodeRange(seq, start, count)
	if err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	return listMerge(seq, r, c, wpa.Budget{})
}

// ListMergeNodes sorts the nodes from first through last, inclusive.
// Both must belong to the sequence, and last must be reachable from
// first; the node that followed last still follows the sorted range.
func ListMergeNodes[T any, N Node[T, N]](seq Linked[T, N], first, last N, c Comparator[T]) error {
	r, err := nodes(seq, first, last)
	if err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	return listMerge(seq, r, c, wpa.Budget{})
}

// listMerge moves the first half of the run into one fresh
// sub-sequence and the second half into another, sorts both, and
// merges them by relinking the lesser head before the anchor. Ties
// take the left head. If anything fails, the nodes still held by the
// sub-sequences are relinked before the anchor, so the sequence never
// loses a node.
func listMerge[T any, N Node[T, N]](seq Linked[T, N], r run[N], c Comparator[T], budget wpa.Budget) (err error) {
	if r.count < 2 {
		return nil
	}

	left, right := seq.Empty(), seq.Empty()
	defer func() {
		err = ers.Join(err, ers.ParsePanic(recover()))
		if err != nil {
			err = ers.Join(err, drain(left, seq, r.anchor), drain(right, seq, r.anchor))
		}
	}()

	mid := r.count / 2
	node := r.first
	for idx := 0; idx < r.count; idx++ {
		next := node.Next()
		half := right
		if idx < mid {
			half = left
		}
		if !seq.Detach(node) {
			return ers.NewInvariantViolation("could not detach a member node")
		}
		if !half.SpliceBefore(half.End(), node) {
			seq.SpliceBefore(next, node)
			return ers.NewInvariantViolation("could not splice a node into a sub-sequence")
		}
		node = next
	}

	if err = budget.Fork(
		func(b wpa.Budget) error { return listMerge(left, whole(left), c, b) },
		func(b wpa.Budget) error { return listMerge(right, whole(right), c, b) },
	); err != nil {
		return err
	}

	for left.Len() > 0 && right.Len() > 0 {
		from := right
		if c(left.Front().Value(), right.Front().Value()) <= 0 {
			from = left
		}
		if err = moveFront(from, seq, r.anchor); err != nil {
			return err
		}
	}
	if err = drain(left, seq, r.anchor); err != nil {
		return err
	}
	return drain(right, seq, r.anchor)
}

// moveFront relinks the first node of from immediately before mark
// in to.
func moveFront[T any, N Node[T, N]](from, to Linked[T, N], mark N) error {
	head := from.Front()
	if !from.Detach(head) {
		return ers.NewInvariantViolation("could not detach the head of a sub-sequence")
	}
	if !to.SpliceBefore(mark, head) {
		from.SpliceBefore(from.Front(), head)
		return ers.NewInvariantViolation("could not splice a node into the sequence")
	}
	return nil
}

// drain relinks every node of from, in order, before mark in to.
func drain[T any, N Node[T, N]](from, to Linked[T, N], mark N) error {
	for from.Len() > 0 {
		if err := moveFront(from, to, mark); err != nil {
			return err
		}
	}
	return nil
}
