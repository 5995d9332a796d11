package order

import (
	"fmt"
)

// Node is an element of a linked sequence. The Next of the last node
// (and the Previous of the first) is an end marker whose Ok method
// returns false.
type Node[T any, N any] interface {
	comparable
	Value() T
	Next() N
	Previous() N
	Ok() bool
}

// Linked is the set of relinking operations that the linked merge
// sort needs from a sequence. Detach unlinks a member node;
// SpliceBefore inserts a detached node immediately before mark, and
// when mark is the end marker the node becomes the new tail. Both
// return false when the operation is not valid.
//
// Empty returns a new sequence, with no nodes, that accepts nodes
// detached from this one. The sort splits a range into such
// sequences and relinks the nodes back when it merges them.
type Linked[T any, N Node[T, N]] interface {
	Len() int
	Front() N
	Back() N
	End() N
	Owns(N) bool
	Detach(N) bool
	SpliceBefore(mark, node N) bool
	Empty() Linked[T, N]
}

// run addresses count consecutive nodes, starting at first, that
// precede anchor. The anchor is a member node or the end marker.
type run[N any] struct {
	first  N
	count  int
	anchor N
}

// whole addresses every node of the sequence.
func whole[T any, N Node[T, N]](seq Linked[T, N]) run[N] {
	return run[N]{first: seq.Front(), count: seq.Len(), anchor: seq.End()}
}

// nodes addresses the nodes from first through last, or returns
// ErrInvalidRange if they do not belong to the sequence or last is
// not reachable from first.
func nodes[T any, N Node[T, N]](seq Linked[T, N], first, last N) (run[N], error) {
	if !seq.Owns(first) || !seq.Owns(last) {
		return run[N]{}, fmt.Errorf("start and end nodes must belong to the sequence: %w", ErrInvalidRange)
	}

	count := 0
	for node := first; node.Ok(); node = node.Next() {
		count++
		if node == last {
			return run[N]{first: first, count: count, anchor: last.Next()}, nil
		}
	}
	return run[N]{}, fmt.Errorf("end node is not reachable from the start node: %w", ErrInvalidRange)
}

// nodeRange translates a start/count pair into the nodes it
// addresses with a linear scan from the front.
func nodeRange[T any, N Node[T, N]](seq Linked[T, N], start, count int) (run[N], error) {
	if err := checkRange(seq.Len(), start, count); err != nil {
		return run[N]{}, err
	}

	node := seq.Front()
	for idx := 0; idx < start && node.Ok(); idx++ {
		node = node.Next()
	}
	first := node
	for idx := 0; idx < count; idx++ {
		if !node.Ok() {
			return run[N]{}, fmt.Errorf("sequence reports length %d but ended early: %w", seq.Len(), ErrInvalidRange)
		}
		node = node.Next()
	}
	return run[N]{first: first, count: count, anchor: node}, nil
}
