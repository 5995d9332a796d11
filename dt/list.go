package dt

import (
	"fmt"
	"iter"
	"strings"
)

// List provides a doubly linked list. The zero value is an empty
// list. Callers are responsible for their own concurrency control
// and should generally use it with the same care as a slice.
type List[T any] struct {
	head   *Element[T]
	length int
}

// NewList builds a list that holds the items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.Append(items...)
	return l
}

func (l *List[T]) root() *Element[T] {
	if l.head == nil {
		l.head = &Element[T]{list: l}
		l.head.next = l.head
		l.head.prev = l.head
	}
	return l.head
}

// Len returns the length of the list. As the insert/remove operations
// track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns the first element of the list, or the end marker
// when the list is empty:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//	       // operate
//	}
func (l *List[T]) Front() *Element[T] { return l.root().next }

// Back returns the last element of the list, or the end marker when
// the list is empty.
func (l *List[T]) Back() *Element[T] { return l.root().prev }

// End returns the list's end marker, which follows the last element
// and precedes the first.
func (l *List[T]) End() *Element[T] { return l.root() }

// PushBack creates an element at the back of the list.
func (l *List[T]) PushBack(it T) *Element[T] {
	e := NewElement(it)
	l.Back().uncheckedInsertAfter(e)
	return e
}

// PushFront creates an element at the front of the list.
func (l *List[T]) PushFront(it T) *Element[T] {
	e := NewElement(it)
	l.root().uncheckedInsertAfter(e)
	return e
}

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// Owns reports whether the element holds a value and is a member of
// this list.
func (l *List[T]) Owns(e *Element[T]) bool { return e.Ok() && e.list == l }

// Detach removes a member element from the list; the element keeps
// its value and can be spliced back.
func (l *List[T]) Detach(e *Element[T]) bool {
	if !l.Owns(e) {
		return false
	}
	e.uncheckedRemove()
	return true
}

// SpliceBefore inserts a detached element immediately before mark,
// which must be a member of the list or its end marker; splicing
// before the end marker appends the element.
func (l *List[T]) SpliceBefore(mark, e *Element[T]) bool {
	if mark == nil || mark.list != l || !e.detached() {
		return false
	}
	mark.prev.uncheckedInsertAfter(e)
	return true
}

// Index returns the element at the given position, walking from the
// front, or the end marker when the index is out of bounds.
func (l *List[T]) Index(idx int) *Element[T] {
	if idx < 0 || idx >= l.Len() {
		return l.End()
	}
	e := l.Front()
	for ; idx > 0; idx-- {
		e = e.Next()
	}
	return e
}

// Seq returns an iterator over the values in the list in
// front-to-back order.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e.Ok(); e = e.Next() {
			if !yield(e.Value()) {
				return
			}
		}
	}
}

// Elements returns the elements of the list in order.
func (l *List[T]) Elements() []*Element[T] {
	out := make([]*Element[T], 0, l.Len())
	for e := l.Front(); e.Ok(); e = e.Next() {
		out = append(out, e)
	}
	return out
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for e := l.Front(); e.Ok(); e = e.Next() {
		out = append(out, e.Value())
	}
	return out
}

// String renders the list like a slice.
func (l *List[T]) String() string {
	parts := make([]string, 0, l.Len())
	for e := l.Front(); e.Ok(); e = e.Next() {
		parts = append(parts, e.String())
	}
	return fmt.Sprint("[", strings.Join(parts, " "), "]")
}
