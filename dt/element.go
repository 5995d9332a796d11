package dt

import "fmt"

// Element is the underlying component of a list. You can use the
// methods on this object to iterate through the list, and the Ok()
// method for detecting the end of the list.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]
	ok   bool
	item T
}

// NewElement produces an unattached Element that you can add to a
// list with SpliceBefore.
func NewElement[T any](val T) *Element[T] { return &Element[T]{item: val, ok: true} }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// Value accesses the element's value.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Next produces the next element. At the end of a list the value is
// non-nil, but returns false for Ok. Detached elements return nil.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Previous produces the previous element. At the front of a list the
// value is non-nil, but returns false for Ok.
func (e *Element[T]) Previous() *Element[T] { return e.prev }

// Ok checks that an element holds a value: it is false for nil
// elements and for the list's end marker.
func (e *Element[T]) Ok() bool { return e != nil && e.ok }

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
func (e *Element[T]) In(l *List[T]) bool { return e != nil && l != nil && e.list == l }

// Set changes the value of an item in place, and returns false for
// nil elements and the end marker.
func (e *Element[T]) Set(v T) bool {
	if !e.Ok() {
		return false
	}
	e.item = v
	return true
}

func (e *Element[T]) detached() bool { return e.Ok() && e.list == nil }

func (e *Element[T]) uncheckedInsertAfter(val *Element[T]) {
	e.list.length++
	val.list = e.list
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

func (e *Element[T]) uncheckedRemove() {
	e.list.length--
	e.prev.next = e.next
	e.next.prev = e.prev
	e.list = nil
	e.next = nil
	e.prev = nil
}
