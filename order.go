// Package order provides a suite of generic sorting algorithms that
// operate on slices and on linked sequences of splice-able nodes.
//
// Every algorithm is implemented once, in ascending order with
// respect to a Comparator. Descending order is the same algorithm
// applied to Reverse(c); the distribution sorts, which have no
// comparator, accept a Direction instead.
//
// Each comparison algorithm exposes a consistent family of entry
// points: a whole slice form for cmp.Ordered types, a Func form that
// requires a comparator, and a Range form that sorts s[start:start+count]
// and resolves a nil comparator to the element type's intrinsic
// order. Entry points that return errors convert panics raised by
// comparators or key functions into errors. After such a failure the
// addressed range holds a permutation of its input, possibly
// reordered, except for the slice merge sorts, which leave it
// unspecified. Linked sorts never lose a node.
package order

import (
	"cmp"
	"fmt"

	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/internal"
)

const (
	ErrInvalidRange   = ers.ErrInvalidRange
	ErrNilComparator  = ers.ErrNilComparator
	ErrRangeTooLarge  = ers.ErrRangeTooLarge
	ErrRecoveredPanic = ers.ErrRecoveredPanic
)

// Comparator is a total order over T: it returns a negative number
// when a orders before b, zero when they are equal, and a positive
// number otherwise.
type Comparator[T any] func(a, b T) int

// Direction selects ascending or descending order for the
// distribution sorts.
type Direction bool

const (
	Increasing Direction = false
	Decreasing Direction = true
)

func (d Direction) String() string {
	if d == Decreasing {
		return "decreasing"
	}
	return "increasing"
}

// Natural returns the ascending intrinsic order of an ordered type.
// NaN values order before all other floating point values.
func Natural[T cmp.Ordered]() Comparator[T] { return cmp.Compare[T] }

// NaturalDescending returns the reverse of Natural.
func NaturalDescending[T cmp.Ordered]() Comparator[T] { return Reverse(Natural[T]()) }

// Reverse returns the mirror of a comparator. Reverse(nil) is nil.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return nil
	}
	return func(a, b T) int { return c(b, a) }
}

// Directed returns c for Increasing and Reverse(c) for Decreasing.
func Directed[T any](c Comparator[T], dir Direction) Comparator[T] {
	if dir == Decreasing {
		return Reverse(c)
	}
	return c
}

// Default returns the intrinsic order of T: builtin ordered kinds
// (and named types derived from them), types with a Compare(T) int
// method, or types with a LessThan(T) bool method. It returns
// ErrNilComparator for types with no discoverable order.
func Default[T any]() (Comparator[T], error) {
	fn, ok := internal.Natural[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("type %T has no intrinsic order: %w", zero, ErrNilComparator)
	}
	return fn, nil
}

// Resolve returns c, or the Default order when c is nil.
func Resolve[T any](c Comparator[T]) (Comparator[T], error) {
	if c != nil {
		return c, nil
	}
	return Default[T]()
}

// IsSorted reports whether the slice is in order according to c.
func IsSorted[T any](s []T, c Comparator[T]) bool {
	for idx := 1; idx < len(s); idx++ {
		if c(s[idx-1], s[idx]) > 0 {
			return false
		}
	}
	return true
}

// IsSortedRange reports whether s[start:start+count] is in order. A
// nil comparator resolves to the Default order.
func IsSortedRange[T any](s []T, start, count int, c Comparator[T]) (ok bool, err error) {
	if err = checkRange(len(s), start, count); err != nil {
		return false, err
	}
	if c, err = Resolve(c); err != nil {
		return false, err
	}
	err = ers.WithRecoverCall(func() { ok = IsSorted(s[start:start+count], c) })
	return ok, err
}
