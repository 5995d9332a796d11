package order

import "cmp"

// Pair is a key-value element. The key/value projections below sort
// pairs on one field while carrying the other along unchanged.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// MakePair constructs a pair object. This is identical to using the
// literal constructor but may be more ergonomic as the compiler is
// better at inferring types in function calls.
func MakePair[K any, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

// ByKey lifts a key comparator to pairs.
func ByKey[K any, V any](c Comparator[K]) Comparator[Pair[K, V]] {
	return func(a, b Pair[K, V]) int { return c(a.Key, b.Key) }
}

// ByValue lifts a value comparator to pairs.
func ByValue[K any, V any](c Comparator[V]) Comparator[Pair[K, V]] {
	return func(a, b Pair[K, V]) int { return c(a.Value, b.Value) }
}

// KeyOrder orders pairs by the natural order of their keys.
func KeyOrder[K cmp.Ordered, V any]() Comparator[Pair[K, V]] { return ByKey[K, V](Natural[K]()) }

// ValueOrder orders pairs by the natural order of their values.
func ValueOrder[K any, V cmp.Ordered]() Comparator[Pair[K, V]] { return ByValue[K](Natural[V]()) }

// RangeSorter is the shape shared by the Range entry points of the
// comparison sorts (e.g. MergeRange or QuickRange.)
type RangeSorter[T any] func(s []T, start, count int, c Comparator[T]) error

// SortKeys sorts s[start:start+count] by key with the provided
// algorithm; a nil comparator resolves to the key type's default
// order. Stability is that of the algorithm.
func SortKeys[K any, V any](sorter RangeSorter[Pair[K, V]], s []Pair[K, V], start, count int, c Comparator[K]) (err error) {
	if c, err = Resolve(c); err != nil {
		return err
	}
	return sorter(s, start, count, ByKey[K, V](c))
}

// SortValues sorts s[start:start+count] by value with the provided
// algorithm.
func SortValues[K any, V any](sorter RangeSorter[Pair[K, V]], s []Pair[K, V], start, count int, c Comparator[V]) (err error) {
	if c, err = Resolve(c); err != nil {
		return err
	}
	return sorter(s, start, count, ByValue[K](c))
}
