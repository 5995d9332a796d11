package order

import "github.com/tychoish/order/intish"

// Counting sorts a slice of integers in ascending order with counting
// sort. It returns ErrRangeTooLarge, without modifying the slice,
// when max-min+1 is not below MaxCountingSpan.
func Counting[T intish.Integer](s []T) error { return CountingRange(s, 0, len(s), Increasing) }

// CountingRange sorts s[start:start+count] with counting sort.
func CountingRange[T intish.Integer](s []T, start, count int, dir Direction) error {
	return CountingBy(s, start, count, identity[T], dir)
}

// CountingBy sorts s[start:start+count] by an integer key with a
// stable counting sort.
func CountingBy[T any, K intish.Integer](s []T, start, count int, key func(T) K, dir Direction) error {
	return distribute(s, start, count, key, dir, countingSort[T, K])
}

// CountingKeys stably sorts a range of pairs by their integer keys.
func CountingKeys[K intish.Integer, V any](s []Pair[K, V], start, count int, dir Direction) error {
	return CountingBy(s, start, count, PairKey[K, V], dir)
}

// CountingValues stably sorts a range of pairs by their integer
// values.
func CountingValues[K any, V intish.Integer](s []Pair[K, V], start, count int, dir Direction) error {
	return CountingBy(s, start, count, PairValue[K, V], dir)
}

// countingSort builds a histogram of the slots, turns it into the
// count of items at or below each slot, and scatters right to left
// so that equal keys keep their order.
func countingSort[T any, K intish.Integer](s []T, key func(T) K, dir Direction) error {
	ks := newKeyspace(s, key, dir)
	span, err := ks.bounded(MaxCountingSpan)
	if err != nil {
		return err
	}

	hist := make([]int, span)
	for idx := range s {
		hist[ks.slot(s[idx])]++
	}
	for idx := 1; idx < len(hist); idx++ {
		hist[idx] += hist[idx-1]
	}

	out := make([]T, len(s))
	for idx := len(s) - 1; idx >= 0; idx-- {
		slot := ks.slot(s[idx])
		hist[slot]--
		out[hist[slot]] = s[idx]
	}
	copy(s, out)
	return nil
}
