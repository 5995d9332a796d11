package order

import "github.com/tychoish/order/intish"

// Pigeonhole sorts a slice of integers in ascending order with
// pigeonhole sort. It returns ErrRangeTooLarge, without modifying the
// slice, when max-min+1 is not below MaxPigeonholeSpan.
func Pigeonhole[T intish.Integer](s []T) error { return PigeonholeRange(s, 0, len(s), Increasing) }

// PigeonholeRange sorts s[start:start+count] with pigeonhole sort.
func PigeonholeRange[T intish.Integer](s []T, start, count int, dir Direction) error {
	return PigeonholeBy(s, start, count, identity[T], dir)
}

// PigeonholeBy sorts s[start:start+count] by an integer key with a
// stable pigeonhole sort.
func PigeonholeBy[T any, K intish.Integer](s []T, start, count int, key func(T) K, dir Direction) error {
	return distribute(s, start, count, key, dir, pigeonholeSort[T, K])
}

// PigeonholeKeys stably sorts a range of pairs by their integer keys.
func PigeonholeKeys[K intish.Integer, V any](s []Pair[K, V], start, count int, dir Direction) error {
	return PigeonholeBy(s, start, count, PairKey[K, V], dir)
}

// PigeonholeValues stably sorts a range of pairs by their integer
// values.
func PigeonholeValues[K any, V intish.Integer](s []Pair[K, V], start, count int, dir Direction) error {
	return PigeonholeBy(s, start, count, PairValue[K, V], dir)
}

// pigeonholeSort appends every item to the bucket of its slot, in
// input order, and concatenates the buckets.
func pigeonholeSort[T any, K intish.Integer](s []T, key func(T) K, dir Direction) error {
	ks := newKeyspace(s, key, dir)
	span, err := ks.bounded(MaxPigeonholeSpan)
	if err != nil {
		return err
	}

	holes := make([][]T, span)
	for idx := range s {
		slot := ks.slot(s[idx])
		holes[slot] = append(holes[slot], s[idx])
	}

	pos := 0
	for _, hole := range holes {
		pos += copy(s[pos:], hole)
	}
	return nil
}
