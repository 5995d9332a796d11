package order

import (
	"math/bits"

	"github.com/tychoish/order/intish"
)

// Radix sorts a slice of integers in ascending order with a least
// significant digit radix sort. Every key span is supported.
func Radix[T intish.Integer](s []T) error { return RadixRange(s, 0, len(s), Increasing) }

// RadixRange sorts s[start:start+count] with radix sort.
func RadixRange[T intish.Integer](s []T, start, count int, dir Direction) error {
	return RadixBy(s, start, count, identity[T], dir)
}

// RadixBy sorts s[start:start+count] by an integer key with a stable
// LSD radix sort over RadixDigitBits wide digits of key-min.
func RadixBy[T any, K intish.Integer](s []T, start, count int, key func(T) K, dir Direction) error {
	return distribute(s, start, count, key, dir, radixSort[T, K])
}

// RadixKeys stably sorts a range of pairs by their integer keys.
func RadixKeys[K intish.Integer, V any](s []Pair[K, V], start, count int, dir Direction) error {
	return RadixBy(s, start, count, PairKey[K, V], dir)
}

// RadixValues stably sorts a range of pairs by their integer values.
func RadixValues[K any, V intish.Integer](s []Pair[K, V], start, count int, dir Direction) error {
	return RadixBy(s, start, count, PairValue[K, V], dir)
}

type slotted[T any] struct {
	slot uint64
	item T
}

// radixSort computes each slot once, then runs one stable counting
// pass per digit. Digits above the highest set bit of the largest
// slot are all zero and are skipped.
func radixSort[T any, K intish.Integer](s []T, key func(T) K, dir Direction) error {
	const (
		radix = 1 << RadixDigitBits
		mask  = radix - 1
	)

	ks := newKeyspace(s, key, dir)
	src := make([]slotted[T], len(s))
	for idx := range s {
		src[idx] = slotted[T]{slot: ks.slot(s[idx]), item: s[idx]}
	}
	dst := make([]slotted[T], len(s))

	for shift := 0; shift < bits.Len64(ks.max); shift += RadixDigitBits {
		var next [radix + 1]int
		for idx := range src {
			next[(src[idx].slot>>shift)&mask+1]++
		}
		for digit := 1; digit <= radix; digit++ {
			next[digit] += next[digit-1]
		}
		for idx := range src {
			digit := (src[idx].slot >> shift) & mask
			dst[next[digit]] = src[idx]
			next[digit]++
		}
		src, dst = dst, src
	}

	for idx := range src {
		s[idx] = src[idx].item
	}
	return nil
}
