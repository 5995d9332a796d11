// Package intish provides a collection of strongly typed integer
// arithmetic operations, to make it possible to reason about integer
// keys (and their spans) without floating point math or silent
// overflow.
package intish

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Integer is the set of signed and unsigned integers, used by this
// package and by the distribution sorts for their keys.
type Integer interface{ constraints.Integer }

// Bounds returns the minimum and maximum of the values produced by
// calling key on every element of the slice. The slice must not be
// empty.
func Bounds[T any, K Integer](s []T, key func(T) K) (low, high K) {
	low = key(s[0])
	high = low
	for idx := 1; idx < len(s); idx++ {
		switch k := key(s[idx]); {
		case k < low:
			low = k
		case k > high:
			high = k
		}
	}
	return low, high
}

// Offset returns value-low as an unsigned 64 bit integer. As long as
// low <= value the result is exact for every integer type, including
// the full range of int64 and uint64, because the difference is
// computed in two's complement on the widened operands.
func Offset[T Integer](low, value T) uint64 { return uint64(value) - uint64(low) }

// Span returns the number of distinct values in the inclusive
// interval [low, high], which is high-low+1. The second value is false
// when the count cannot be represented in a uint64 (i.e. the interval
// covers every 64 bit value).
func Span[T Integer](low, high T) (uint64, bool) {
	sum, carry := bits.Add64(Offset(low, high), 1, 0)
	return sum, carry == 0
}

// CeilLog2 returns the smallest n such that 1<<n >= v. Values less
// than or equal to one return zero.
func CeilLog2(v int) int {
	if v <= 1 {
		return 0
	}
	return bits.Len(uint(v - 1))
}
