package order

import (
	"fmt"
	"math"

	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/intish"
)

const (
	// MaxCountingSpan bounds the histogram of the counting sort.
	MaxCountingSpan = math.MaxInt32 / 4
	// MaxPigeonholeSpan bounds the number of pigeonhole buckets.
	MaxPigeonholeSpan = math.MaxInt32 / 16
	// RadixDigitBits is the width of each radix sort digit.
	RadixDigitBits = 8
)

// keyspace maps the keys of one range onto the slots [0, span):
// ascending keys map to key-min and descending keys are reflected,
// so a stable ascending pass over the slots is a stable descending
// sort of the keys.
type keyspace[T any, K intish.Integer] struct {
	key  func(T) K
	low  K
	high K
	max  uint64 // span-1
	desc bool
}

func newKeyspace[T any, K intish.Integer](s []T, key func(T) K, dir Direction) keyspace[T, K] {
	low, high := intish.Bounds(s, key)
	return keyspace[T, K]{key: key, low: low, high: high, max: intish.Offset(low, high), desc: dir == Decreasing}
}

// bounded returns the span of the keys, or ErrRangeTooLarge when it
// overflows or is not below the limit.
func (ks keyspace[T, K]) bounded(limit uint64) (uint64, error) {
	span, ok := intish.Span(ks.low, ks.high)
	if !ok || span >= limit {
		return 0, fmt.Errorf("key span [%v, %v] exceeds %d: %w", ks.low, ks.high, limit, ErrRangeTooLarge)
	}
	return span, nil
}

func (ks keyspace[T, K]) slot(item T) uint64 {
	off := intish.Offset(ks.low, ks.key(item))
	if ks.desc {
		return ks.max - off
	}
	return off
}

type distribution[T any, K intish.Integer] func(s []T, key func(T) K, dir Direction) error

// distribute validates the range and runs the distribution sort on
// it, converting panics in the key function into errors.
func distribute[T any, K intish.Integer](s []T, start, count int, key func(T) K, dir Direction, sort distribution[T, K]) error {
	if err := checkRange(len(s), start, count); err != nil {
		return err
	}
	if key == nil {
		return fmt.Errorf("key function: %w", ErrNilComparator)
	}
	if count < 2 {
		return nil
	}
	return ers.WithRecoverApply(func() error { return sort(s[start:start+count], key, dir) })
}

func identity[T any](v T) T { return v }

// PairKey and PairValue project a pair onto one of its fields.
func PairKey[K, V any](p Pair[K, V]) K   { return p.Key }
func PairValue[K, V any](p Pair[K, V]) V { return p.Value }
