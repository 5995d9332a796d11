// Package testt (for test tools), provides a few helpers for the
// common test patterns of sorting code: deterministic input
// generators and failure-only logging. To be used as a companion of
// the assert/check library.
package testt

import (
	"context"
	"math/rand"
	"testing"
)

// Seed is the default seed for the generators; the inputs of a test
// run are reproducible.
const Seed = 1337

// Context creates a context and attaches its cancellation function to
// the test execution's Cleanup.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Log with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// Rand returns a seeded random source.
func Rand() *rand.Rand { return rand.New(rand.NewSource(Seed)) }

// Ints returns n pseudo-random integers in [low, high).
func Ints(n, low, high int) []int {
	r := Rand()
	out := make([]int, n)
	for idx := range out {
		out[idx] = low + r.Intn(high-low)
	}
	return out
}

// Shuffled returns a random permutation of the integers [0, n).
func Shuffled(n int) []int { return Rand().Perm(n) }

// Descending returns the integers n-1 down to 0.
func Descending(n int) []int {
	out := make([]int, n)
	for idx := range out {
		out[idx] = n - 1 - idx
	}
	return out
}

// Tagged is an item with a sort key and the position it held in the
// input, used to observe stability.
type Tagged struct {
	Key int
	Pos int
}

// TaggedInts returns n items with keys drawn from [0, keys), where
// Pos records the original index.
func TaggedInts(n, keys int) []Tagged {
	r := Rand()
	out := make([]Tagged, n)
	for idx := range out {
		out[idx] = Tagged{Key: r.Intn(keys), Pos: idx}
	}
	return out
}

// CompareTagged orders Tagged items by key alone.
func CompareTagged(a, b Tagged) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}

// Stable reports whether items with equal keys are in ascending Pos
// order, which is the result a stable sort must produce.
func Stable(s []Tagged) bool {
	for idx := 1; idx < len(s); idx++ {
		if s[idx-1].Key == s[idx].Key && s[idx-1].Pos > s[idx].Pos {
			return false
		}
	}
	return true
}

// Clone returns a copy of the slice.
func Clone[T any](s []T) []T { return append(make([]T, 0, len(s)), s...) }
