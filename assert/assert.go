// Package assert provides a small assertion framework built on
// generics. All assertions are "fatal" and cause the test to abort at
// the failure line (rather than continue on error). The check package
// holds the non-fatal equivalents.
package assert

import (
	"errors"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// False causes a test to fail if the condition is true.
func False(t testing.TB, cond bool) {
	t.Helper()
	if cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers are never equal even if
// their values are.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if the two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs fails the test if the error (or its wrapped values) are
// equal to the target error.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}

// EqualItems compares the values in two slices and fails at the
// first position where they differ.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Sorted fails the test if any adjacent pair of the slice is out of
// order according to the comparator.
func Sorted[T any](t testing.TB, s []T, cf func(a, b T) int) {
	t.Helper()
	if idx := Inversion(s, cf); idx >= 0 {
		t.Fatalf("items at index %d and %d [%v > %v] are out of order", idx, idx+1, s[idx], s[idx+1])
	}
}

// SameItems fails the test unless the two slices are permutations of
// each other.
func SameItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}
	if item, ok := Difference(one, two); !ok {
		t.Fatalf("item <%v> does not occur equally in both slices", item)
	}
}

// Inversion returns the first index i such that s[i] orders after
// s[i+1], or -1 when the slice is sorted.
func Inversion[T any](s []T, cf func(a, b T) int) int {
	for idx := 1; idx < len(s); idx++ {
		if cf(s[idx-1], s[idx]) > 0 {
			return idx - 1
		}
	}
	return -1
}

// Difference reports the first item whose multiplicity differs
// between the two slices, and false if such an item exists.
func Difference[T comparable](one, two []T) (T, bool) {
	counts := make(map[T]int, len(one))
	for _, item := range one {
		counts[item]++
	}
	for _, item := range two {
		counts[item]--
	}
	for _, item := range one {
		if counts[item] != 0 {
			return item, false
		}
	}
	for _, item := range two {
		if counts[item] != 0 {
			return item, false
		}
	}
	var zero T
	return zero, true
}
