package assert

import (
	"cmp"
	"errors"
	"fmt"
	"runtime"
	"testing"
)

type recorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *recorder) Helper() {}
func (r *recorder) Failed() bool { return r.failed }
func (r *recorder) Fatal(args ...any) {
	r.failed, r.msg = true, fmt.Sprint(args...)
	runtime.Goexit()
}
func (r *recorder) Fatalf(f string, args ...any) {
	r.failed, r.msg = true, fmt.Sprintf(f, args...)
	runtime.Goexit()
}
func (r *recorder) Error(args ...any)            { r.failed = true }
func (r *recorder) Errorf(f string, args ...any) { r.failed = true }

func run(fn func(testing.TB)) *recorder {
	rec := &recorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(rec)
	}()
	<-done
	return rec
}

func TestAssertions(t *testing.T) {
	errRoot := errors.New("root")
	for name, tc := range map[string]struct {
		pass func(testing.TB)
		fail func(testing.TB)
	}{
		"True":       {pass: func(t testing.TB) { True(t, true) }, fail: func(t testing.TB) { True(t, false) }},
		"False":      {pass: func(t testing.TB) { False(t, false) }, fail: func(t testing.TB) { False(t, true) }},
		"Equal":      {pass: func(t testing.TB) { Equal(t, 1, 1) }, fail: func(t testing.TB) { Equal(t, 1, 2) }},
		"NotEqual":   {pass: func(t testing.TB) { NotEqual(t, 1, 2) }, fail: func(t testing.TB) { NotEqual(t, "a", "a") }},
		"Error":      {pass: func(t testing.TB) { Error(t, errRoot) }, fail: func(t testing.TB) { Error(t, nil) }},
		"NotError":   {pass: func(t testing.TB) { NotError(t, nil) }, fail: func(t testing.TB) { NotError(t, errRoot) }},
		"ErrorIs":    {pass: func(t testing.TB) { ErrorIs(t, fmt.Errorf("wrap: %w", errRoot), errRoot) }, fail: func(t testing.TB) { ErrorIs(t, errors.New("other"), errRoot) }},
		"NotErrorIs": {pass: func(t testing.TB) { NotErrorIs(t, errors.New("other"), errRoot) }, fail: func(t testing.TB) { NotErrorIs(t, errRoot, errRoot) }},
		"Panic":      {pass: func(t testing.TB) { Panic(t, func() { panic("boom") }) }, fail: func(t testing.TB) { Panic(t, func() {}) }},
		"NotPanic":   {pass: func(t testing.TB) { NotPanic(t, func() {}) }, fail: func(t testing.TB) { NotPanic(t, func() { panic("boom") }) }},
		"Substring":  {pass: func(t testing.TB) { Substring(t, "merge sort", "sort") }, fail: func(t testing.TB) { Substring(t, "merge", "heap") }},
		"EqualItems": {pass: func(t testing.TB) { EqualItems(t, []int{1, 2}, []int{1, 2}) }, fail: func(t testing.TB) { EqualItems(t, []int{1, 2}, []int{2, 1}) }},
		"Sorted":     {pass: func(t testing.TB) { Sorted(t, []int{1, 1, 2}, cmp.Compare[int]) }, fail: func(t testing.TB) { Sorted(t, []int{1, 3, 2}, cmp.Compare[int]) }},
		"SameItems":  {pass: func(t testing.TB) { SameItems(t, []int{3, 1, 1}, []int{1, 3, 1}) }, fail: func(t testing.TB) { SameItems(t, []int{3, 1, 1}, []int{3, 3, 1}) }},
	} {
		t.Run(name, func(t *testing.T) {
			if rec := run(tc.pass); rec.failed {
				t.Error("unexpected failure:", rec.msg)
			}
			if rec := run(tc.fail); !rec.failed {
				t.Error("expected failure")
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	if idx := Inversion([]int{1, 2, 5, 4}, cmp.Compare[int]); idx != 2 {
		t.Error("unexpected inversion", idx)
	}
	if idx := Inversion([]int{}, cmp.Compare[int]); idx != -1 {
		t.Error("empty slice is sorted")
	}
	if item, ok := Difference([]string{"a", "b"}, []string{"b", "c"}); ok || item != "a" {
		t.Error("unexpected difference", item)
	}
}
