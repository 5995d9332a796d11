package check

import (
	"cmp"
	"errors"
	"testing"
)

type recorder struct {
	testing.TB
	count int
}

func (r *recorder) Helper()                      {}
func (r *recorder) Error(args ...any)            { r.count++ }
func (r *recorder) Errorf(f string, args ...any) { r.count++ }

func TestCheck(t *testing.T) {
	t.Run("Passing", func(t *testing.T) {
		rec := &recorder{}
		True(rec, true)
		False(rec, false)
		Equal(rec, 4, 4)
		NotEqual(rec, 4, 5)
		Error(rec, errors.New("e"))
		NotError(rec, nil)
		ErrorIs(rec, errors.ErrUnsupported, errors.ErrUnsupported)
		Panic(rec, func() { panic("p") })
		NotPanic(rec, func() {})
		Substring(rec, "abc", "b")
		EqualItems(rec, []int{1}, []int{1})
		Sorted(rec, []int{1, 2, 3}, cmp.Compare[int])
		SameItems(rec, []int{1, 2}, []int{2, 1})
		if rec.count != 0 {
			t.Error("unexpected failures", rec.count)
		}
	})
	t.Run("Continues", func(t *testing.T) {
		rec := &recorder{}
		True(rec, false)
		Equal(rec, 1, 2)
		NotError(rec, errors.New("e"))
		EqualItems(rec, []int{1, 2, 3}, []int{3, 2, 1})
		Sorted(rec, []int{2, 1}, cmp.Compare[int])
		SameItems(rec, []int{1}, []int{2})
		if rec.count != 7 {
			t.Error("each failure should be recorded", rec.count)
		}
	})
}
