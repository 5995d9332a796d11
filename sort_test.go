package order_test

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/tychoish/order"
	"github.com/tychoish/order/assert"
	"github.com/tychoish/order/assert/check"
	"github.com/tychoish/order/testt"
)

type algorithm struct {
	name   string
	stable bool
	// merges write through buffers and do not keep a permutation
	// when the comparator fails part way.
	buffered bool
	ints   func([]int)
	fn     func([]testt.Tagged, order.Comparator[testt.Tagged]) error
	rng    func([]int, int, int, order.Comparator[int]) error
	tagged func([]testt.Tagged, int, int, order.Comparator[testt.Tagged]) error
}

func algorithms() []algorithm {
	return []algorithm{
		{name: "Quick", ints: order.Quick[int], fn: order.QuickFunc[testt.Tagged], rng: order.QuickRange[int], tagged: order.QuickRange[testt.Tagged]},
		{name: "Quick3", ints: order.Quick3[int], fn: order.Quick3Func[testt.Tagged], rng: order.Quick3Range[int], tagged: order.Quick3Range[testt.Tagged]},
		{name: "Merge", stable: true, buffered: true, ints: order.Merge[int], fn: order.MergeFunc[testt.Tagged], rng: order.MergeRange[int], tagged: order.MergeRange[testt.Tagged]},
		{name: "Heap", ints: order.Heap[int], fn: order.HeapFunc[testt.Tagged], rng: order.HeapRange[int], tagged: order.HeapRange[testt.Tagged]},
		{name: "Shell", ints: order.Shell[int], fn: order.ShellFunc[testt.Tagged], rng: order.ShellRange[int], tagged: order.ShellRange[testt.Tagged]},
		{name: "Bubble", stable: true, ints: order.Bubble[int], fn: order.BubbleFunc[testt.Tagged], rng: order.BubbleRange[int], tagged: order.BubbleRange[testt.Tagged]},
	}
}

func inputs() map[string][]int {
	return map[string][]int{
		"Empty":      {},
		"Single":     {42},
		"Pair":       {2, 1},
		"Random":     testt.Ints(500, -1000, 1000),
		"FewValues":  testt.Ints(500, 0, 4),
		"Shuffled":   testt.Shuffled(257),
		"Descending": testt.Descending(300),
		"Ascending":  ascending(300),
		"AllEqual":   slices.Repeat([]int{7}, 64),
	}
}

func ascending(n int) []int {
	out := testt.Descending(n)
	slices.Reverse(out)
	return out
}

func TestAlgorithms(t *testing.T) {
	for _, algo := range algorithms() {
		t.Run(algo.name, func(t *testing.T) {
			for name, in := range inputs() {
				t.Run(name, func(t *testing.T) {
					t.Run("Ordered", func(t *testing.T) {
						s := testt.Clone(in)
						algo.ints(s)
						check.Sorted(t, s, cmp.Compare[int])
						check.SameItems(t, s, in)
					})
					t.Run("Descending", func(t *testing.T) {
						s := testt.Clone(in)
						assert.NotError(t, algo.rng(s, 0, len(s), order.NaturalDescending[int]()))
						check.Sorted(t, s, order.NaturalDescending[int]())
						check.SameItems(t, s, in)
					})
					t.Run("MatchesStandardLibrary", func(t *testing.T) {
						s, expected := testt.Clone(in), testt.Clone(in)
						slices.Sort(expected)
						assert.NotError(t, algo.rng(s, 0, len(s), nil))
						check.EqualItems(t, s, expected)
					})
				})
			}
			t.Run("Scenario", func(t *testing.T) {
				s := []int{5, 3, 3, 1, 4, 1, 5, 9, 2, 6}
				algo.ints(s)
				check.EqualItems(t, s, []int{1, 1, 2, 3, 3, 4, 5, 5, 6, 9})

				s = []int{5, 3, 3, 1, 4, 1, 5, 9, 2, 6}
				assert.NotError(t, algo.rng(s, 0, len(s), order.NaturalDescending[int]()))
				check.EqualItems(t, s, []int{9, 6, 5, 5, 4, 3, 3, 2, 1, 1})
			})
			t.Run("Subrange", func(t *testing.T) {
				s := testt.Descending(10)
				assert.NotError(t, algo.rng(s, 2, 4, nil))
				check.EqualItems(t, s, []int{9, 8, 4, 5, 6, 7, 3, 2, 1, 0})
			})
			t.Run("RangeIsolation", func(t *testing.T) {
				in := testt.Ints(400, -100, 100)
				s := testt.Clone(in)
				assert.NotError(t, algo.rng(s, 37, 211, nil))
				check.EqualItems(t, s[:37], in[:37])
				check.EqualItems(t, s[37+211:], in[37+211:])
				check.Sorted(t, s[37:37+211], cmp.Compare[int])
				check.SameItems(t, s[37:37+211], in[37:37+211])
			})
			t.Run("EmptyRangeAtEnd", func(t *testing.T) {
				s := []int{3, 2, 1}
				assert.NotError(t, algo.rng(s, 3, 0, nil))
				check.EqualItems(t, s, []int{3, 2, 1})
			})
			t.Run("InvalidRange", func(t *testing.T) {
				for _, bounds := range [][2]int{{-1, 2}, {0, -1}, {4, 1}, {3, 2}, {0, 5}} {
					s := []int{4, 3, 2, 1}
					err := algo.rng(s, bounds[0], bounds[1], nil)
					check.ErrorIs(t, err, order.ErrInvalidRange)
					check.EqualItems(t, s, []int{4, 3, 2, 1})
				}
			})
			t.Run("NilComparator", func(t *testing.T) {
				s := testt.TaggedInts(10, 3)
				before := testt.Clone(s)
				check.ErrorIs(t, algo.fn(s, nil), order.ErrNilComparator)
				check.EqualItems(t, s, before)
				check.ErrorIs(t, algo.tagged(s, 0, len(s), nil), order.ErrNilComparator)
			})
			t.Run("Func", func(t *testing.T) {
				s := testt.TaggedInts(300, 10)
				assert.NotError(t, algo.fn(s, testt.CompareTagged))
				check.Sorted(t, s, testt.CompareTagged)
				check.SameItems(t, s, testt.TaggedInts(300, 10))
			})
			t.Run("Stability", func(t *testing.T) {
				if !algo.stable {
					t.Skip("algorithm is not stable")
				}
				s := testt.TaggedInts(400, 7)
				assert.NotError(t, algo.fn(s, testt.CompareTagged))
				check.True(t, testt.Stable(s))

				s = testt.TaggedInts(400, 7)
				assert.NotError(t, algo.tagged(s, 0, len(s), order.Reverse(testt.CompareTagged)))
				check.Sorted(t, s, order.Reverse(testt.CompareTagged))
				check.True(t, testt.Stable(s))
			})
			t.Run("ComparatorPanic", func(t *testing.T) {
				s := testt.Shuffled(50)
				err := algo.rng(s, 0, len(s), func(int, int) int { panic(errors.New("incomparable")) })
				check.ErrorIs(t, err, order.ErrRecoveredPanic)
				check.Substring(t, err.Error(), "incomparable")
				check.SameItems(t, s, testt.Shuffled(50))
			})
			t.Run("ComparatorPanicLater", func(t *testing.T) {
				for _, limit := range []int{2, 17, 100, 450} {
					in := testt.Ints(200, 0, 1000)
					s := testt.Clone(in)
					calls := 0
					err := algo.rng(s, 20, 150, func(a, b int) int {
						if calls++; calls == limit {
							panic(errors.New("incomparable"))
						}
						return cmp.Compare(a, b)
					})
					check.ErrorIs(t, err, order.ErrRecoveredPanic)
					check.EqualItems(t, s[:20], in[:20])
					check.EqualItems(t, s[170:], in[170:])
					if !algo.buffered {
						check.SameItems(t, s[20:170], in[20:170])
					}
				}
			})
		})
	}
}

func TestShellGaps(t *testing.T) {
	t.Run("Custom", func(t *testing.T) {
		s := testt.Ints(100, 0, 50)
		assert.NotError(t, order.ShellFuncGaps(s, []int{7, 3, 1}, order.Natural[int]()))
		check.Sorted(t, s, cmp.Compare[int])
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, gaps := range [][]int{nil, {3, 2}, {1, 3, 1}, {4, 4, 1}} {
			t.Run(fmt.Sprint(gaps), func(t *testing.T) {
				s := []int{2, 1}
				check.Error(t, order.ValidateGaps(gaps))
				check.Error(t, order.ShellFuncGaps(s, gaps, order.Natural[int]()))
				check.EqualItems(t, s, []int{2, 1})
			})
		}
	})
	t.Run("Default", func(t *testing.T) {
		assert.NotError(t, order.ValidateGaps(order.ShellGaps))
	})
}

func TestPairs(t *testing.T) {
	pairs := func() []order.Pair[int, string] {
		return []order.Pair[int, string]{
			order.MakePair(3, "a"), order.MakePair(1, "b"), order.MakePair(3, "c"), order.MakePair(1, "d"),
		}
	}
	expected := []order.Pair[int, string]{{1, "b"}, {1, "d"}, {3, "a"}, {3, "c"}}

	t.Run("SortKeys", func(t *testing.T) {
		for name, sorter := range map[string]order.RangeSorter[order.Pair[int, string]]{
			"Merge":  order.MergeRange[order.Pair[int, string]],
			"Bubble": order.BubbleRange[order.Pair[int, string]],
		} {
			t.Run(name, func(t *testing.T) {
				s := pairs()
				assert.NotError(t, order.SortKeys(sorter, s, 0, len(s), nil))
				check.EqualItems(t, s, expected)
			})
		}
	})
	t.Run("SortValues", func(t *testing.T) {
		s := pairs()
		assert.NotError(t, order.SortValues(order.QuickRange[order.Pair[int, string]], s, 0, len(s), order.NaturalDescending[string]()))
		check.EqualItems(t, s, []order.Pair[int, string]{{1, "d"}, {3, "c"}, {1, "b"}, {3, "a"}})
	})
	t.Run("Orders", func(t *testing.T) {
		s := pairs()
		assert.NotError(t, order.MergeFunc(s, order.KeyOrder[int, string]()))
		check.EqualItems(t, s, expected)

		assert.NotError(t, order.HeapFunc(s, order.ValueOrder[int, string]()))
		check.EqualItems(t, s, []order.Pair[int, string]{{3, "a"}, {1, "b"}, {3, "c"}, {1, "d"}})
	})
	t.Run("NoDefault", func(t *testing.T) {
		s := []order.Pair[struct{}, int]{{}, {}}
		err := order.SortKeys(order.MergeRange[order.Pair[struct{}, int]], s, 0, 2, nil)
		check.ErrorIs(t, err, order.ErrNilComparator)
	})
}
