package order

import (
	"cmp"
	"fmt"

	"github.com/tychoish/order/ers"
)

// ShellGaps is the gap sequence used by the shell sort entry points:
// Ciura's empirically tuned sequence extended by a factor of ~2.25.
// Gaps larger than the addressed range are skipped.
var ShellGaps = []int{510774, 227011, 100894, 44842, 19930, 8858, 3937, 1750, 701, 301, 132, 57, 23, 10, 4, 1}

// Shell sorts the slice in ascending order with shell sort.
func Shell[T cmp.Ordered](s []T) { shellSort(s, ShellGaps, Natural[T]()) }

// ShellFunc sorts the slice in place with shell sort. It is not
// stable.
func ShellFunc[T any](s []T, c Comparator[T]) error {
	return sortFunc(s, c, withGaps[T](ShellGaps))
}

// ShellRange sorts s[start:start+count] with shell sort.
func ShellRange[T any](s []T, start, count int, c Comparator[T]) error {
	return sortRange(s, start, count, c, withGaps[T](ShellGaps))
}

// ShellFuncGaps sorts the slice with shell sort using a caller
// supplied gap sequence, which must be strictly decreasing, positive,
// and end with 1.
func ShellFuncGaps[T any](s []T, gaps []int, c Comparator[T]) error {
	if err := ValidateGaps(gaps); err != nil {
		return err
	}
	return sortFunc(s, c, withGaps[T](gaps))
}

// ValidateGaps reports whether the sequence can drive a shell sort.
func ValidateGaps(gaps []int) error {
	if len(gaps) == 0 || gaps[len(gaps)-1] != 1 {
		return fmt.Errorf("gap sequence %v must end with 1: %w", gaps, ers.ErrMalformedConfiguration)
	}
	for idx := 1; idx < len(gaps); idx++ {
		if gaps[idx] >= gaps[idx-1] {
			return fmt.Errorf("gap sequence %v is not decreasing at %d: %w", gaps, idx, ers.ErrMalformedConfiguration)
		}
	}
	return nil
}

func withGaps[T any](gaps []int) algorithm[T] {
	return func(s []T, c Comparator[T]) { shellSort(s, gaps, c) }
}

// shellSort runs one gapped insertion sort per gap. While an item is
// being inserted, s[pos] is a hole; if the comparator panics the item
// is written into the hole so that s remains a permutation.
func shellSort[T any](s []T, gaps []int, c Comparator[T]) {
	var (
		val     T
		pos     int
		holding bool
	)
	defer func() {
		if holding {
			s[pos] = val
		}
	}()

	for _, gap := range gaps {
		if gap >= len(s) {
			continue
		}
		for idx := gap; idx < len(s); idx++ {
			val, pos, holding = s[idx], idx, true
			for ; pos >= gap && c(s[pos-gap], val) > 0; pos -= gap {
				s[pos] = s[pos-gap]
			}
			s[pos] = val
			holding = false
		}
	}
}
