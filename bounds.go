package order

import (
	"fmt"

	"github.com/tychoish/order/ers"
)

// checkRange validates a start/count pair against a sequence of the
// given length: both must be non-negative, start may equal length
// only when count is zero, and the range may not extend past the
// end.
func checkRange(length, start, count int) error {
	switch {
	case start < 0:
		return fmt.Errorf("start %d is negative: %w", start, ErrInvalidRange)
	case count < 0:
		return fmt.Errorf("count %d is negative: %w", count, ErrInvalidRange)
	case start > length || (count > 0 && start == length):
		return fmt.Errorf("start %d is outside of a sequence of length %d: %w", start, length, ErrInvalidRange)
	case count > length-start:
		return fmt.Errorf("range [%d, %d+%d) exceeds length %d: %w", start, start, count, length, ErrInvalidRange)
	default:
		return nil
	}
}

type algorithm[T any] func([]T, Comparator[T])

// sortFunc runs the algorithm over the whole slice with a comparator
// that must be defined.
func sortFunc[T any](s []T, c Comparator[T], sort algorithm[T]) error {
	if c == nil {
		return ErrNilComparator
	}
	return ers.WithRecoverCall(func() { sort(s, c) })
}

// sortRange validates the range, resolves the comparator and runs
// the algorithm on the addressed subslice.
func sortRange[T any](s []T, start, count int, c Comparator[T], sort algorithm[T]) (err error) {
	if err = checkRange(len(s), start, count); err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	return ers.WithRecoverCall(func() { sort(s[start:start+count], c) })
}
