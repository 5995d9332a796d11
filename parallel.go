package order

import (
	"cmp"
	"slices"

	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/opt"
	"github.com/tychoish/order/wpa"
)

// The parallel sorters run the two recursive branches of each split
// concurrently until the fork depth (wpa.Conf) is used up, and then
// continue with the sequential algorithm. They produce the same
// result as their sequential counterparts. Branches operate on
// disjoint parts of the input; the merge step runs after both have
// returned. Once any branch fails no new branches fork, and the
// errors of all started branches are joined.

type parallelAlgorithm[T any] func([]T, Comparator[T], wpa.Budget) error

func parallelFunc[T any](s []T, c Comparator[T], sort parallelAlgorithm[T], opts []opt.Provider[*wpa.Conf]) error {
	if c == nil {
		return ErrNilComparator
	}
	budget, err := wpa.NewBudget(opts...)
	if err != nil {
		return err
	}
	return ers.WithRecoverApply(func() error { return sort(s, c, budget) })
}

func parallelRange[T any](s []T, start, count int, c Comparator[T], sort parallelAlgorithm[T], opts []opt.Provider[*wpa.Conf]) (err error) {
	if err = checkRange(len(s), start, count); err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	return parallelFunc(s[start:start+count], c, sort, opts)
}

// ParallelQuick sorts the slice in ascending order with the parallel
// quicksort.
func ParallelQuick[T cmp.Ordered](s []T, opts ...opt.Provider[*wpa.Conf]) error {
	return ParallelQuickFunc(s, Natural[T](), opts...)
}

// ParallelQuickFunc sorts the slice with quicksort, partitioning on
// the calling goroutine and sorting both partitions concurrently.
func ParallelQuickFunc[T any](s []T, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelFunc(s, c, quickParallel[T], opts)
}

// ParallelQuickRange sorts s[start:start+count] with the parallel
// quicksort.
func ParallelQuickRange[T any](s []T, start, count int, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelRange(s, start, count, c, quickParallel[T], opts)
}

func quickParallel[T any](s []T, c Comparator[T], budget wpa.Budget) error {
	if budget.Exhausted() {
		quickSort(s, c)
		return nil
	}
	if len(s) < 2 {
		return nil
	}
	p := partition(s, c)
	return budget.Fork(
		func(b wpa.Budget) error { return quickParallel(s[:p], c, b) },
		func(b wpa.Budget) error { return quickParallel(s[p+1:], c, b) },
	)
}

// ParallelQuick3 sorts the slice in ascending order with the parallel
// three-way quicksort.
func ParallelQuick3[T cmp.Ordered](s []T, opts ...opt.Provider[*wpa.Conf]) error {
	return ParallelQuick3Func(s, Natural[T](), opts...)
}

// ParallelQuick3Func sorts the slice with three-way quicksort,
// sorting the less-than and greater-than zones concurrently.
func ParallelQuick3Func[T any](s []T, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelFunc(s, c, quick3Parallel[T], opts)
}

// ParallelQuick3Range sorts s[start:start+count] with the parallel
// three-way quicksort.
func ParallelQuick3Range[T any](s []T, start, count int, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelRange(s, start, count, c, quick3Parallel[T], opts)
}

func quick3Parallel[T any](s []T, c Comparator[T], budget wpa.Budget) error {
	if budget.Exhausted() {
		quick3Sort(s, c)
		return nil
	}
	if len(s) < 2 {
		return nil
	}
	lt, gt := partition3(s, c)
	return budget.Fork(
		func(b wpa.Budget) error { return quick3Parallel(s[:lt], c, b) },
		func(b wpa.Budget) error { return quick3Parallel(s[gt:], c, b) },
	)
}

// ParallelMerge sorts the slice in ascending order with the parallel
// merge sort.
func ParallelMerge[T cmp.Ordered](s []T, opts ...opt.Provider[*wpa.Conf]) error {
	return ParallelMergeFunc(s, Natural[T](), opts...)
}

// ParallelMergeFunc sorts the slice with a stable merge sort whose
// halves are sorted concurrently; the merges are sequential. As with
// MergeFunc, a comparator panic leaves the slice unspecified.
func ParallelMergeFunc[T any](s []T, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelFunc(s, c, mergeParallel[T], opts)
}

// ParallelMergeRange sorts s[start:start+count] with the parallel
// merge sort.
func ParallelMergeRange[T any](s []T, start, count int, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	return parallelRange(s, start, count, c, mergeParallel[T], opts)
}

func mergeParallel[T any](s []T, c Comparator[T], budget wpa.Budget) error {
	if len(s) < 2 {
		return nil
	}
	return mergeIntoParallel(slices.Clone(s), s, c, budget)
}

// mergeIntoParallel is mergeInto with forked halves.
func mergeIntoParallel[T any](src, dst []T, c Comparator[T], budget wpa.Budget) error {
	if budget.Exhausted() {
		mergeInto(src, dst, c)
		return nil
	}
	if len(dst) < 2 {
		return nil
	}
	mid := len(dst) / 2
	if err := budget.Fork(
		func(b wpa.Budget) error { return mergeIntoParallel(dst[:mid], src[:mid], c, b) },
		func(b wpa.Budget) error { return mergeIntoParallel(dst[mid:], src[mid:], c, b) },
	); err != nil {
		return err
	}
	merge(src[:mid], src[mid:], dst, c)
	return nil
}

// ParallelListMerge sorts a whole linked sequence with the linked
// merge sort, sorting the two sub-sequences of each split
// concurrently. Each branch owns the nodes of its sub-sequence; the
// merge into the parent runs after both branches join.
func ParallelListMerge[T any, N Node[T, N]](seq Linked[T, N], c Comparator[T], opts ...opt.Provider[*wpa.Conf]) (err error) {
	if c, err = Resolve(c); err != nil {
		return err
	}
	budget, err := wpa.NewBudget(opts...)
	if err != nil {
		return err
	}
	return listMerge(seq, whole(seq), c, budget)
}

// ParallelListMergeRange is the parallel form of ListMergeRange.
func ParallelListMergeRange[T any, N Node[T, N]](seq Linked[T, N], start, count int, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	r, err := nodeRange(seq, start, count)
	if err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	budget, err := wpa.NewBudget(opts...)
	if err != nil {
		return err
	}
	return listMerge(seq, r, c, budget)
}

// ParallelListMergeNodes is the parallel form of ListMergeNodes.
func ParallelListMergeNodes[T any, N Node[T, N]](seq Linked[T, N], first, last N, c Comparator[T], opts ...opt.Provider[*wpa.Conf]) error {
	r, err := nodes(seq, first, last)
	if err != nil {
		return err
	}
	if c, err = Resolve(c); err != nil {
		return err
	}
	budget, err := wpa.NewBudget(opts...)
	if err != nil {
		return err
	}
	return listMerge(seq, r, c, budget)
}
