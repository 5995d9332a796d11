package main

import (
	"sort"

	"github.com/tychoish/order"
	"github.com/tychoish/order/dt"
	"github.com/tychoish/order/opt"
	"github.com/tychoish/order/wpa"
)

// job is one invocation of an algorithm: the input, the addressed
// range, the direction and the parallel configuration.
type job struct {
	data  []int
	start int
	count int
	dir   order.Direction
	conf  []opt.Provider[*wpa.Conf]
}

func (j job) comparator() order.Comparator[int] {
	return order.Directed(order.Natural[int](), j.dir)
}

type runner func(job) error

func comparison(fn order.RangeSorter[int]) runner {
	return func(j job) error { return fn(j.data, j.start, j.count, j.comparator()) }
}

func parallel(fn func([]int, int, int, order.Comparator[int], ...opt.Provider[*wpa.Conf]) error) runner {
	return func(j job) error { return fn(j.data, j.start, j.count, j.comparator(), j.conf...) }
}

func distribution(fn func([]int, int, int, order.Direction) error) runner {
	return func(j job) error { return fn(j.data, j.start, j.count, j.dir) }
}

// linked copies the data into a list, sorts the addressed nodes and
// copies the values back, so the result can be verified like the
// slice algorithms.
func linked(par bool) runner {
	return func(j job) error {
		l := dt.NewList(j.data...)
		var err error
		if par {
			err = order.ParallelListMergeRange[int, *dt.Element[int]](l, j.start, j.count, j.comparator(), j.conf...)
		} else {
			err = l.SortMergeRange(j.start, j.count, j.comparator())
		}
		if err != nil {
			return err
		}
		copy(j.data, l.Slice())
		return nil
	}
}

var algorithms = map[string]runner{
	"quick":           comparison(order.QuickRange[int]),
	"quick3":          comparison(order.Quick3Range[int]),
	"merge":           comparison(order.MergeRange[int]),
	"heap":            comparison(order.HeapRange[int]),
	"shell":           comparison(order.ShellRange[int]),
	"bubble":          comparison(order.BubbleRange[int]),
	"parallel-quick":  parallel(order.ParallelQuickRange[int]),
	"parallel-quick3": parallel(order.ParallelQuick3Range[int]),
	"parallel-merge":  parallel(order.ParallelMergeRange[int]),
	"counting":        distribution(order.CountingRange[int]),
	"radix":           distribution(order.RadixRange[int]),
	"pigeonhole":      distribution(order.PigeonholeRange[int]),
	"list-merge":      linked(false),
	"parallel-list":   linked(true),
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
