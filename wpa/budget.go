package wpa

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tychoish/order/erc"
	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/opt"
)

// Budget is the remaining fork depth of one recursive branch. Budgets
// are values: each fork hands a decremented copy to both branches,
// and all copies derived from one NewBudget call share a failure
// flag, so no branch forks once any branch has failed.
//
// The zero value is an exhausted budget.
type Budget struct {
	depth  int
	failed *atomic.Bool
}

// NewBudget resolves the options and returns the root budget of a
// parallel operation.
func NewBudget(opts ...opt.Provider[*Conf]) (Budget, error) {
	conf, err := Resolve(opts...)
	if err != nil {
		return Budget{}, err
	}
	return Budget{depth: conf.Depth, failed: &atomic.Bool{}}, nil
}

// Depth returns the number of fork levels that remain.
func (b Budget) Depth() int { return b.depth }

// Failed reports whether any branch sharing this budget has returned
// an error.
func (b Budget) Failed() bool { return b.failed != nil && b.failed.Load() }

// Exhausted is true when the branch should continue sequentially.
func (b Budget) Exhausted() bool { return b.depth <= 0 || b.Failed() }

func (b Budget) fail(err error) error {
	if err != nil && b.failed != nil {
		b.failed.Store(true)
	}
	return err
}

// Fork runs both functions and returns once both have returned. When
// the budget is exhausted they run in order on the calling goroutine
// and right is skipped if left fails; otherwise they run
// concurrently with a budget one level smaller, panics in either are
// converted to errors, and the errors of both are joined.
func (b Budget) Fork(left, right func(Budget) error) error {
	if b.Exhausted() {
		if err := b.fail(left(b)); err != nil {
			return err
		}
		return b.fail(right(b))
	}

	child := Budget{depth: b.depth - 1, failed: b.failed}
	ec := &erc.Collector{}
	eg := &errgroup.Group{}

	for _, fn := range []func(Budget) error{left, right} {
		eg.Go(func() error {
			err := b.fail(ers.WithRecoverApply(func() error { return fn(child) }))
			ec.Push(err)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return ec.Resolve()
	}
	return nil
}
