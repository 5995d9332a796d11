// Package erc provides a goroutine-safe error collector, built on the
// ers.Stack aggregate, for gathering the failures of concurrently
// executing units of work and reporting them once every unit has
// returned.
package erc

import (
	"sync"

	"github.com/tychoish/order/ers"
)

// Collector is a thread safe error aggregator. It collects the
// failures of forked sort branches and recovered comparator panics and
// aggregates errors which can be resolved as a single error. The
// constituent errors (and flattened, in the case of wrapped errors),
// are an *ers.Stack object, which can be introspected as needed.
//
// The zero value is ready for use.
type Collector struct {
	mu    sync.Mutex
	stack ers.Stack
}

func lock(mtx *sync.Mutex) *sync.Mutex { mtx.Lock(); return mtx }
func with(mtx *sync.Mutex)             { mtx.Unlock() }

// Push adds an error to the collector. Nil errors are ignored.
func (ec *Collector) Push(err error) {
	if err == nil {
		return
	}

	defer with(lock(&ec.mu))
	ec.stack.Push(err)
}

// Len reports on the total number of non-nil errors collected. The
// count tracks a cached size of the *ers.Stack, giving Len() stable
// performance characteristics.
func (ec *Collector) Len() int { defer with(lock(&ec.mu)); return ec.stack.Len() }

// Ok returns true when no errors have been collected, and false
// otherwise.
func (ec *Collector) Ok() bool { return ec.Len() == 0 }

// Resolve returns nil when no errors have been collected, the lone
// error when only one has, and otherwise an *ers.Stack holding a copy
// of every collected error, in the order they were pushed.
func (ec *Collector) Resolve() error {
	defer with(lock(&ec.mu))
	return ers.Join(ec.stack.Unwind()...)
}
