// Package wpa (worker pool adapters) provides the fork/join budget
// that the parallel sorters use to fan out recursive work.
package wpa

import (
	"fmt"
	"runtime"

	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/intish"
	"github.com/tychoish/order/opt"
)

// Conf describes the runtime options of the parallel sorters. The
// zero value is valid and produces fully sequential execution.
type Conf struct {
	// Depth is the number of recursion levels at which both halves
	// of a split are run concurrently. Each level doubles the
	// number of concurrent units of work, so a depth of d allows
	// at most 2^d leaves to run at once. Zero disables forking.
	Depth int
}

// Validate ensures that the configuration is valid.
func (c *Conf) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("fork depth %d is negative: %w", c.Depth, ers.ErrMalformedConfiguration)
	}
	return nil
}

// DefaultDepth is the smallest depth whose leaf count covers the
// scheduler's current parallelism (runtime.GOMAXPROCS.) It is read
// on every call.
func DefaultDepth() int { return intish.CeilLog2(runtime.GOMAXPROCS(0)) }

// WithDepth sets the fork depth. Negative values are rejected when
// the configuration is validated.
func WithDepth(depth int) opt.Provider[*Conf] {
	return func(c *Conf) error { c.Depth = depth; return nil }
}

// WithParallelism sets the depth to cover n concurrent workers.
func WithParallelism(n int) opt.Provider[*Conf] {
	return func(c *Conf) error {
		if n < 1 {
			return fmt.Errorf("parallelism %d must be positive: %w", n, ers.ErrMalformedConfiguration)
		}
		c.Depth = intish.CeilLog2(n)
		return nil
	}
}

// WithSequential disables forking.
func WithSequential() opt.Provider[*Conf] { return WithDepth(0) }

// WithConf overrides the configuration with the provided value.
func WithConf(conf Conf) opt.Provider[*Conf] {
	return func(c *Conf) error { *c = conf; return nil }
}

// Resolve builds a configuration starting from the default depth and
// applying the options in order.
func Resolve(opts ...opt.Provider[*Conf]) (*Conf, error) {
	return opt.Join(opts...).Build(&Conf{Depth: DefaultDepth()})
}
