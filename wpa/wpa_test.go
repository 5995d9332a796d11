package wpa

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/tychoish/order/assert"
	"github.com/tychoish/order/assert/check"
	"github.com/tychoish/order/ers"
	"github.com/tychoish/order/intish"
)

func TestConf(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		conf, err := Resolve()
		assert.NotError(t, err)
		check.Equal(t, conf.Depth, intish.CeilLog2(runtime.GOMAXPROCS(0)))
	})
	t.Run("Depth", func(t *testing.T) {
		conf, err := Resolve(WithDepth(5))
		assert.NotError(t, err)
		check.Equal(t, conf.Depth, 5)
	})
	t.Run("Parallelism", func(t *testing.T) {
		conf, err := Resolve(WithParallelism(6))
		assert.NotError(t, err)
		check.Equal(t, conf.Depth, 3)

		_, err = Resolve(WithParallelism(0))
		check.ErrorIs(t, err, ers.ErrMalformedConfiguration)
	})
	t.Run("Sequential", func(t *testing.T) {
		conf, err := Resolve(WithDepth(4), WithSequential())
		assert.NotError(t, err)
		check.Equal(t, conf.Depth, 0)
	})
	t.Run("Override", func(t *testing.T) {
		conf, err := Resolve(WithConf(Conf{Depth: 2}))
		assert.NotError(t, err)
		check.Equal(t, conf.Depth, 2)
	})
	t.Run("Negative", func(t *testing.T) {
		_, err := Resolve(WithDepth(-1))
		assert.ErrorIs(t, err, ers.ErrMalformedConfiguration)
		_, err = NewBudget(WithDepth(-1))
		assert.ErrorIs(t, err, ers.ErrMalformedConfiguration)
	})
}

func TestBudget(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var b Budget
		check.True(t, b.Exhausted())
		check.False(t, b.Failed())
		check.Equal(t, b.Depth(), 0)
	})
	t.Run("Decrements", func(t *testing.T) {
		b, err := NewBudget(WithDepth(2))
		assert.NotError(t, err)
		var depths [2]int
		assert.NotError(t, b.Fork(
			func(b Budget) error { depths[0] = b.Depth(); return nil },
			func(b Budget) error { depths[1] = b.Depth(); return nil },
		))
		check.Equal(t, depths[0], 1)
		check.Equal(t, depths[1], 1)
	})
	t.Run("Concurrent", func(t *testing.T) {
		b, err := NewBudget(WithDepth(1))
		assert.NotError(t, err)
		sig := make(chan struct{})
		// each side waits for the other, which only completes when
		// both run at once.
		assert.NotError(t, b.Fork(
			func(Budget) error { sig <- struct{}{}; <-sig; return nil },
			func(Budget) error { <-sig; sig <- struct{}{}; return nil },
		))
	})
	t.Run("Leaves", func(t *testing.T) {
		b, err := NewBudget(WithDepth(3))
		assert.NotError(t, err)
		var leaves atomic.Int64
		var split func(Budget) error
		split = func(b Budget) error {
			if b.Exhausted() {
				leaves.Add(1)
				return nil
			}
			return b.Fork(split, split)
		}
		assert.NotError(t, split(b))
		check.Equal(t, leaves.Load(), 8)
	})
	t.Run("InlineStopsOnError", func(t *testing.T) {
		b, err := NewBudget(WithSequential())
		assert.NotError(t, err)
		expected := errors.New("left")
		ran := false
		err = b.Fork(
			func(Budget) error { return expected },
			func(Budget) error { ran = true; return nil },
		)
		check.ErrorIs(t, err, expected)
		check.False(t, ran)
		check.True(t, b.Failed())
	})
	t.Run("JoinsErrors", func(t *testing.T) {
		b, err := NewBudget(WithDepth(1))
		assert.NotError(t, err)
		one, two := errors.New("one"), errors.New("two")
		err = b.Fork(
			func(Budget) error { return one },
			func(Budget) error { return two },
		)
		check.ErrorIs(t, err, one)
		check.ErrorIs(t, err, two)
		check.True(t, b.Exhausted())
	})
	t.Run("Panic", func(t *testing.T) {
		b, err := NewBudget(WithDepth(1))
		assert.NotError(t, err)
		err = b.Fork(
			func(Budget) error { panic("comparator") },
			func(Budget) error { return nil },
		)
		check.ErrorIs(t, err, ers.ErrRecoveredPanic)
		check.Substring(t, err.Error(), "comparator")
	})
	t.Run("NoForkAfterFailure", func(t *testing.T) {
		b, err := NewBudget(WithDepth(4))
		assert.NotError(t, err)
		expected := errors.New("fail")
		var forked atomic.Bool
		err = b.Fork(
			func(Budget) error { return expected },
			func(Budget) error { return nil },
		)
		check.ErrorIs(t, err, expected)
		check.True(t, b.Exhausted())
		assert.NotError(t, b.Fork(
			func(c Budget) error { forked.Store(c.Depth() < b.Depth()); return nil },
			func(Budget) error { return nil },
		))
		check.False(t, forked.Load())
	})
}
