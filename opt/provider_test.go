package opt

import (
	"errors"
	"testing"

	"github.com/tychoish/order/assert"
	"github.com/tychoish/order/assert/check"
	"github.com/tychoish/order/ers"
)

type testConfig struct {
	Value     int
	validated bool
}

func (t *testConfig) Validate() error {
	t.validated = true
	if t.Value < 0 {
		return errors.New("value must be non-negative")
	}
	return nil
}

func TestProvider(t *testing.T) {
	t.Run("Apply", func(t *testing.T) {
		t.Run("WithoutValidate", func(t *testing.T) {
			type simpleConfig struct{ Value int }

			conf := &simpleConfig{}
			err := Provider[*simpleConfig](func(c *simpleConfig) error { c.Value = 42; return nil }).Apply(conf)
			check.NotError(t, err)
			check.Equal(t, conf.Value, 42)
		})
		t.Run("WithValidate", func(t *testing.T) {
			conf := &testConfig{}
			err := Provider[*testConfig](func(c *testConfig) error { c.Value = 10; return nil }).Apply(conf)
			check.NotError(t, err)
			check.Equal(t, conf.Value, 10)
			check.True(t, conf.validated)
		})
		t.Run("ValidateReturnsError", func(t *testing.T) {
			conf := &testConfig{}
			err := Provider[*testConfig](func(c *testConfig) error { c.Value = -5; return nil }).Apply(conf)
			check.Error(t, err)
			check.Substring(t, err.Error(), "value must be non-negative")
		})
		t.Run("ProviderReturnsError", func(t *testing.T) {
			expected := errors.New("provider error")
			err := Provider[*testConfig](func(*testConfig) error { return expected }).Apply(&testConfig{})
			check.ErrorIs(t, err, expected)
		})
		t.Run("Panic", func(t *testing.T) {
			err := Provider[*testConfig](func(*testConfig) error { panic("boom") }).Apply(&testConfig{})
			check.ErrorIs(t, err, ers.ErrRecoveredPanic)
		})
	})
	t.Run("Join", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			conf := &testConfig{Value: 3}
			assert.NotError(t, Join[*testConfig]().Apply(conf))
			check.Equal(t, conf.Value, 3)
		})
		t.Run("Order", func(t *testing.T) {
			conf := &testConfig{}
			err := Join(
				func(c *testConfig) error { c.Value = 1; return nil },
				nil,
				func(c *testConfig) error { c.Value *= 10; return nil },
			).Apply(conf)
			assert.NotError(t, err)
			check.Equal(t, conf.Value, 10)
		})
		t.Run("Aggregates", func(t *testing.T) {
			one, two := errors.New("one"), errors.New("two")
			err := Join(
				func(*testConfig) error { return one },
				func(*testConfig) error { return two },
			).Apply(&testConfig{})
			check.ErrorIs(t, err, one)
			check.ErrorIs(t, err, two)
		})
	})
	t.Run("Build", func(t *testing.T) {
		conf, err := Provider[*testConfig](func(c *testConfig) error { c.Value = 7; return nil }).Build(&testConfig{})
		assert.NotError(t, err)
		check.Equal(t, conf.Value, 7)

		conf, err = Provider[*testConfig](func(c *testConfig) error { c.Value = -1; return nil }).Build(&testConfig{})
		check.Error(t, err)
		check.True(t, conf == nil)
	})
}
