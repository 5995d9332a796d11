// Package opt holds the functional option type used to configure the
// parallel sorters.
package opt

import "github.com/tychoish/order/ers"

// Provider is a function type for building functional arguments. The
// type T should always be mutable (e.g. a pointer).
type Provider[T any] func(T) error

// Join takes zero or more providers and produces a single combined
// provider. With zero or nil arguments, the operation becomes a noop.
func Join[T any](op ...Provider[T]) Provider[T] {
	var noop Provider[T] = func(T) error { return nil }
	if len(op) == 0 {
		return noop
	}
	return noop.Join(op...)
}

// Apply applies the provider to the configuration, and if the type T
// implements a Validate() method, calls that. All errors are
// aggregated.
func (op Provider[T]) Apply(in T) (err error) {
	defer func() { err = ers.Join(err, ers.ParsePanic(recover())) }()

	err = op(in)

	switch validator := any(in).(type) {
	case interface{ Validate() error }:
		return ers.Join(validator.Validate(), err)
	default:
		return err
	}
}

// Build processes a configuration object, returning a modified
// version (or a zero value, in the case of an error).
func (op Provider[T]) Build(conf T) (out T, err error) {
	if err = op.Apply(conf); err != nil {
		return out, err
	}
	return conf, nil
}

// Join aggregates a collection of providers into a single provider.
// The combined operation is panic safe and omits all nil providers.
func (op Provider[T]) Join(opps ...Provider[T]) Provider[T] {
	return func(conf T) (err error) {
		defer func() { err = ers.Join(err, ers.ParsePanic(recover())) }()

		for _, ops := range append([]Provider[T]{op}, opps...) {
			if ops == nil {
				continue
			}
			err = ers.Join(ops(conf), err)
		}

		return err
	}
}
