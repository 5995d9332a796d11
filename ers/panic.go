package ers

import "fmt"

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r != nil {
		switch err := r.(type) {
		case error:
			return Join(err, ErrRecoveredPanic)
		case string:
			return Join(Error(err), ErrRecoveredPanic)
		case []error:
			st := &Stack{}
			for _, e := range err {
				st.Push(e)
			}
			st.Push(ErrRecoveredPanic)
			return st.Resolve()
		default:
			return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
		}
	}
	return nil
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ErrInvariantViolation
	case 1:
		switch ei := args[0].(type) {
		case error:
			return Join(ei, ErrInvariantViolation)
		case string:
			return Join(Error(ei), ErrInvariantViolation)
		default:
			return Join(fmt.Errorf("%v", args[0]), ErrInvariantViolation)
		}
	default:
		return Join(Error(fmt.Sprint(args...)), ErrInvariantViolation)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverApply runs a function that returns an error, and
// aggregates that error with the error produced by a panic, if any.
func WithRecoverApply(fn func() error) (err error) {
	defer func() { err = Join(err, ParsePanic(recover())) }()
	return fn()
}
