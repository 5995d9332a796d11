package ers

// ErrInvalidRange is returned (wrapped with the offending bounds) when
// a start/count pair or a pair of nodes does not address a valid
// range of a sequence. It is always detected before any mutation.
const ErrInvalidRange Error = Error("invalid range")

// ErrNilComparator reports that an ordering function was required
// but was not supplied, or that the element type has no intrinsic
// order that could stand in for it.
const ErrNilComparator Error = Error("comparator is not defined")

// ErrRangeTooLarge is returned by the distribution sorts when the
// span of the keys (max-min+1) overflows or exceeds the algorithm's
// allocation bound. The sequence is not modified and the caller
// should choose a comparison sort instead.
const ErrRangeTooLarge Error = Error("range of keys is too large")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the Invariant helper.
const ErrInvariantViolation Error = Error("invariant violation")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, _ := r.(error)

	if err == nil {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
