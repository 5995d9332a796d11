// Package ers provides constant sentinel errors, a small error
// aggregation type, and tools for converting panics into errors.
//
// ers has no dependencies outside of the standard library; every
// other package in this module reports failures through the error
// values declared here.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface for ConstError.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}
