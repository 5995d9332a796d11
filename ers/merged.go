package ers

import (
	"errors"
	"strings"
)

// Stack represents an aggregated error, as produced by Join and the
// erc.Collector. The implementation provides support for
// errors.Unwrap, errors.Is, and errors.As, and provides an Unwind()
// method which returns a slice of the constituent errors.
//
// The zero value is an empty stack and is ready for use; Stack is not
// safe for concurrent use (see erc.Collector.)
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are dropped; when only one non-nil error
// remains, Join returns it unmodified, and when none remain Join
// returns nil.
func Join(errs ...error) error {
	s := &Stack{}
	for _, err := range errs {
		s.Push(err)
	}
	return s.Resolve()
}

// Len returns the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the stack. Nil errors are ignored, and
// errors that wrap more than one error (including other stacks) are
// flattened.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		for _, err := range werr.Unwind() {
			e.Push(err)
		}
	case interface{ Unwrap() []error }:
		for _, err := range werr.Unwrap() {
			e.Push(err)
		}
	default:
		e.next = &Stack{err: e.err, next: e.next, count: e.count}
		e.err = err
		e.count++
	}
}

// Resolve returns nil for an empty stack, the only error for a stack
// of one, and otherwise the stack itself.
func (e *Stack) Resolve() error {
	switch e.Len() {
	case 0:
		return nil
	case 1:
		return e.err
	default:
		return e
	}
}

// Error produces the aggregated error strings, in the order they
// were pushed.
func (e *Stack) Error() string {
	if e.Len() == 0 {
		return "<nil>"
	}

	errs := e.Unwind()
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}

	return strings.Join(out, ": ")
}

// Is calls errors.Is on the underlying error to provide compatibility
// with errors.Is, which takes advantage of this interface.
func (e *Stack) Is(err error) bool { return errors.Is(e.err, err) }

// As calls errors.As on the underlying error to provide compatibility
// with errors.As, which takes advantage of this interface.
func (e *Stack) As(target any) bool { return errors.As(e.err, target) }

// Unwrap returns the next error in the stack, and is compatible
// with errors.Unwrap.
func (e *Stack) Unwrap() error {
	if e.next == nil || e.next.err == nil {
		return nil
	}
	return e.next
}

// Unwind returns the constituent errors in the order they were
// pushed.
func (e *Stack) Unwind() []error {
	out := make([]error, e.Len())
	idx := len(out) - 1
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		out[idx] = iter.err
		idx--
	}

	return out
}
