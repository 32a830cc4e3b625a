package pkg

import (
	"fmt"
	"reflect"
	"strings"
)

// Error represents a chain of errors, innermost first.
type Error []error

// ErrConfigFile is returned when the configuration file cannot be decoded.
//
// This error should be wrapped with the underlying decoding error
// to preserve the error chain.
var ErrConfigFile = MakeErrorf("invalid configuration file")

// ErrConfigValue is returned when a configuration entry has a value that no
// flag can accept, such as a nested list.
var ErrConfigValue = MakeErrorf("unsupported configuration value")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns the messages of the chain joined by ": ", innermost first.
func (e Error) Error() string {
	part := make([]string, len(e))

	for i, err := range e {
		part[i] = err.Error()
	}

	return strings.Join(part, ": ")
}

// Wrap appends one or more errors to a copy of the receiver.
func (e Error) Wrap(err ...error) Error {
	return append(e[:len(e):len(e)], err...)
}

// Wrapf appends a formatted error to a copy of the receiver.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is reports whether target is an Error whose chain begins the receiver's,
// so a sentinel matches every Error wrapped from it.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !sameError(t[i], e[i]) {
			return false
		}
	}

	return true
}

func sameError(a, b error) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}

	return a == b
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		// An Error is only its members.
		if _, ok := err.(Error); ok {
			return chain
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
