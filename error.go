package argscan

// Sentinel errors for every fatal condition the package can report.
// The reporter wraps these with flag and value context before terminating,
// so a substituted exit function lets tests classify failures with
// [errors.Is].

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrMissingArgument is reported when a required flag is absent from the
// argument vector.
var ErrMissingArgument = errors.New("missing command line argument")

// ErrMissingValue is reported when a flag with no viable default is absent
// (or, for integer flags, present without a value).
var ErrMissingValue = errors.New("must specify a value")

// ErrUnknownArgument is reported when a token matches no entry in the
// known-flag set.
var ErrUnknownArgument = errors.New("unrecognized command line argument")

// ErrInvalidInteger is reported when a value fails to parse as a base-10
// integer, including partial parses with trailing garbage.
var ErrInvalidInteger = errors.New("non-integer value")

// ErrInvalidFloat is reported when a value fails to parse as a
// floating-point number.
var ErrInvalidFloat = errors.New("non-float value")

// ErrOutOfRange is reported when a parsed numeric value falls outside the
// caller-specified bounds, or is NaN.
var ErrOutOfRange = errors.New("value out of range")

// ErrBooleanValue is reported when a non-empty value is supplied to a
// boolean flag.
var ErrBooleanValue = errors.New("non-empty value for boolean flag")

// ErrUnknownValue is reported when a value matches no entry in an enum
// flag's allowed values.
var ErrUnknownValue = errors.New("unrecognized enum value")

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

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
// An [Error] is a pure container: its elements are collected but the chain
// itself is not, so re-wrapping never duplicates messages.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	switch e := err.(type) {
	case Error:
		for _, wrapped := range e {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain

	case interface{ Unwrap() []error }:
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

	case interface{ Unwrap() error }:
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
