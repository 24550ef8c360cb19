package scpi

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDecode indicates protocol text did not match the expected format.
	ErrDecode = errors.New("decode failed")

	// ErrTrailing indicates a full-message decode left unconsumed input.
	// It matches ErrDecode under errors.Is.
	ErrTrailing = fmt.Errorf("%w: trailing input", ErrDecode)

	// ErrInvalidTag indicates a struct tag has an invalid format or refers
	// to a field that cannot be marshaled.
	ErrInvalidTag = errors.New("invalid tag")
)

// DecodeError describes a single decoding failure: what the decoder was
// looking for and the input it was looking at. It wraps ErrDecode (or
// ErrTrailing for leftover-input failures) for errors.Is checks.
type DecodeError struct {
	Err      error  // Underlying sentinel error (ErrDecode, ErrTrailing)
	Expected string // What the decoder expected at this point
	Input    string // Remaining input at the failure point
	Cause    error  // Original error from the native parser, if any
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("expected %s at %q: %v", e.Expected, e.Input, e.Cause)
	}
	return fmt.Sprintf("expected %s at %q", e.Expected, e.Input)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError for input that did not match.
func newDecodeError(expected, input string) *DecodeError {
	return &DecodeError{Err: ErrDecode, Expected: expected, Input: input}
}

// newParseError creates a DecodeError for a recognized span that the native
// parser nonetheless rejected.
func newParseError(expected, input string, cause error) *DecodeError {
	return &DecodeError{Err: ErrDecode, Expected: expected, Input: input, Cause: cause}
}

// newTrailingError creates a DecodeError for leftover input after a decode
// the caller believed to be complete.
func newTrailingError(input string) *DecodeError {
	return &DecodeError{Err: ErrTrailing, Expected: "end of input", Input: input}
}
