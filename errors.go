package byteberry

import (
	"errors"
	"fmt"
)

// InvalidHexError reports the first character of a hex string that is
// not a hex digit.
//
// Decoding stops at the offending character; no partial result is
// returned.
type InvalidHexError struct {
	Char byte
	Pos  int
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex character %q at position %d", e.Char, e.Pos)
}

// NewInvalidHexError creates a new InvalidHexError.
func NewInvalidHexError(char byte, pos int) *InvalidHexError {
	return &InvalidHexError{Char: char, Pos: pos}
}

// IsInvalidHex checks whether an error is an InvalidHexError and returns it.
func IsInvalidHex(err error) (*InvalidHexError, bool) {
	var e *InvalidHexError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// OddLengthError reports hex text whose length is not a multiple of
// two. Every byte is two hex digits, so an odd length means the input
// was truncated or malformed.
type OddLengthError struct {
	Length int
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("odd-length hex string: %d characters", e.Length)
}

// NewOddLengthError creates a new OddLengthError.
func NewOddLengthError(length int) *OddLengthError {
	return &OddLengthError{Length: length}
}

// IsOddLength checks whether an error is an OddLengthError and returns it.
func IsOddLength(err error) (*OddLengthError, bool) {
	var e *OddLengthError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// LengthMismatchError reports a byte count that does not match a
// fixed-width target, such as decoding 15 bytes into a 32-byte digest
// or slicing a buffer past its end.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// NewLengthMismatchError creates a new LengthMismatchError.
func NewLengthMismatchError(expected, actual int) *LengthMismatchError {
	return &LengthMismatchError{Expected: expected, Actual: actual}
}

// IsLengthMismatch checks whether an error is a LengthMismatchError
// and returns it.
func IsLengthMismatch(err error) (*LengthMismatchError, bool) {
	var e *LengthMismatchError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
