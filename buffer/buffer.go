// Package buffer provides the immutable byte container the rest of
// the byteberry primitives are built on. A Buffer never changes after
// construction, and slicing shares the backing storage instead of
// copying, so buffers of any size can be passed around and sub-sliced
// freely from any number of goroutines.
package buffer

import (
	"bytes"

	"github.com/blockberries/byteberry"
)

// Buffer is an immutable byte sequence with shared backing storage.
//
// The zero value is an empty buffer, ready to use. Buffers are value
// types: copy and compare them with Equal, never through pointers.
type Buffer struct {
	data []byte
}

// New creates a Buffer from data, copying it so later modification of
// the caller's slice cannot reach the buffer. Use for untrusted input
// (network, files).
func New(data []byte) Buffer {
	copied := make([]byte, len(data))
	copy(copied, data)
	return Buffer{data: copied}
}

// FromOwned creates a Buffer that adopts data without copying.
//
// The caller must not retain or modify data afterwards. Use only for
// freshly allocated slices that would otherwise be copied for nothing
// (e.g., the output of a decoder or hasher).
func FromOwned(data []byte) Buffer {
	return Buffer{data: data}
}

// FromHex decodes lower- or upper-case hex text into a Buffer.
func FromHex(s string) (Buffer, error) {
	raw, err := byteberry.DecodeHex(s)
	if err != nil {
		return Buffer{}, err
	}
	return FromOwned(raw), nil
}

// Slice returns the sub-buffer [start, end), sharing the same backing
// storage as b. It returns a LengthMismatchError when the range does
// not fit the buffer: for an end past the buffer the error carries
// the requested end against the buffer length; for a reversed or
// negative range it carries the start against the end.
func (b Buffer) Slice(start, end int) (Buffer, error) {
	if start < 0 || start > end {
		return Buffer{}, byteberry.NewLengthMismatchError(start, end)
	}
	if end > len(b.data) {
		return Buffer{}, byteberry.NewLengthMismatchError(end, len(b.data))
	}
	return Buffer{data: b.data[start:end]}, nil
}

// Bytes returns the backing storage of b. Callers must treat the
// returned slice as read-only; it is shared with every other Buffer
// sliced from the same storage.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Copy returns a detached copy of the buffer's contents that the
// caller owns and may modify.
func (b Buffer) Copy() []byte {
	copied := make([]byte, len(b.data))
	copy(copied, b.data)
	return copied
}

// Len returns the number of bytes in the buffer.
func (b Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no bytes.
func (b Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Equal compares two buffers byte-wise.
func (b Buffer) Equal(other Buffer) bool {
	return bytes.Equal(b.data, other.data)
}

// Hex returns the lower-case hex encoding of the buffer, in stored
// order.
func (b Buffer) Hex() string {
	return byteberry.EncodeHex(b.data)
}

// String implements fmt.Stringer.
func (b Buffer) String() string {
	return b.Hex()
}
