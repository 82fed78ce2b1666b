// Package hash defines the fixed-width digest types used as
// content-addressed identifiers across the chain stack, and the three
// hash constructions that produce them: single SHA-256, double
// SHA-256 (transaction and block identifiers), and RIPEMD-160 of
// SHA-256 (address derivation).
//
// Digests are plain byte arrays in natural (computation) order. The
// display-order reversal applied to transaction ids and block hashes
// when they are rendered as text lives in the codec package, never
// here.
package hash

import (
	"crypto/sha256"

	"github.com/blockberries/byteberry"
	"github.com/blockberries/byteberry/buffer"

	"golang.org/x/crypto/ripemd160"
)

// Digest32Size is the size of a 256-bit digest in bytes.
const Digest32Size = 32

// Digest20Size is the size of a 160-bit digest in bytes.
const Digest20Size = 20

// Digest32 is a 256-bit digest in natural order. Whether it is a
// single or double SHA-256 is a property of how it was produced, not
// of the type; callers track provenance.
type Digest32 [Digest32Size]byte

// Digest20 is a 160-bit digest in natural order, produced by Sum160.
type Digest20 [Digest20Size]byte

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) Digest32 {
	return Digest32(sha256.Sum256(data))
}

// DoubleSum256 returns the double SHA-256 digest of data, the
// construction behind transaction ids and block hashes.
func DoubleSum256(data []byte) Digest32 {
	first := sha256.Sum256(data)
	return Digest32(sha256.Sum256(first[:]))
}

// Sum160 returns the RIPEMD-160 digest of the SHA-256 of data, the
// construction behind script and public-key hashes.
func Sum160(data []byte) Digest20 {
	first := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(first[:])
	var d Digest20
	copy(d[:], r.Sum(nil))
	return d
}

// Sum256Buffer hashes the contents of buf without copying them out.
func Sum256Buffer(buf buffer.Buffer) Digest32 {
	return Sum256(buf.Bytes())
}

// DoubleSum256Buffer hashes the contents of buf without copying them out.
func DoubleSum256Buffer(buf buffer.Buffer) Digest32 {
	return DoubleSum256(buf.Bytes())
}

// Sum160Buffer hashes the contents of buf without copying them out.
func Sum160Buffer(buf buffer.Buffer) Digest20 {
	return Sum160(buf.Bytes())
}

// NewDigest32 creates a Digest32 from bytes, returning a
// LengthMismatchError if data is not exactly 32 bytes.
// Use for untrusted input (network, files).
func NewDigest32(data []byte) (Digest32, error) {
	if len(data) != Digest32Size {
		return Digest32{}, byteberry.NewLengthMismatchError(Digest32Size, len(data))
	}
	var d Digest32
	copy(d[:], data)
	return d, nil
}

// MustDigest32 creates a Digest32, panicking if data is not exactly
// 32 bytes. Use only for trusted internal data.
func MustDigest32(data []byte) Digest32 {
	d, err := NewDigest32(data)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDigest20 creates a Digest20 from bytes, returning a
// LengthMismatchError if data is not exactly 20 bytes.
// Use for untrusted input (network, files).
func NewDigest20(data []byte) (Digest20, error) {
	if len(data) != Digest20Size {
		return Digest20{}, byteberry.NewLengthMismatchError(Digest20Size, len(data))
	}
	var d Digest20
	copy(d[:], data)
	return d, nil
}

// MustDigest20 creates a Digest20, panicking if data is not exactly
// 20 bytes. Use only for trusted internal data.
func MustDigest20(data []byte) Digest20 {
	d, err := NewDigest20(data)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDigest32 decodes natural-order hex text into a Digest32.
func ParseDigest32(s string) (Digest32, error) {
	raw, err := byteberry.DecodeHex(s)
	if err != nil {
		return Digest32{}, err
	}
	return NewDigest32(raw)
}

// ParseDigest20 decodes natural-order hex text into a Digest20.
func ParseDigest20(s string) (Digest20, error) {
	raw, err := byteberry.DecodeHex(s)
	if err != nil {
		return Digest20{}, err
	}
	return NewDigest20(raw)
}

// Hex returns the digest as lower-case hex in natural order.
func (d Digest32) Hex() string {
	return byteberry.EncodeHex(d[:])
}

// String implements fmt.Stringer.
func (d Digest32) String() string {
	return d.Hex()
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest32) Bytes() []byte {
	copied := make([]byte, Digest32Size)
	copy(copied, d[:])
	return copied
}

// IsZero returns true if the digest is all zeros.
func (d Digest32) IsZero() bool {
	return d == Digest32{}
}

// Reversed returns the digest with its byte order inverted. Applying
// it twice yields the original digest.
func (d Digest32) Reversed() Digest32 {
	var r Digest32
	for i := range d {
		r[i] = d[Digest32Size-1-i]
	}
	return r
}

// Hex returns the digest as lower-case hex in natural order.
func (d Digest20) Hex() string {
	return byteberry.EncodeHex(d[:])
}

// String implements fmt.Stringer.
func (d Digest20) String() string {
	return d.Hex()
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest20) Bytes() []byte {
	copied := make([]byte, Digest20Size)
	copy(copied, d[:])
	return copied
}

// IsZero returns true if the digest is all zeros.
func (d Digest20) IsZero() bool {
	return d == Digest20{}
}

// Reversed returns the digest with its byte order inverted. Applying
// it twice yields the original digest.
func (d Digest20) Reversed() Digest20 {
	var r Digest20
	for i := range d {
		r[i] = d[Digest20Size-1-i]
	}
	return r
}
