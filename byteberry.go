// Package byteberry provides the byte and hash primitives shared by
// the blockberries chain stack: the canonical immutable byte buffer,
// the fixed-width digest types used as content-addressed identifiers
// (transaction ids, block hashes, script hashes), and the hex codec
// that is the sole external text representation of byte sequences.
//
// The root package holds the hex codec and the closed set of decode
// errors. The [buffer], [hash] and [codec] subpackages build on it:
//
//   - buffer: immutable byte sequences with O(1) sub-slicing.
//   - hash: SHA-256, double SHA-256 and RIPEMD-160(SHA-256) digests.
//   - codec: interchange wrappers, including the display-order byte
//     reversal applied to transaction ids and block hashes.
//
// Every type in this module is an immutable value: no operation
// blocks, performs I/O, or mutates shared state, so values may be
// hashed, encoded, decoded and sliced concurrently without any
// synchronization.
package byteberry
