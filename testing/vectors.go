// Package bytetest provides test utilities for code built on the
// byteberry primitives: reference hash vectors, digest factories, and
// a concurrency stress helper.
package bytetest

import (
	"testing"

	"github.com/blockberries/byteberry/hash"
)

// Vector pairs an input with its expected digests, all hex in natural
// (computation) order.
type Vector struct {
	Name    string
	Input   []byte
	Sha256  string
	Sha256d string
	Hash160 string
}

// Vectors returns the reference vectors used to pin down the three
// hash constructions, including the empty input.
func Vectors() []Vector {
	return []Vector{
		{
			Name:    "empty",
			Input:   []byte{},
			Sha256:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Sha256d: "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
			Hash160: "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb",
		},
		{
			Name:    "abc",
			Input:   []byte("abc"),
			Sha256:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			Sha256d: "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
			Hash160: "bb1be98c142444d7a56aa3981c3942a978e4dc33",
		},
		{
			Name:    "hello",
			Input:   []byte("hello"),
			Sha256:  "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			Sha256d: "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
			Hash160: "b6a9c8c230722b7c748331a8b450f05566dc7d0f",
		},
		{
			Name:    "blockberry",
			Input:   []byte("blockberry"),
			Sha256:  "075415ba8d89d77e1383cd07d0b440190b548ad90ecff26b8e7d3848d03665d1",
			Sha256d: "6e9e4b4c6f99e6b038689da6778145590e744323b960cca3d252e4d53aead383",
			Hash160: "27a2fe3b96279e7376d81181c11bcb7977e9cd3a",
		},
	}
}

// Digest32 parses a natural-order hex digest, failing the test on
// malformed input.
func Digest32(t *testing.T, s string) hash.Digest32 {
	t.Helper()
	d, err := hash.ParseDigest32(s)
	if err != nil {
		t.Fatalf("bad Digest32 literal %q: %v", s, err)
	}
	return d
}

// Digest20 parses a natural-order hex digest, failing the test on
// malformed input.
func Digest20(t *testing.T, s string) hash.Digest20 {
	t.Helper()
	d, err := hash.ParseDigest20(s)
	if err != nil {
		t.Fatalf("bad Digest20 literal %q: %v", s, err)
	}
	return d
}

// SeqBytes returns n bytes counting up from zero, for deterministic
// table tests.
func SeqBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
