// Package codec maps byteberry values to and from external
// interchange representations.
//
// It is the single place where the display-order convention is
// applied: transaction ids and block hashes are rendered as hex text
// with their bytes reversed relative to internal storage, and parsed
// back the opposite way. Everything else in the module, including the
// hash package itself, operates exclusively in natural order. Script
// hashes and free-form byte fields are never reversed.
//
// The convention is carried in the type system: a field declared as
// [TxID] or [BlockHash] serializes in display order, a field declared
// as [ScriptHash] or [HexBytes] in natural order. Binary interchange
// (CBOR byte strings, cramberry-tagged structs embedding these types)
// always stays in natural order; only text reverses.
package codec

import (
	"encoding/json"

	"github.com/blockberries/byteberry/hash"

	"github.com/fxamacker/cbor/v2"
)

// TxID identifies a transaction: the double SHA-256 of its raw bytes,
// stored in natural order, rendered as text in display (reversed)
// order.
type TxID hash.Digest32

// BlockHash identifies a block: the double SHA-256 of its header,
// stored in natural order, rendered as text in display (reversed)
// order.
type BlockHash hash.Digest32

// NewTxIDFromData returns the transaction id for raw transaction
// bytes.
func NewTxIDFromData(raw []byte) TxID {
	return TxID(hash.DoubleSum256(raw))
}

// NewBlockHashFromData returns the block hash for raw header bytes.
func NewBlockHashFromData(header []byte) BlockHash {
	return BlockHash(hash.DoubleSum256(header))
}

// ParseTxID decodes display-order hex text into a TxID.
func ParseTxID(s string) (TxID, error) {
	d, err := parseDisplay32(s)
	if err != nil {
		return TxID{}, err
	}
	return TxID(d), nil
}

// ParseBlockHash decodes display-order hex text into a BlockHash.
func ParseBlockHash(s string) (BlockHash, error) {
	d, err := parseDisplay32(s)
	if err != nil {
		return BlockHash{}, err
	}
	return BlockHash(d), nil
}

// parseDisplay32 decodes hex text and reverses it back into natural
// order. Length is checked before reversing so the error reports byte
// counts, not character counts.
func parseDisplay32(s string) (hash.Digest32, error) {
	d, err := hash.ParseDigest32(s)
	if err != nil {
		return hash.Digest32{}, err
	}
	return d.Reversed(), nil
}

// Digest returns the natural-order digest behind the id.
func (id TxID) Digest() hash.Digest32 {
	return hash.Digest32(id)
}

// String returns the id as display-order hex.
func (id TxID) String() string {
	return hash.Digest32(id).Reversed().Hex()
}

// MarshalText implements encoding.TextMarshaler using display order.
func (id TxID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, decoding
// display-order hex.
func (id *TxID) UnmarshalText(text []byte) error {
	parsed, err := ParseTxID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the id as a display-order hex string.
func (id TxID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a display-order hex string.
func (id *TxID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalCBOR encodes the id as a natural-order byte string.
func (id TxID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id[:])
}

// UnmarshalCBOR decodes a natural-order byte string, enforcing the
// 32-byte length.
func (id *TxID) UnmarshalCBOR(data []byte) error {
	d, err := unmarshalDigest32CBOR(data)
	if err != nil {
		return err
	}
	*id = TxID(d)
	return nil
}

// Digest returns the natural-order digest behind the hash.
func (h BlockHash) Digest() hash.Digest32 {
	return hash.Digest32(h)
}

// String returns the hash as display-order hex.
func (h BlockHash) String() string {
	return hash.Digest32(h).Reversed().Hex()
}

// MarshalText implements encoding.TextMarshaler using display order.
func (h BlockHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, decoding
// display-order hex.
func (h *BlockHash) UnmarshalText(text []byte) error {
	parsed, err := ParseBlockHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalJSON encodes the hash as a display-order hex string.
func (h BlockHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a display-order hex string.
func (h *BlockHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return h.UnmarshalText([]byte(s))
}

// MarshalCBOR encodes the hash as a natural-order byte string.
func (h BlockHash) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(h[:])
}

// UnmarshalCBOR decodes a natural-order byte string, enforcing the
// 32-byte length.
func (h *BlockHash) UnmarshalCBOR(data []byte) error {
	d, err := unmarshalDigest32CBOR(data)
	if err != nil {
		return err
	}
	*h = BlockHash(d)
	return nil
}

func unmarshalDigest32CBOR(data []byte) (hash.Digest32, error) {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return hash.Digest32{}, err
	}
	return hash.NewDigest32(raw)
}

// ScriptHash is the RIPEMD-160-of-SHA-256 of a script or public key.
// Unlike transaction ids and block hashes it is rendered in natural
// order; script hashes are never byte-reversed.
type ScriptHash hash.Digest20

// NewScriptHashFromData returns the script hash for raw script or
// public-key bytes.
func NewScriptHashFromData(raw []byte) ScriptHash {
	return ScriptHash(hash.Sum160(raw))
}

// ParseScriptHash decodes natural-order hex text into a ScriptHash.
func ParseScriptHash(s string) (ScriptHash, error) {
	d, err := hash.ParseDigest20(s)
	if err != nil {
		return ScriptHash{}, err
	}
	return ScriptHash(d), nil
}

// Digest returns the digest behind the hash.
func (h ScriptHash) Digest() hash.Digest20 {
	return hash.Digest20(h)
}

// String returns the hash as natural-order hex.
func (h ScriptHash) String() string {
	return hash.Digest20(h).Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (h ScriptHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *ScriptHash) UnmarshalText(text []byte) error {
	parsed, err := ParseScriptHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalJSON encodes the hash as a natural-order hex string.
func (h ScriptHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a natural-order hex string.
func (h *ScriptHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return h.UnmarshalText([]byte(s))
}

// MarshalCBOR encodes the hash as a byte string.
func (h ScriptHash) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(h[:])
}

// UnmarshalCBOR decodes a byte string, enforcing the 20-byte length.
func (h *ScriptHash) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := hash.NewDigest20(raw)
	if err != nil {
		return err
	}
	*h = ScriptHash(d)
	return nil
}
