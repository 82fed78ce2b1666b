package codec

import (
	"encoding/json"

	"github.com/blockberries/byteberry"
	"github.com/blockberries/byteberry/buffer"

	"github.com/fxamacker/cbor/v2"
)

// HexBytes is a free-form byte field rendered as natural-order hex in
// text interchange: raw scripts, signatures, payloads. It carries no
// length constraint and is never byte-reversed.
type HexBytes []byte

// NewHexBytes copies the contents of buf into a HexBytes field.
func NewHexBytes(buf buffer.Buffer) HexBytes {
	return HexBytes(buf.Copy())
}

// ParseHexBytes decodes hex text of any even length.
func ParseHexBytes(s string) (HexBytes, error) {
	raw, err := byteberry.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return HexBytes(raw), nil
}

// Buffer returns the field's contents as an immutable Buffer.
func (hb HexBytes) Buffer() buffer.Buffer {
	return buffer.New(hb)
}

// String returns the bytes as lower-case hex.
func (hb HexBytes) String() string {
	return byteberry.EncodeHex(hb)
}

// MarshalText implements encoding.TextMarshaler.
func (hb HexBytes) MarshalText() ([]byte, error) {
	return []byte(hb.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (hb *HexBytes) UnmarshalText(text []byte) error {
	parsed, err := ParseHexBytes(string(text))
	if err != nil {
		return err
	}
	*hb = parsed
	return nil
}

// MarshalJSON encodes the bytes as a hex string.
func (hb HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hb.String())
}

// UnmarshalJSON decodes a hex string.
func (hb *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return hb.UnmarshalText([]byte(s))
}

// MarshalCBOR encodes the bytes as a byte string.
func (hb HexBytes) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]byte(hb))
}

// UnmarshalCBOR decodes a byte string.
func (hb *HexBytes) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	*hb = HexBytes(raw)
	return nil
}
