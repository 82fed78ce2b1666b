package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/blockberries/byteberry"
	"github.com/blockberries/byteberry/buffer"
	"github.com/blockberries/byteberry/codec"
	"github.com/blockberries/byteberry/hash"
	bytetest "github.com/blockberries/byteberry/testing"

	"github.com/fxamacker/cbor/v2"
)

// Natural and display hex of the double SHA-256 of "abc". Display
// order is the byte-reversed natural order.
const (
	abcTxIDNatural = "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358"
	abcTxIDDisplay = "58636c3ec08c12d55aedda056d602d5bcca72d8df6a69b519b72d32dc2428b4f"

	emptyHashDisplay = "56944c5d3f98413ef45cf54545538103cc9f298e0575820ad3591376e2e0f65d"
)

func TestTxIDDisplayOrder(t *testing.T) {
	id := codec.NewTxIDFromData([]byte("abc"))

	if id.Digest() != bytetest.Digest32(t, abcTxIDNatural) {
		t.Errorf("internal order wrong: %s", id.Digest())
	}
	if id.String() != abcTxIDDisplay {
		t.Errorf("String() = %q, want display order %q", id.String(), abcTxIDDisplay)
	}
}

func TestBlockHashDisplayOrder(t *testing.T) {
	h := codec.NewBlockHashFromData(nil)
	if h.String() != emptyHashDisplay {
		t.Errorf("String() = %q, want %q", h.String(), emptyHashDisplay)
	}
}

func TestParseTxID(t *testing.T) {
	id, err := codec.ParseTxID(abcTxIDDisplay)
	if err != nil {
		t.Fatalf("ParseTxID failed: %v", err)
	}
	// Parsing display text must recover the natural-order digest.
	if id.Digest() != bytetest.Digest32(t, abcTxIDNatural) {
		t.Errorf("parsed digest in wrong order: %s", id.Digest())
	}
	if id.String() != abcTxIDDisplay {
		t.Error("parse/render round-trip mismatch")
	}
}

func TestParseTxIDErrors(t *testing.T) {
	_, err := codec.ParseTxID("0123456789abcdef0123456789abcd")
	e, ok := byteberry.IsLengthMismatch(err)
	if !ok {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
	if e.Expected != 32 || e.Actual != 15 {
		t.Errorf("expected (32, 15), got (%d, %d)", e.Expected, e.Actual)
	}

	if _, err := codec.ParseTxID("abc"); err == nil {
		t.Error("expected error for odd length")
	}
	_, err = codec.ParseTxID("zz11")
	if _, ok := byteberry.IsInvalidHex(err); !ok {
		t.Errorf("expected InvalidHexError, got %v", err)
	}
}

func TestTxIDJSON(t *testing.T) {
	id := codec.NewTxIDFromData([]byte("abc"))

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"`+abcTxIDDisplay+`"` {
		t.Errorf("JSON = %s, want display-order hex", data)
	}

	var back codec.TxID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != id {
		t.Error("JSON round-trip must recover the internal byte order")
	}
}

func TestTxIDJSONErrors(t *testing.T) {
	var id codec.TxID
	if err := json.Unmarshal([]byte(`"abc"`), &id); err == nil {
		t.Error("expected error for odd-length hex")
	}
	if err := json.Unmarshal([]byte(`42`), &id); err == nil {
		t.Error("expected error for non-string JSON value")
	}
	err := json.Unmarshal([]byte(`"00ff"`), &id)
	if _, ok := byteberry.IsLengthMismatch(err); !ok {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
}

func TestBlockHashJSON(t *testing.T) {
	h := codec.NewBlockHashFromData([]byte("header"))

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back codec.BlockHash
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != h {
		t.Error("JSON round-trip mismatch")
	}
}

func TestScriptHashNaturalOrder(t *testing.T) {
	// hash160("abc"); script hashes are rendered unreversed.
	const want = "bb1be98c142444d7a56aa3981c3942a978e4dc33"

	h := codec.NewScriptHashFromData([]byte("abc"))
	if h.String() != want {
		t.Errorf("String() = %q, want natural order %q", h.String(), want)
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"`+want+`"` {
		t.Errorf("JSON = %s, want %q", data, want)
	}

	var back codec.ScriptHash
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != h {
		t.Error("JSON round-trip mismatch")
	}
}

func TestParseScriptHashErrors(t *testing.T) {
	_, err := codec.ParseScriptHash("00ff")
	e, ok := byteberry.IsLengthMismatch(err)
	if !ok {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
	if e.Expected != 20 || e.Actual != 2 {
		t.Errorf("expected (20, 2), got (%d, %d)", e.Expected, e.Actual)
	}
}

func TestHexBytesJSON(t *testing.T) {
	hb := codec.NewHexBytes(buffer.New([]byte{0xde, 0xad, 0xbe, 0xef}))

	data, err := json.Marshal(hb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"deadbeef"` {
		t.Errorf("JSON = %s, want \"deadbeef\"", data)
	}

	var back codec.HexBytes
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Buffer().Equal(hb.Buffer()) {
		t.Error("JSON round-trip mismatch")
	}
}

func TestHexBytesEmpty(t *testing.T) {
	var hb codec.HexBytes
	data, err := json.Marshal(hb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("JSON = %s, want empty string", data)
	}

	var back codec.HexBytes
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back) != 0 {
		t.Errorf("expected empty, got %x", back)
	}
}

func TestHexBytesErrors(t *testing.T) {
	var hb codec.HexBytes
	err := json.Unmarshal([]byte(`"xyz1"`), &hb)
	if _, ok := byteberry.IsInvalidHex(err); !ok {
		t.Errorf("expected InvalidHexError, got %v", err)
	}
}

// CBOR carries identifiers as byte strings in natural (storage)
// order; only text interchange reverses.
func TestTxIDCBOR(t *testing.T) {
	id := codec.NewTxIDFromData([]byte("abc"))

	data, err := cbor.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// The payload must be the natural-order digest, not the display form.
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal to bytes failed: %v", err)
	}
	want := bytetest.Digest32(t, abcTxIDNatural)
	if d, err := hash.NewDigest32(raw); err != nil || d != want {
		t.Errorf("CBOR payload not in natural order: %x", raw)
	}

	var back codec.TxID
	if err := cbor.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != id {
		t.Error("CBOR round-trip mismatch")
	}
}

func TestTxIDCBORWrongLength(t *testing.T) {
	data, err := cbor.Marshal([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var id codec.TxID
	err = cbor.Unmarshal(data, &id)
	if _, ok := byteberry.IsLengthMismatch(err); !ok {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
}

func TestScriptHashCBOR(t *testing.T) {
	h := codec.NewScriptHashFromData([]byte("script"))

	data, err := cbor.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back codec.ScriptHash
	if err := cbor.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != h {
		t.Error("CBOR round-trip mismatch")
	}
}

func TestHexBytesCBOR(t *testing.T) {
	hb := codec.HexBytes([]byte("raw payload"))

	data, err := cbor.Marshal(hb)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back codec.HexBytes
	if err := cbor.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if string(back) != string(hb) {
		t.Error("CBOR round-trip mismatch")
	}
}
