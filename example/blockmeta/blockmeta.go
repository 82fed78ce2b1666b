// Package blockmeta demonstrates how a block indexer builds its
// records on top of the byteberry primitives.
//
// Records carry cramberry tags for deterministic binary storage (all
// identifiers stay in natural byte order on the wire) and rely on the
// codec wrapper types for JSON, so transaction ids and block hashes
// come out in the conventional display (reversed) order while raw
// payloads and script hashes do not.
package blockmeta

import (
	"github.com/blockberries/byteberry/buffer"
	"github.com/blockberries/byteberry/codec"
)

// BlockMeta is the indexer-side description of a block.
type BlockMeta struct {
	Height   uint64          `cramberry:"1" json:"height"`
	Hash     codec.BlockHash `cramberry:"2" json:"hash"`
	PrevHash codec.BlockHash `cramberry:"3" json:"prevHash"`
	TxIDs    []codec.TxID    `cramberry:"4" json:"txids"`
}

// OutputRecord is one spendable output of an indexed transaction.
type OutputRecord struct {
	Value      uint64           `cramberry:"1" json:"value"`
	ScriptHash codec.ScriptHash `cramberry:"2" json:"scriptHash"`
}

// TxRecord is an indexed transaction.
type TxRecord struct {
	TxID    codec.TxID     `cramberry:"1" json:"txid"`
	Size    uint32         `cramberry:"2" json:"size"`
	Raw     codec.HexBytes `cramberry:"3" json:"raw"`
	Outputs []OutputRecord `cramberry:"4" json:"outputs"`
}

// BuildBlockMeta indexes a raw block: the block hash is the double
// SHA-256 of the header, each txid the double SHA-256 of the raw
// transaction.
func BuildBlockMeta(height uint64, header buffer.Buffer, prevHash codec.BlockHash, rawTxs []buffer.Buffer) BlockMeta {
	meta := BlockMeta{
		Height:   height,
		Hash:     codec.NewBlockHashFromData(header.Bytes()),
		PrevHash: prevHash,
		TxIDs:    make([]codec.TxID, 0, len(rawTxs)),
	}
	for _, raw := range rawTxs {
		meta.TxIDs = append(meta.TxIDs, codec.NewTxIDFromData(raw.Bytes()))
	}
	return meta
}

// BuildTxRecord indexes a raw transaction. Each entry of pubKeys is
// hashed into the script hash of the corresponding output.
func BuildTxRecord(raw buffer.Buffer, values []uint64, pubKeys []buffer.Buffer) TxRecord {
	rec := TxRecord{
		TxID: codec.NewTxIDFromData(raw.Bytes()),
		Size: uint32(raw.Len()),
		Raw:  codec.NewHexBytes(raw),
	}
	for i, pk := range pubKeys {
		var value uint64
		if i < len(values) {
			value = values[i]
		}
		rec.Outputs = append(rec.Outputs, OutputRecord{
			Value:      value,
			ScriptHash: codec.NewScriptHashFromData(pk.Bytes()),
		})
	}
	return rec
}
