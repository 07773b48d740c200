// Package mcoded7 implements the Mcoded7 codec that packs arbitrary 8-bit
// data into a 7-bit-clean byte stream and back, as used by MIDI Capability
// Inquiry SysEx payloads.
//
// The codec works on fixed blocks: 7 raw bytes become 8 encoded bytes. The
// first encoded byte (the guard byte) collects the stripped high bits of the
// seven raw bytes; the remaining seven carry their low 7 bits. Every byte
// the encoder emits has bit 7 clear.
//
// The codec carries no length information. A stream whose length is not a
// multiple of 7 is zero-padded on finalize, and the decoder cannot tell
// real trailing zeros from padding; the layer above must carry the payload
// length out of band.
package mcoded7

import (
	"errors"
	"fmt"
)

// Block sizes for the fixed Mcoded7 transform unit.
const (
	RawBlockSize     = 7 // bytes per unencoded block
	EncodedBlockSize = 8 // bytes per 7-bit-clean block (guard byte + body)
)

// ErrBlockSize is returned by EncodeBlock and DecodeBlock when the supplied
// block is not exactly RawBlockSize or EncodedBlockSize bytes long.
var ErrBlockSize = errors.New("mcoded7: wrong block size")

// encode7 packs one raw block. The guard byte's bit 6-i carries the high
// bit of raw byte i; body byte i+1 carries its low 7 bits.
func encode7(raw *[RawBlockSize]byte) (enc [EncodedBlockSize]byte) {
	for i, b := range raw {
		enc[0] |= (b >> 7) << (6 - i)
		enc[i+1] = b & 0x7F
	}
	return enc
}

// decode8 unpacks one encoded block, the exact inverse of encode7. Reserved
// high bits in the input are discarded, not treated as a fault.
func decode8(enc *[EncodedBlockSize]byte) (raw [RawBlockSize]byte) {
	for i := 0; i < RawBlockSize; i++ {
		raw[i] = ((enc[0]>>(6-i))&0x01)<<7 | enc[i+1]&0x7F
	}
	return raw
}

// EncodeBlock packs exactly RawBlockSize raw bytes into one encoded block.
// It returns ErrBlockSize for any other input length.
func EncodeBlock(raw []byte) ([EncodedBlockSize]byte, error) {
	if len(raw) != RawBlockSize {
		return [EncodedBlockSize]byte{}, fmt.Errorf("%w: got %d raw bytes, want %d", ErrBlockSize, len(raw), RawBlockSize)
	}
	var block [RawBlockSize]byte
	copy(block[:], raw)
	return encode7(&block), nil
}

// DecodeBlock unpacks exactly EncodedBlockSize encoded bytes into the
// original raw block. It returns ErrBlockSize for any other input length.
// Nonzero reserved high bits are ignored.
func DecodeBlock(enc []byte) ([RawBlockSize]byte, error) {
	if len(enc) != EncodedBlockSize {
		return [RawBlockSize]byte{}, fmt.Errorf("%w: got %d encoded bytes, want %d", ErrBlockSize, len(enc), EncodedBlockSize)
	}
	var block [EncodedBlockSize]byte
	copy(block[:], enc)
	return decode8(&block), nil
}

// EncodedLen returns the number of encoded bytes a finalized stream of n
// raw bytes produces: one full encoded block per started raw block.
func EncodedLen(n int) int {
	return (n + RawBlockSize - 1) / RawBlockSize * EncodedBlockSize
}

// DecodedLen returns the number of raw bytes a finalized decode of n
// encoded bytes drains, including padding artifacts from a partial tail.
func DecodedLen(n int) int {
	return (n + EncodedBlockSize - 1) / EncodedBlockSize * RawBlockSize
}
