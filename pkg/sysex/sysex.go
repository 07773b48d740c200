// Package sysex provides the transport-side conveniences that sit above
// the Mcoded7 codec: System Exclusive framing, 7-bit-clean validation,
// whole-message encode/decode helpers, and Standard MIDI File embedding.
//
// The codec itself carries no message boundaries or length; a SysEx frame
// supplies the boundary and the caller keeps the payload length out of
// band if exact recovery across padding matters.
package sysex

import (
	"errors"
	"fmt"

	"github.com/ZILtoid1991/midi2/pkg/mcoded7"
	"github.com/ZILtoid1991/midi2/pkg/ump"
)

// chunkSize is the sink granularity the whole-message helpers use while
// draining the streaming codec.
const chunkSize = 512

// Wrap frames a 7-bit-clean payload in a SysEx envelope.
func Wrap(payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+2)
	frame = append(frame, ump.SysExStart)
	frame = append(frame, payload...)
	frame = append(frame, ump.SysExEnd)
	return frame
}

// Unwrap strips the SysEx envelope and returns the payload. The frame is
// validated first.
func Unwrap(frame []byte) ([]byte, error) {
	if err := Validate(frame); err != nil {
		return nil, err
	}
	return frame[1 : len(frame)-1], nil
}

// Validate checks the SysEx frame structure: start and end bytes present
// and every payload byte 7-bit clean.
func Validate(frame []byte) error {
	if len(frame) < 2 {
		return errors.New("sysex frame too short")
	}
	if frame[0] != ump.SysExStart {
		return fmt.Errorf("invalid SysEx: expected start byte 0x%02X, got 0x%02X", ump.SysExStart, frame[0])
	}
	if frame[len(frame)-1] != ump.SysExEnd {
		return fmt.Errorf("invalid SysEx: expected end byte 0x%02X, got 0x%02X", ump.SysExEnd, frame[len(frame)-1])
	}
	for i := 1; i < len(frame)-1; i++ {
		if frame[i] > 127 {
			return fmt.Errorf("invalid SysEx: byte at position %d is > 127 (0x%02X)", i, frame[i])
		}
	}
	return nil
}

// EncodeMessage runs a whole raw message through the streaming encoder,
// growing the output on backpressure, and returns the Mcoded7 bytes.
func EncodeMessage(raw []byte) ([]byte, error) {
	enc := mcoded7.NewEncoder(mcoded7.NewSource(raw), mcoded7.NewSink(nil))

	var out []byte
	for {
		sink := mcoded7.NewSink(make([]byte, chunkSize))
		enc.RebindOutput(sink)
		st := enc.Finalize()
		out = append(out, sink.Bytes()...)
		switch st {
		case mcoded7.Finished:
			return out, nil
		case mcoded7.NeedsMoreOutput:
			// grow and resume
		default:
			return nil, fmt.Errorf("sysex: unexpected encoder status %s", st)
		}
	}
}

// DecodeMessage runs a whole Mcoded7 message through the streaming
// decoder and returns the raw bytes, including any zero padding artifacts
// from the trailing block.
func DecodeMessage(encoded []byte) ([]byte, error) {
	dec := mcoded7.NewDecoder(mcoded7.NewSource(encoded), mcoded7.NewSink(nil))

	var out []byte
	for {
		sink := mcoded7.NewSink(make([]byte, chunkSize))
		dec.RebindOutput(sink)
		st := dec.Finalize()
		out = append(out, sink.Bytes()...)
		switch st {
		case mcoded7.Finished:
			return out, nil
		case mcoded7.NeedsMoreOutput:
			// grow and resume
		default:
			return nil, fmt.Errorf("sysex: unexpected decoder status %s", st)
		}
	}
}

// EncodeFrame encodes a raw message and wraps the result in a SysEx
// envelope in one step.
func EncodeFrame(raw []byte) ([]byte, error) {
	payload, err := EncodeMessage(raw)
	if err != nil {
		return nil, err
	}
	return Wrap(payload), nil
}

// DecodeFrame unwraps a SysEx envelope and decodes its Mcoded7 payload.
func DecodeFrame(frame []byte) ([]byte, error) {
	payload, err := Unwrap(frame)
	if err != nil {
		return nil, err
	}
	return DecodeMessage(payload)
}
