package mcoded7

import (
	"bytes"
	"testing"
)

// decodeFinal runs a full decode+finalize into an exactly sized sink.
func decodeFinal(t *testing.T, enc []byte) []byte {
	t.Helper()
	out := NewSink(make([]byte, DecodedLen(len(enc))))
	dec := NewDecoder(NewSource(enc), out)
	if st := dec.Finalize(); st != Finished {
		t.Fatalf("Finalize() = %v, want Finished", st)
	}
	return out.Bytes()
}

func TestRoundTripAligned(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"one block", 7},
		{"two blocks", 14},
		{"ten blocks", 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, tt.size)
			for i := range raw {
				raw[i] = byte(i*37 + 11) // mix of high and low bytes
			}

			got := decodeFinal(t, encodeFinal(t, raw))
			if !bytes.Equal(got, raw) {
				t.Errorf("round trip = % 02X, want % 02X", got, raw)
			}
		})
	}
}

func TestRoundTripPadded(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 6, 8, 13, 20}

	for _, size := range sizes {
		raw := make([]byte, size)
		for i := range raw {
			raw[i] = byte(0xF0 - i)
		}

		got := decodeFinal(t, encodeFinal(t, raw))

		wantLen := EncodedLen(size) / EncodedBlockSize * RawBlockSize
		if len(got) != wantLen {
			t.Fatalf("size %d: decoded %d bytes, want %d", size, len(got), wantLen)
		}
		if !bytes.Equal(got[:size], raw) {
			t.Errorf("size %d: prefix = % 02X, want % 02X", size, got[:size], raw)
		}
		// The encoder zero-pads, so the artifacts must be exactly zero.
		for i := size; i < len(got); i++ {
			if got[i] != 0 {
				t.Errorf("size %d: padding artifact at %d = 0x%02X, want 0x00", size, i, got[i])
			}
		}
	}
}

func TestDecoderTruncatedTail(t *testing.T) {
	// Only 3 bytes of an encoded block arrive. Finalize zero-pads the
	// staged block and drains all 7 derived bytes: guard 0x40 reinstates
	// bit 7 of the first body byte, the padded tail decodes to zeros.
	enc := []byte{0x40, 0x41, 0x42}
	want := []byte{0xC1, 0x42, 0x00, 0x00, 0x00, 0x00, 0x00}

	got := decodeFinal(t, enc)
	if !bytes.Equal(got, want) {
		t.Errorf("decoded = % 02X, want % 02X", got, want)
	}
}

func TestDecodeOutputStarvation(t *testing.T) {
	enc := []byte{0x00, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47}

	first := NewSink(make([]byte, 4))
	dec := NewDecoder(NewSource(enc), first)

	if st := dec.Decode(); st != NeedsMoreOutput {
		t.Fatalf("Decode() with 4-byte sink = %v, want NeedsMoreOutput", st)
	}
	if first.Written() != 4 {
		t.Fatalf("sink holds %d bytes, want 4", first.Written())
	}

	second := NewSink(make([]byte, 3))
	dec.RebindOutput(second)

	if st := dec.Decode(); st != AllInputConsumed {
		t.Fatalf("Decode() after rebind = %v, want AllInputConsumed", st)
	}

	got := append(append([]byte{}, first.Bytes()...), second.Bytes()...)
	want := []byte{0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47}
	if !bytes.Equal(got, want) {
		t.Errorf("combined output = % 02X, want % 02X", got, want)
	}
}

func TestDecoderTerminalIdempotence(t *testing.T) {
	enc := []byte{0x40, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	out := NewSink(make([]byte, DecodedLen(len(enc))))
	dec := NewDecoder(NewSource(enc), out)

	if st := dec.Finalize(); st != Finished {
		t.Fatalf("Finalize() = %v, want Finished", st)
	}

	written := out.Written()
	encCount := dec.EncodedCount()
	rawCount := dec.RawCount()

	dec.RebindInput(NewSource([]byte{0x00, 0x01}))

	if st := dec.Decode(); st != AlreadyFinalized {
		t.Errorf("Decode() after Finished = %v, want AlreadyFinalized", st)
	}
	if st := dec.Finalize(); st != AlreadyFinalized {
		t.Errorf("Finalize() after Finished = %v, want AlreadyFinalized", st)
	}
	if out.Written() != written {
		t.Errorf("sink grew after Finished: %d, want %d", out.Written(), written)
	}
	if dec.EncodedCount() != encCount || dec.RawCount() != rawCount {
		t.Errorf("counters advanced after Finished: enc %d raw %d, want enc %d raw %d",
			dec.EncodedCount(), dec.RawCount(), encCount, rawCount)
	}
}

func TestDecoderByteAtATimeSink(t *testing.T) {
	raw := []byte{0x9A, 0x00, 0xFF, 0x42, 0x81, 0x7E, 0x33, 0x10}
	enc := encodeFinal(t, raw)
	want := decodeFinal(t, enc)

	dec := NewDecoder(NewSource(enc), NewSink(nil))
	var got []byte
	for {
		cell := NewSink(make([]byte, 1))
		dec.RebindOutput(cell)
		st := dec.Finalize()
		got = append(got, cell.Bytes()...)
		if st == Finished {
			break
		}
		if st != NeedsMoreOutput {
			t.Fatalf("Finalize() = %v, want NeedsMoreOutput or Finished", st)
		}
	}

	if !bytes.Equal(got, want) {
		t.Errorf("byte-at-a-time output = % 02X, want % 02X", got, want)
	}
}

func TestDecoderFragmentedInput(t *testing.T) {
	raw := make([]byte, 23)
	for i := range raw {
		raw[i] = byte(i * 11)
	}
	enc := encodeFinal(t, raw)
	want := decodeFinal(t, enc)

	out := NewSink(make([]byte, DecodedLen(len(enc))))
	dec := NewDecoder(NewSource(nil), out)

	// Feed the encoded stream in ragged fragments.
	for _, cut := range [][2]int{{0, 3}, {3, 10}, {10, 11}, {11, len(enc)}} {
		dec.RebindInput(NewSource(enc[cut[0]:cut[1]]))
		if st := dec.Decode(); st != AllInputConsumed {
			t.Fatalf("Decode(fragment %v) = %v, want AllInputConsumed", cut, st)
		}
	}
	if st := dec.Finalize(); st != Finished {
		t.Fatalf("Finalize() = %v, want Finished", st)
	}

	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("fragmented decode = % 02X, want % 02X", out.Bytes(), want)
	}
}
