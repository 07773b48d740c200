package mcoded7

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []byte
	}{
		{
			"all low bytes",
			[]byte{0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47},
			[]byte{0x00, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47},
		},
		{
			"high bit on first byte",
			[]byte{0xC1, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			[]byte{0x40, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"all 0xFF",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			[]byte{0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F},
		},
		{
			"alternating high bits",
			[]byte{0x80, 0x01, 0x82, 0x03, 0x84, 0x05, 0x86},
			[]byte{0x55, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeBlock(tt.raw)
			if err != nil {
				t.Fatalf("EncodeBlock() error = %v", err)
			}
			if !bytes.Equal(enc[:], tt.want) {
				t.Errorf("EncodeBlock() = % 02X, want % 02X", enc[:], tt.want)
			}

			// The decode must be the exact structural inverse.
			raw, err := DecodeBlock(enc[:])
			if err != nil {
				t.Fatalf("DecodeBlock() error = %v", err)
			}
			if !bytes.Equal(raw[:], tt.raw) {
				t.Errorf("DecodeBlock(EncodeBlock()) = % 02X, want % 02X", raw[:], tt.raw)
			}
		})
	}
}

func TestDecodeBlockIgnoresReservedBits(t *testing.T) {
	clean := []byte{0x40, 0x41, 0x00, 0x12, 0x00, 0x00, 0x7F, 0x00}
	dirty := make([]byte, len(clean))
	copy(dirty, clean)
	dirty[0] |= 0x80 // guard byte reserved bit
	dirty[3] |= 0x80 // body byte high bit

	wantRaw, err := DecodeBlock(clean)
	if err != nil {
		t.Fatalf("DecodeBlock(clean) error = %v", err)
	}
	gotRaw, err := DecodeBlock(dirty)
	if err != nil {
		t.Fatalf("DecodeBlock(dirty) error = %v", err)
	}
	if gotRaw != wantRaw {
		t.Errorf("DecodeBlock with reserved bits set = % 02X, want % 02X", gotRaw[:], wantRaw[:])
	}
}

func TestBlockSizeErrors(t *testing.T) {
	tests := []struct {
		name string
		size int
		enc  bool
	}{
		{"empty raw block", 0, false},
		{"short raw block", 6, false},
		{"long raw block", 8, false},
		{"empty encoded block", 0, true},
		{"short encoded block", 7, true},
		{"long encoded block", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.enc {
				_, err = DecodeBlock(make([]byte, tt.size))
			} else {
				_, err = EncodeBlock(make([]byte, tt.size))
			}
			if !errors.Is(err, ErrBlockSize) {
				t.Errorf("error = %v, want ErrBlockSize", err)
			}
		})
	}
}

func TestLenHelpers(t *testing.T) {
	encTests := []struct{ raw, enc int }{
		{0, 0}, {1, 8}, {6, 8}, {7, 8}, {8, 16}, {14, 16}, {15, 24},
	}
	for _, tt := range encTests {
		if got := EncodedLen(tt.raw); got != tt.enc {
			t.Errorf("EncodedLen(%d) = %d, want %d", tt.raw, got, tt.enc)
		}
	}

	// DecodedLen is per started encoded block.
	decTests := []struct{ enc, dec int }{
		{0, 0}, {1, 7}, {8, 7}, {9, 14}, {16, 14},
	}
	for _, tt := range decTests {
		if got := DecodedLen(tt.enc); got != tt.dec {
			t.Errorf("DecodedLen(%d) = %d, want %d", tt.enc, got, tt.dec)
		}
	}
}
