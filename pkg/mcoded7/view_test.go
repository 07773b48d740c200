package mcoded7

import "testing"

func TestSourceCursor(t *testing.T) {
	src := NewSource([]byte{0x01, 0x02})

	if src.Remaining() != 2 || src.Consumed() != 0 {
		t.Fatalf("fresh source: remaining %d consumed %d, want 2 and 0", src.Remaining(), src.Consumed())
	}

	b, ok := src.next()
	if !ok || b != 0x01 {
		t.Fatalf("next() = 0x%02X, %v, want 0x01, true", b, ok)
	}
	if src.Remaining() != 1 || src.Consumed() != 1 {
		t.Errorf("after one read: remaining %d consumed %d, want 1 and 1", src.Remaining(), src.Consumed())
	}

	src.next()
	if _, ok := src.next(); ok {
		t.Error("next() on exhausted source reported ok")
	}
	if src.Remaining() != 0 {
		t.Errorf("exhausted source Remaining() = %d, want 0", src.Remaining())
	}
}

func TestSinkCursor(t *testing.T) {
	sink := NewSink(make([]byte, 2))

	if !sink.put(0xAA) || !sink.put(0xBB) {
		t.Fatal("put() failed with capacity left")
	}
	if sink.put(0xCC) {
		t.Error("put() on full sink reported ok")
	}
	if sink.Written() != 2 || sink.Remaining() != 0 {
		t.Errorf("full sink: written %d remaining %d, want 2 and 0", sink.Written(), sink.Remaining())
	}

	got := sink.Bytes()
	if len(got) != 2 || got[0] != 0xAA || got[1] != 0xBB {
		t.Errorf("Bytes() = % 02X, want AA BB", got)
	}
}

func TestEmptyViews(t *testing.T) {
	// A coder bound to empty views starves immediately on both sides.
	enc := NewEncoder(NewSource(nil), NewSink(nil))
	if st := enc.Encode(); st != AllInputConsumed {
		t.Errorf("Encode() on empty views = %v, want AllInputConsumed", st)
	}
	if st := enc.Finalize(); st != Finished {
		t.Errorf("Finalize() on empty stream = %v, want Finished", st)
	}
}
