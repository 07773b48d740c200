package mcoded7

// Decoder is the streaming Mcoded7 decoder, the structural mirror of
// Encoder with the block roles swapped: it pulls 8-byte encoded blocks
// from a bound Source and drains the recovered 7-byte raw blocks into a
// bound Sink, surviving arbitrary fragmentation of both sides.
//
// Like Encoder it has a single logical owner, never blocks, and becomes
// terminal exactly once.
type Decoder struct {
	src *Source
	dst *Sink

	// encCount mod EncodedBlockSize is the number of bytes staged in the
	// pending encoded block; rawCount mod RawBlockSize is the number of
	// bytes already drained from the pending decoded block.
	encCount int64
	rawCount int64

	pendingEnc [EncodedBlockSize]byte
	pendingRaw [RawBlockSize]byte
	draining   bool
	finalized  bool
}

// NewDecoder returns a Decoder bound to the given input and output views.
// Either view may be rebound later without losing staged state.
func NewDecoder(src *Source, dst *Sink) *Decoder {
	return &Decoder{src: src, dst: dst}
}

// RebindInput replaces the input view. Staged partial blocks and counters
// are kept.
func (d *Decoder) RebindInput(src *Source) {
	d.src = src
}

// RebindOutput replaces the output view. Staged partial blocks and
// counters are kept.
func (d *Decoder) RebindOutput(dst *Sink) {
	d.dst = dst
}

// EncodedCount reports the total number of encoded bytes staged so far.
func (d *Decoder) EncodedCount() int64 {
	return d.encCount
}

// RawCount reports the total number of raw bytes delivered so far.
func (d *Decoder) RawCount() int64 {
	return d.rawCount
}

// drainPending pushes the undelivered tail of the pending raw block into
// the sink. It reports false when the sink fills first.
func (d *Decoder) drainPending() bool {
	for d.draining {
		if !d.dst.put(d.pendingRaw[d.rawCount%RawBlockSize]) {
			return false
		}
		d.rawCount++
		if d.rawCount%RawBlockSize == 0 {
			d.draining = false
		}
	}
	return true
}

// Decode pushes as much data as the bound views allow. It returns
// AllInputConsumed once the source is exhausted with no full block pending,
// NeedsMoreOutput when the sink fills mid-block, and AlreadyFinalized after
// the terminal transition. It never blocks and never retries internally.
func (d *Decoder) Decode() Status {
	if d.finalized {
		return AlreadyFinalized
	}
	if !d.drainPending() {
		return NeedsMoreOutput
	}
	for {
		n := int(d.encCount % EncodedBlockSize)
		for n < EncodedBlockSize {
			b, ok := d.src.next()
			if !ok {
				return AllInputConsumed
			}
			d.pendingEnc[n] = b
			d.encCount++
			n++
		}
		d.pendingRaw = decode8(&d.pendingEnc)
		d.draining = true
		if !d.drainPending() {
			return NeedsMoreOutput
		}
	}
}

// Finalize flushes the stream and performs the one-way transition to the
// terminal state, mirroring Encoder.Finalize. A trailing partial encoded
// block (1-7 staged bytes, possible only when the encoded stream was
// truncated mid-block) is zero-padded and decoded, and all 7 derived raw
// bytes are drained unconditionally: the codec carries no length, so the
// decoder cannot tell which of them stand for padding, and draining the
// whole block keeps the output length deterministic. Finalize is resumable
// on NeedsMoreOutput; after it returns Finished every later call returns
// AlreadyFinalized.
func (d *Decoder) Finalize() Status {
	if d.finalized {
		return AlreadyFinalized
	}
	if st := d.Decode(); st == NeedsMoreOutput {
		return NeedsMoreOutput
	}
	if n := int(d.encCount % EncodedBlockSize); n != 0 {
		for i := n; i < EncodedBlockSize; i++ {
			d.pendingEnc[i] = 0
		}
		d.encCount += int64(EncodedBlockSize - n)
		d.pendingRaw = decode8(&d.pendingEnc)
		d.draining = true
	}
	if !d.drainPending() {
		return NeedsMoreOutput
	}
	d.finalized = true
	return Finished
}
