package mcoded7

// Encoder is the streaming Mcoded7 encoder. It pulls raw bytes from a
// bound Source, packs each full 7-byte block into an 8-byte 7-bit-clean
// block, and drains the result into a bound Sink. Partial blocks and
// partially drained blocks survive across calls, so input and output may
// arrive in fragments of any size.
//
// An Encoder has a single logical owner; it is not safe for concurrent use
// without external locking. Once Finalize returns Finished the instance is
// terminal and every further call returns AlreadyFinalized.
type Encoder struct {
	src *Source
	dst *Sink

	// rawCount mod RawBlockSize is the number of bytes staged in the
	// pending raw block; encCount mod EncodedBlockSize is the number of
	// bytes already drained from the pending encoded block.
	rawCount int64
	encCount int64

	pendingRaw [RawBlockSize]byte
	pendingEnc [EncodedBlockSize]byte
	draining   bool
	finalized  bool
}

// NewEncoder returns an Encoder bound to the given input and output views.
// Either view may be rebound later without losing staged state.
func NewEncoder(src *Source, dst *Sink) *Encoder {
	return &Encoder{src: src, dst: dst}
}

// RebindInput replaces the input view. Staged partial blocks and counters
// are kept.
func (e *Encoder) RebindInput(src *Source) {
	e.src = src
}

// RebindOutput replaces the output view. Staged partial blocks and
// counters are kept.
func (e *Encoder) RebindOutput(dst *Sink) {
	e.dst = dst
}

// RawCount reports the total number of raw bytes staged so far.
func (e *Encoder) RawCount() int64 {
	return e.rawCount
}

// EncodedCount reports the total number of encoded bytes delivered so far.
func (e *Encoder) EncodedCount() int64 {
	return e.encCount
}

// drainPending pushes the undelivered tail of the pending encoded block
// into the sink. It reports false when the sink fills first.
func (e *Encoder) drainPending() bool {
	for e.draining {
		if !e.dst.put(e.pendingEnc[e.encCount%EncodedBlockSize]) {
			return false
		}
		e.encCount++
		if e.encCount%EncodedBlockSize == 0 {
			e.draining = false
		}
	}
	return true
}

// Encode pushes as much data as the bound views allow. It returns
// AllInputConsumed once the source is exhausted with no full block pending,
// NeedsMoreOutput when the sink fills mid-block, and AlreadyFinalized after
// the terminal transition. It never blocks and never retries internally.
func (e *Encoder) Encode() Status {
	if e.finalized {
		return AlreadyFinalized
	}
	if !e.drainPending() {
		return NeedsMoreOutput
	}
	for {
		n := int(e.rawCount % RawBlockSize)
		for n < RawBlockSize {
			b, ok := e.src.next()
			if !ok {
				return AllInputConsumed
			}
			e.pendingRaw[n] = b
			e.rawCount++
			n++
		}
		e.pendingEnc = encode7(&e.pendingRaw)
		e.draining = true
		if !e.drainPending() {
			return NeedsMoreOutput
		}
	}
}

// Finalize flushes the stream and performs the one-way transition to the
// terminal state. It first drains all currently available input, then
// zero-pads and emits a trailing partial raw block if one is staged; a
// block-aligned stream emits no extra block. Finalize is resumable: on
// NeedsMoreOutput the caller supplies more output capacity and calls it
// again. Only after the final block is fully drained does it return
// Finished; every later call returns AlreadyFinalized.
func (e *Encoder) Finalize() Status {
	if e.finalized {
		return AlreadyFinalized
	}
	if st := e.Encode(); st == NeedsMoreOutput {
		return NeedsMoreOutput
	}
	if n := int(e.rawCount % RawBlockSize); n != 0 {
		for i := n; i < RawBlockSize; i++ {
			e.pendingRaw[i] = 0
		}
		e.rawCount += int64(RawBlockSize - n)
		e.pendingEnc = encode7(&e.pendingRaw)
		e.draining = true
	}
	if !e.drainPending() {
		return NeedsMoreOutput
	}
	e.finalized = true
	return Finished
}
