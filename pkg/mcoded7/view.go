package mcoded7

// Source is a position-tracked, bounded read view over a byte slice. A
// coder pulls bytes from it one at a time and reports exhaustion through
// its status instead of blocking. The underlying slice is never modified.
type Source struct {
	buf []byte
	pos int
}

// NewSource returns a Source positioned at the start of buf.
func NewSource(buf []byte) *Source {
	return &Source{buf: buf}
}

// Remaining reports how many unread bytes are left in the view.
func (s *Source) Remaining() int {
	return len(s.buf) - s.pos
}

// Consumed reports how many bytes the coder has pulled so far.
func (s *Source) Consumed() int {
	return s.pos
}

// next pulls one byte; ok is false once the view is exhausted.
func (s *Source) next() (b byte, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	b = s.buf[s.pos]
	s.pos++
	return b, true
}

// Sink is the mutable counterpart of Source: a position-tracked, bounded
// write view. A coder pushes bytes into it until it fills, then reports
// NeedsMoreOutput and resumes into whatever sink is bound on the next call.
type Sink struct {
	buf []byte
	pos int
}

// NewSink returns a Sink positioned at the start of buf.
func NewSink(buf []byte) *Sink {
	return &Sink{buf: buf}
}

// Remaining reports how much capacity is left in the view.
func (s *Sink) Remaining() int {
	return len(s.buf) - s.pos
}

// Written reports how many bytes the coder has pushed so far.
func (s *Sink) Written() int {
	return s.pos
}

// Bytes returns the filled prefix of the underlying buffer.
func (s *Sink) Bytes() []byte {
	return s.buf[:s.pos]
}

// put pushes one byte; ok is false once the view is full.
func (s *Sink) put(b byte) (ok bool) {
	if s.pos >= len(s.buf) {
		return false
	}
	s.buf[s.pos] = b
	s.pos++
	return true
}
