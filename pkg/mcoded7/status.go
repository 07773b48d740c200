package mcoded7

// Status is the flow-control result of every Encode, Decode and Finalize
// call. None of the values is a failure: callers branch on the status to
// decide whether to supply more input, grow or replace the output sink, or
// stop driving the coder.
type Status int

const (
	// AllInputConsumed means the bound input source is exhausted and no
	// full block remains pending. Supply more input, or finalize.
	AllInputConsumed Status = iota

	// NeedsMoreOutput means the bound output sink filled up before the
	// pending block was fully drained. Supply more output capacity and
	// repeat the same call; it resumes where it stopped.
	NeedsMoreOutput

	// AlreadyFinalized means the coder reached its terminal state on an
	// earlier Finalize; the call performed no I/O.
	AlreadyFinalized

	// Finished means Finalize completed the terminal transition. It is
	// returned exactly once per coder.
	Finished
)

// String returns the status name for logs and test output.
func (s Status) String() string {
	switch s {
	case AllInputConsumed:
		return "AllInputConsumed"
	case NeedsMoreOutput:
		return "NeedsMoreOutput"
	case AlreadyFinalized:
		return "AlreadyFinalized"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}
