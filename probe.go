package dbgprint

// ProbeSink writes to a debug-probe channel such as RTT.
//
// A channel that accepts only part of a write gets exactly one more attempt
// with the remainder. Whatever is still left is dropped.
type ProbeSink struct {
	ch   ProbeChannel
	lock MutualExclusion
}

// NewProbe creates a sink on ch. A nil lock means NoLock.
func NewProbe(ch ProbeChannel, lock MutualExclusion) *ProbeSink {
	if lock == nil {
		lock = NoLock{}
	}
	return &ProbeSink{ch: ch, lock: lock}
}

// WriteBytes offers p to the channel, then offers what it refused once
// more.
func (s *ProbeSink) WriteBytes(p []byte) {
	n := with(s.lock, func() int {
		n := clamp(s.ch.Write(p), len(p))
		if n < len(p) {
			n += clamp(s.ch.Write(p[n:]), len(p)-n)
		}
		return n
	})
	if n < len(p) {
		dbgProbeShort(len(p) - n)
	}
	dbgWrite(len(p), n)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
