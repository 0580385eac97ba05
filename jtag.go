package dbgprint

// SerialJTAGSink writes to the USB-Serial-JTAG peripheral found on the
// ESP32-C3, C6, H2 and S3.
//
// The peripheral exposes a 64 byte IN endpoint. Bytes are pushed into the
// FIFO register, then WR_DONE is written to the conf register to hand the
// packet to the USB side. When no host is attached the FIFO never drains,
// so every wait is bounded and a stalled chunk aborts the whole write.
type SerialJTAGSink struct {
	fifo       Register
	conf       Register
	lock       MutualExclusion
	burstSize  int
	waitCycles int
}

// NewSerialJTAG creates a Serial-JTAG sink on the given registers.
// burstSize and waitCycles fall back to DefaultBurstSize and
// DefaultWaitCycles when not positive. A nil lock means NoLock.
func NewSerialJTAG(fifo, conf Register, lock MutualExclusion, burstSize, waitCycles int) *SerialJTAGSink {
	if burstSize <= 0 {
		burstSize = DefaultBurstSize
	}
	if waitCycles <= 0 {
		waitCycles = DefaultWaitCycles
	}
	if lock == nil {
		lock = NoLock{}
	}
	return &SerialJTAGSink{
		fifo:       fifo,
		conf:       conf,
		lock:       lock,
		burstSize:  burstSize,
		waitCycles: waitCycles,
	}
}

// WriteBytes pushes p in BurstSize chunks. Nothing is written when no host
// is attached, and the rest of p is dropped when a chunk is not
// acknowledged within WaitCycles polls.
func (s *SerialJTAGSink) WriteBytes(p []byte) {
	n := with(s.lock, func() int { return s.write(p) })
	dbgWrite(len(p), n)
}

// write returns the number of bytes pushed into the FIFO.
func (s *SerialJTAGSink) write(p []byte) int {
	if !s.ready() {
		// FIFO full: only happens with USB disconnected
		dbgDisconnected()
		return 0
	}

	written := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > s.burstSize {
			chunk = chunk[:s.burstSize]
		}
		p = p[len(chunk):]

		for _, b := range chunk {
			s.fifo.Set(uint32(b))
		}
		written += len(chunk)
		s.conf.Set(jtagWriteDone)

		if !s.waitReady() {
			dbgChunkTimeout()
			return written
		}
	}
	return written
}

func (s *SerialJTAGSink) ready() bool {
	return s.conf.Get()&jtagReadyMask != 0
}

func (s *SerialJTAGSink) waitReady() bool {
	for i := 0; i < s.waitCycles; i++ {
		if s.ready() {
			return true
		}
	}
	return false
}
