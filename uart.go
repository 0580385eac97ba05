package dbgprint

// ROMUARTSink writes through the boot-ROM uart_tx_one_char routine, one byte
// per call. The routine's status is ignored.
type ROMUARTSink struct {
	txOneChar ROMRoutine
	lock      MutualExclusion
}

// NewROMUART creates a sink calling txOneChar for every byte.
// A nil lock means NoLock.
func NewROMUART(txOneChar ROMRoutine, lock MutualExclusion) *ROMUARTSink {
	if lock == nil {
		lock = NoLock{}
	}
	return &ROMUARTSink{txOneChar: txOneChar, lock: lock}
}

// WriteBytes calls the ROM routine once per byte of p.
func (s *ROMUARTSink) WriteBytes(p []byte) {
	n := with(s.lock, func() int {
		for _, b := range p {
			s.txOneChar(b)
		}
		return len(p)
	})
	dbgWrite(len(p), n)
}

// RegisterUARTSink drives UART0 directly through its FIFO and interrupt
// registers. It is used on the ESP32-S2, where the ROM routine drops bytes.
//
// After each chunk the sink spins until TX_DONE is raised. That wait has no
// bound: the UART always drains its FIFO eventually.
type RegisterUARTSink struct {
	fifo      Register
	intRaw    Register
	intClr    Register
	doneMask  uint32
	lock      MutualExclusion
	burstSize int
}

// NewRegisterUART creates a sink on the given UART registers. doneMask is
// the TX_DONE bit; burstSize falls back to DefaultBurstSize when not
// positive. A nil lock means NoLock.
func NewRegisterUART(fifo, intRaw, intClr Register, doneMask uint32, lock MutualExclusion, burstSize int) *RegisterUARTSink {
	if doneMask == 0 {
		doneMask = uartTxDone
	}
	if burstSize <= 0 {
		burstSize = DefaultBurstSize
	}
	if lock == nil {
		lock = NoLock{}
	}
	return &RegisterUARTSink{
		fifo:      fifo,
		intRaw:    intRaw,
		intClr:    intClr,
		doneMask:  doneMask,
		lock:      lock,
		burstSize: burstSize,
	}
}

// WriteBytes writes p chunk by chunk, waiting for and clearing TX_DONE
// after each chunk.
func (s *RegisterUARTSink) WriteBytes(p []byte) {
	n := with(s.lock, func() int { return s.write(p) })
	dbgWrite(len(p), n)
}

func (s *RegisterUARTSink) write(p []byte) int {
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

		for s.intRaw.Get()&s.doneMask == 0 {
		}
		s.intClr.Set(s.doneMask)
	}
	return written
}
