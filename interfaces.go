package dbgprint

// Sink accepts bytes for best-effort emission on a hardware transport.
// WriteBytes never fails visibly: bytes are emitted in order, but some or
// all of them may be silently dropped.
type Sink interface {
	WriteBytes(p []byte)
}

// Register represents a 32-bit memory-mapped hardware register.
// Implementations must perform volatile accesses.
type Register interface {
	// Get reads the register.
	Get() uint32
	// Set writes v to the register.
	Set(v uint32)
}

// ProbeChannel represents a host-debugger communication buffer.
type ProbeChannel interface {
	// Write accepts as many bytes of p as fit without blocking and
	// returns how many were taken.
	Write(p []byte) int
}

// ROMRoutine is a boot-ROM function taking one byte and returning a status
// code. The status is always ignored.
type ROMRoutine func(b byte) int32

// MutualExclusion runs f so that it cannot be interleaved with another
// call to With on the same value.
type MutualExclusion interface {
	With(f func())
}
