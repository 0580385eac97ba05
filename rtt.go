package dbgprint

import (
	"sync/atomic"
	"unsafe"
)

const (
	// DefaultRTTUpSize is the size of the default RTT up buffer.
	DefaultRTTUpSize = 1024
	// DefaultRTTDownSize is the size of the default RTT down buffer.
	DefaultRTTDownSize = 16
)

// RTT buffer operating modes (SEGGER_RTT_MODE_*)
const (
	rttModeNoBlockSkip = 0
	rttModeNoBlockTrim = 1
)

var rttID = [16]byte{'S', 'E', 'G', 'G', 'E', 'R', ' ', 'R', 'T', 'T'}

var rttTerminal = [...]byte{'T', 'e', 'r', 'm', 'i', 'n', 'a', 'l', 0}

// rttBuffer mirrors SEGGER_RTT_BUFFER_UP / SEGGER_RTT_BUFFER_DOWN.
type rttBuffer struct {
	name  unsafe.Pointer
	data  unsafe.Pointer
	size  uint32
	write uint32
	read  uint32
	flags uint32
}

// rttControlBlock mirrors SEGGER_RTT_CB with one up and one down channel.
// The debug probe locates it by scanning RAM for the id.
type rttControlBlock struct {
	id      [16]byte
	maxUp   int32
	maxDown int32
	up      rttBuffer
	down    rttBuffer
}

// RTT is a SEGGER Real-Time Transfer channel 0 living in target RAM.
// Writes never block: when the probe has not drained enough of the up
// buffer, the write is trimmed to the free space.
type RTT struct {
	cb   rttControlBlock
	up   []byte
	down []byte
}

// NewRTT allocates an RTT control block with the given buffer sizes.
// Sizes below 2 are raised to 2, the smallest usable ring.
func NewRTT(upSize, downSize int) *RTT {
	if upSize < 2 {
		upSize = 2
	}
	if downSize < 2 {
		downSize = 2
	}
	r := &RTT{
		up:   make([]byte, upSize),
		down: make([]byte, downSize),
	}
	r.cb.maxUp = 1
	r.cb.maxDown = 1
	r.cb.up = rttBuffer{
		name:  unsafe.Pointer(&rttTerminal[0]),
		data:  unsafe.Pointer(&r.up[0]),
		size:  uint32(upSize),
		flags: rttModeNoBlockTrim,
	}
	r.cb.down = rttBuffer{
		name:  unsafe.Pointer(&rttTerminal[0]),
		data:  unsafe.Pointer(&r.down[0]),
		size:  uint32(downSize),
		flags: rttModeNoBlockSkip,
	}
	r.cb.id = rttID
	return r
}

// Write copies as much of p as fits into the up buffer and returns the
// number of bytes taken.
func (r *RTT) Write(p []byte) int {
	size := r.cb.up.size
	wr := r.cb.up.write
	rd := atomic.LoadUint32(&r.cb.up.read)

	var free uint32
	if rd > wr {
		free = rd - wr - 1
	} else {
		free = size - (wr - rd + 1)
	}
	n := uint32(len(p))
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}

	first := n
	if first > size-wr {
		first = size - wr
	}
	copy(r.up[wr:wr+first], p[:first])
	copy(r.up[:n-first], p[first:n])

	wr += n
	if wr >= size {
		wr -= size
	}
	atomic.StoreUint32(&r.cb.up.write, wr)
	return int(n)
}

// Drain consumes up to len(p) pending bytes from the up buffer, as the
// debug probe would, and returns how many were copied.
func (r *RTT) Drain(p []byte) int {
	size := r.cb.up.size
	rd := r.cb.up.read
	wr := atomic.LoadUint32(&r.cb.up.write)

	n := 0
	for rd != wr && n < len(p) {
		p[n] = r.up[rd]
		n++
		rd++
		if rd == size {
			rd = 0
		}
	}
	atomic.StoreUint32(&r.cb.up.read, rd)
	return n
}

// Pending returns the number of bytes written but not yet drained.
func (r *RTT) Pending() int {
	size := r.cb.up.size
	wr := atomic.LoadUint32(&r.cb.up.write)
	rd := atomic.LoadUint32(&r.cb.up.read)
	if wr >= rd {
		return int(wr - rd)
	}
	return int(size - rd + wr)
}
