//go:build tinygo

package dbgprint

import (
	"runtime/interrupt"
	"sync/atomic"
)

// CriticalSection masks interrupts on the calling core and holds a spinlock
// so that the other core of dual-core parts is excluded as well.
type CriticalSection struct {
	locked uint32
}

func (c *CriticalSection) With(f func()) {
	state := interrupt.Disable()
	for !atomic.CompareAndSwapUint32(&c.locked, 0, 1) {
	}
	f()
	atomic.StoreUint32(&c.locked, 0)
	interrupt.Restore(state)
}
