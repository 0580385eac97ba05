//go:build !tinygo

package dbgprint

import "sync"

// CriticalSection serializes writers with a mutex. On the host there are no
// interrupts to mask, so goroutines are the only concurrent writers.
type CriticalSection struct {
	mu sync.Mutex
}

func (c *CriticalSection) With(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f()
}
