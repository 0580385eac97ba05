//go:build !tinygo

package dbgprint

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"periph.io/x/conn/v3"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/pmem"
)

// pmemRegister is a 32-bit register inside a /dev/mem mapping.
type pmemRegister struct {
	word *uint32
}

func (r *pmemRegister) Get() uint32  { return atomic.LoadUint32(r.word) }
func (r *pmemRegister) Set(v uint32) { atomic.StoreUint32(r.word, v) }

var (
	pmemMu    sync.Mutex
	pmemPages = map[uint64]*pmem.View{}
	hostReady bool
)

// mapRegister maps the page holding addr and returns the register at addr.
// Pages are mapped once and stay mapped for the life of the process.
func mapRegister(addr uintptr) (Register, error) {
	if addr == 0 || addr%4 != 0 {
		return nil, fmt.Errorf("%w: register address 0x%08X", ErrUnsupported, addr)
	}

	pmemMu.Lock()
	defer pmemMu.Unlock()

	if !hostReady {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
		}
		hostReady = true
	}

	pageSize := uint64(os.Getpagesize())
	base := uint64(addr) &^ (pageSize - 1)
	view, ok := pmemPages[base]
	if !ok {
		var err error
		view, err = pmem.Map(base, int(pageSize))
		if err != nil {
			return nil, fmt.Errorf("failed to map register page 0x%08X: %w", base, err)
		}
		pmemPages[base] = view
		globalLogger.Debug(fmt.Sprintf("mapped register page 0x%08X", base))
	}
	words := view.Uint32()
	return &pmemRegister{word: &words[(uint64(addr)-base)/4]}, nil
}

// newROMRoutine fails on the host: there is no boot ROM to call into.
func newROMRoutine(addr uintptr) (ROMRoutine, error) {
	return nil, fmt.Errorf("%w: ROM routine at 0x%08X", ErrUnsupported, addr)
}

// DefaultConnMaxTx is the transfer limit of spidev's default bufsiz.
const DefaultConnMaxTx = 4096

// ConnChannel adapts a periph.io connection into a ProbeChannel. Writes are
// split into transfers of at most MaxTx bytes; the first failing transfer
// ends the write and the bytes sent before it are reported.
type ConnChannel struct {
	Conn conn.Conn
	// MaxTx is the largest single transfer the bus accepts.
	// Defaults to DefaultConnMaxTx if not provided.
	MaxTx int
}

func (c ConnChannel) Write(p []byte) int {
	limit := c.MaxTx
	if limit <= 0 {
		limit = DefaultConnMaxTx
	}
	sent := 0
	for sent < len(p) {
		end := sent + limit
		if end > len(p) {
			end = len(p)
		}
		if err := c.Conn.Tx(p[sent:end], nil); err != nil {
			break
		}
		sent = end
	}
	return sent
}

func (c ConnChannel) String() string {
	return "ConnChannel(" + c.Conn.String() + ")"
}
