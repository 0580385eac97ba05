//go:build dbgprintstats

package dbgprint

import "sync/atomic"

// Stats counts sink activity since the last ResetStats.
type Stats struct {
	Writes        uint32 // WriteBytes calls
	BytesIn       uint32 // bytes handed to WriteBytes
	BytesOut      uint32 // bytes pushed to hardware
	Disconnected  uint32 // writes skipped because no host was attached
	ChunkTimeouts uint32 // writes truncated by an acknowledgment timeout
	ProbeShort    uint32 // bytes a probe channel refused after the retry
}

var stats Stats

func dbgWrite(in, out int) {
	atomic.AddUint32(&stats.Writes, 1)
	atomic.AddUint32(&stats.BytesIn, uint32(in))
	atomic.AddUint32(&stats.BytesOut, uint32(out))
}

func dbgDisconnected()    { atomic.AddUint32(&stats.Disconnected, 1) }
func dbgChunkTimeout()    { atomic.AddUint32(&stats.ChunkTimeouts, 1) }
func dbgProbeShort(n int) { atomic.AddUint32(&stats.ProbeShort, uint32(n)) }

// ReadStats returns a copy of the counters.
func ReadStats() Stats {
	return Stats{
		Writes:        atomic.LoadUint32(&stats.Writes),
		BytesIn:       atomic.LoadUint32(&stats.BytesIn),
		BytesOut:      atomic.LoadUint32(&stats.BytesOut),
		Disconnected:  atomic.LoadUint32(&stats.Disconnected),
		ChunkTimeouts: atomic.LoadUint32(&stats.ChunkTimeouts),
		ProbeShort:    atomic.LoadUint32(&stats.ProbeShort),
	}
}

// ResetStats zeroes the counters.
func ResetStats() {
	atomic.StoreUint32(&stats.Writes, 0)
	atomic.StoreUint32(&stats.BytesIn, 0)
	atomic.StoreUint32(&stats.BytesOut, 0)
	atomic.StoreUint32(&stats.Disconnected, 0)
	atomic.StoreUint32(&stats.ChunkTimeouts, 0)
	atomic.StoreUint32(&stats.ProbeShort, 0)
}
