package dbgprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWaitCycles = 16

func newJTAGBus(conf func(flushes int) uint32) (*simBus, *SerialJTAGSink) {
	bus := &simBus{}
	fifo := bus.register("fifo", nil)
	confReg := bus.register("conf", func() uint32 {
		return conf(bus.count("conf", true))
	})
	return bus, NewSerialJTAG(fifo, confReg, nil, DefaultBurstSize, testWaitCycles)
}

func alwaysReady(int) uint32 { return jtagReadyMask }

func TestSerialJTAGChunking(t *testing.T) {
	for n := 0; n <= 3*DefaultBurstSize; n++ {
		bus, sink := newJTAGBus(alwaysReady)
		data := pattern(n)

		sink.WriteBytes(data)

		require.Equal(t, data, append([]byte{}, bus.written("fifo")...), "len %d: fifo stream", n)
		chunks := bus.chunks("fifo", "conf")
		wantChunks := (n + DefaultBurstSize - 1) / DefaultBurstSize
		require.Len(t, chunks, wantChunks, "len %d: one flush per chunk", n)
		for i, c := range chunks {
			if i < len(chunks)-1 {
				assert.Len(t, c, DefaultBurstSize, "len %d: chunk %d", n, i)
			} else {
				assert.True(t, len(c) > 0 && len(c) <= DefaultBurstSize, "len %d: last chunk %d bytes", n, len(c))
			}
		}
	}
}

func TestSerialJTAGFlushPattern(t *testing.T) {
	bus, sink := newJTAGBus(alwaysReady)
	sink.WriteBytes([]byte("hi"))

	for _, e := range bus.events {
		if e.reg == "conf" && e.write {
			assert.Equal(t, uint32(jtagWriteDone), e.val)
		}
	}
}

func TestSerialJTAGExactBurstIsOneChunk(t *testing.T) {
	bus, sink := newJTAGBus(alwaysReady)
	sink.WriteBytes(pattern(DefaultBurstSize))

	assert.Equal(t, 1, bus.count("conf", true))
	assert.Equal(t, DefaultBurstSize, bus.count("fifo", true))
}

func TestSerialJTAGEmptyInput(t *testing.T) {
	bus, sink := newJTAGBus(alwaysReady)
	sink.WriteBytes(nil)

	assert.Equal(t, 1, bus.count("conf", false), "readiness check only")
	assert.Zero(t, bus.count("conf", true))
	assert.Zero(t, bus.count("fifo", true))
}

func TestSerialJTAGDisconnected(t *testing.T) {
	bus, sink := newJTAGBus(func(int) uint32 { return 0 })
	sink.WriteBytes(pattern(3 * DefaultBurstSize))

	assert.Zero(t, bus.count("fifo", true), "no data written")
	assert.Zero(t, bus.count("conf", true), "no flush")
	assert.Equal(t, 1, bus.count("conf", false), "returns after a single poll")
}

func TestSerialJTAGTimeoutTruncates(t *testing.T) {
	// ready until the first flush, never again
	bus, sink := newJTAGBus(func(flushes int) uint32 {
		if flushes == 0 {
			return jtagReadyMask
		}
		return 0
	})
	data := pattern(3 * DefaultBurstSize)
	sink.WriteBytes(data)

	assert.Equal(t, data[:DefaultBurstSize], bus.written("fifo"))
	assert.Equal(t, 1, bus.count("conf", true))
	assert.Equal(t, 1+testWaitCycles, bus.count("conf", false), "bounded poll")
}

func TestSerialJTAGAckAfterFewPolls(t *testing.T) {
	polls := 0
	bus, sink := newJTAGBus(func(flushes int) uint32 {
		if flushes == 0 {
			return jtagReadyMask
		}
		polls++
		if polls%3 == 0 {
			return jtagInDataFree
		}
		return 0
	})
	data := pattern(2*DefaultBurstSize + 5)
	sink.WriteBytes(data)

	assert.Equal(t, data, bus.written("fifo"))
	assert.Equal(t, 3, bus.count("conf", true))
}

func TestSerialJTAGDefaults(t *testing.T) {
	bus := &simBus{}
	sink := NewSerialJTAG(bus.register("fifo", nil), bus.register("conf", nil), nil, 0, -1)

	assert.Equal(t, DefaultBurstSize, sink.burstSize)
	assert.Equal(t, DefaultWaitCycles, sink.waitCycles)
	assert.Equal(t, NoLock{}, sink.lock)
}
