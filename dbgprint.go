package dbgprint

import (
	"errors"
	"fmt"
)

// Errors returned by New and the chip helpers. The write path never
// returns errors.
var (
	// ErrUnknownChip means the chip has no register map.
	ErrUnknownChip = errors.New("unknown chip")
	// ErrNoTransport means Config.Transport is not a known transport.
	ErrNoTransport = errors.New("no transport selected")
	// ErrTransportUnavailable means the chip lacks the peripheral.
	ErrTransportUnavailable = errors.New("transport not available on chip")
	// ErrUnsupported means the platform cannot reach the hardware, e.g. a
	// ROM routine on the host.
	ErrUnsupported = errors.New("not supported on this platform")
)

// Transport selects the hardware path a sink writes to.
type Transport uint8

const (
	// TransportNone discards everything.
	TransportNone Transport = iota
	// TransportProbe writes to a debug-probe channel (RTT).
	TransportProbe
	// TransportSerialJTAG writes to the USB-Serial-JTAG peripheral.
	TransportSerialJTAG
	// TransportUART writes to UART0, through the boot ROM or, on the
	// ESP32-S2, through the UART registers.
	TransportUART
)

func (t Transport) String() string {
	switch t {
	case TransportNone:
		return "none"
	case TransportProbe:
		return "probe"
	case TransportSerialJTAG:
		return "serial-jtag"
	case TransportUART:
		return "uart"
	default:
		return "unknown"
	}
}

// Config holds the configuration of a sink built by New.
type Config struct {
	// Transport is the hardware path to write to.
	Transport Transport
	// Chip selects the register map.
	// Not needed for TransportProbe and TransportNone.
	Chip Chip
	// Registers overrides the register map of Chip.
	// Defaults to RegisterMapFor(Chip) if not provided.
	Registers *RegisterMap
	// Lock serializes writers sharing the hardware.
	// Defaults to NoLock if not provided.
	Lock MutualExclusion
	// Probe is the channel used by TransportProbe.
	// Defaults to a new RTT channel with DefaultRTTUpSize and
	// DefaultRTTDownSize if not provided.
	Probe ProbeChannel
	// MapRegister returns the register at a physical address.
	// Defaults to memory-mapped access (volatile on TinyGo, /dev/mem on
	// Linux) if not provided.
	MapRegister func(addr uintptr) (Register, error)
	// LookupROM returns the ROM routine at an address.
	// Defaults to calling the boot ROM directly if not provided.
	LookupROM func(addr uintptr) (ROMRoutine, error)
}

// nopSink drops everything.
type nopSink struct{}

func (nopSink) WriteBytes([]byte) {}

// New creates the sink described by c. All validation happens here; the
// returned sink never reports errors.
func New(c Config) (Sink, error) {
	if c.Lock == nil {
		c.Lock = NoLock{}
	}
	if c.MapRegister == nil {
		c.MapRegister = mapRegister
	}
	if c.LookupROM == nil {
		c.LookupROM = newROMRoutine
	}

	switch c.Transport {
	case TransportNone:
		return nopSink{}, nil
	case TransportProbe:
		if c.Probe == nil {
			c.Probe = NewRTT(DefaultRTTUpSize, DefaultRTTDownSize)
		}
		globalLogger.Info("debug output on probe channel")
		return NewProbe(c.Probe, c.Lock), nil
	case TransportSerialJTAG, TransportUART:
	default:
		return nil, fmt.Errorf("%w: transport %d", ErrNoTransport, c.Transport)
	}

	m, err := c.registerMap()
	if err != nil {
		return nil, err
	}

	var sink Sink
	if c.Transport == TransportSerialJTAG {
		sink, err = c.newSerialJTAG(m)
	} else {
		sink, err = c.newUART(m)
	}
	if err != nil {
		return nil, err
	}
	globalLogger.Info("debug output on " + c.Transport.String() + " (" + m.Chip.String() + ")")
	return sink, nil
}

func (c Config) registerMap() (RegisterMap, error) {
	if c.Registers != nil {
		m := *c.Registers
		m.applyDefaults()
		return m, nil
	}
	return RegisterMapFor(c.Chip)
}

func (c Config) newSerialJTAG(m RegisterMap) (*SerialJTAGSink, error) {
	if !m.HasSerialJTAG() {
		return nil, fmt.Errorf("%w: serial-jtag on %s", ErrTransportUnavailable, m.Chip)
	}
	fifo, err := c.MapRegister(m.JTAGFIFO)
	if err != nil {
		return nil, err
	}
	conf, err := c.MapRegister(m.JTAGConf)
	if err != nil {
		return nil, err
	}
	return NewSerialJTAG(fifo, conf, c.Lock, m.BurstSize, m.WaitCycles), nil
}

func (c Config) newUART(m RegisterMap) (Sink, error) {
	switch {
	case m.HasRegisterUART():
		fifo, err := c.MapRegister(m.UARTFIFO)
		if err != nil {
			return nil, err
		}
		intRaw, err := c.MapRegister(m.UARTIntRaw)
		if err != nil {
			return nil, err
		}
		intClr, err := c.MapRegister(m.UARTIntClr)
		if err != nil {
			return nil, err
		}
		return NewRegisterUART(fifo, intRaw, intClr, m.UARTTxDoneMask, c.Lock, m.BurstSize), nil
	case m.HasROMUART():
		tx, err := c.LookupROM(m.ROMTxOneChar)
		if err != nil {
			return nil, err
		}
		return NewROMUART(tx, c.Lock), nil
	default:
		return nil, fmt.Errorf("%w: uart on %s", ErrTransportUnavailable, m.Chip)
	}
}
