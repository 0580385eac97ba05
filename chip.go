package dbgprint

import (
	"fmt"
	"strings"
)

// Chip identifies an Espressif chip variant.
type Chip uint8

const (
	ChipUnknown Chip = iota
	ESP32
	ESP32C2
	ESP32C3
	ESP32C6
	ESP32H2
	ESP32S2
	ESP32S3
	ESP8266
)

func (c Chip) String() string {
	switch c {
	case ESP32:
		return "esp32"
	case ESP32C2:
		return "esp32c2"
	case ESP32C3:
		return "esp32c3"
	case ESP32C6:
		return "esp32c6"
	case ESP32H2:
		return "esp32h2"
	case ESP32S2:
		return "esp32s2"
	case ESP32S3:
		return "esp32s3"
	case ESP8266:
		return "esp8266"
	default:
		return "unknown"
	}
}

// ParseChip returns the chip named s (case-insensitive, e.g. "esp32c3").
func ParseChip(s string) (Chip, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c := ESP32; c <= ESP8266; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return ChipUnknown, fmt.Errorf("%w: %q", ErrUnknownChip, s)
}

const (
	// DefaultBurstSize is the USB-Serial-JTAG endpoint size, which is also
	// the chunk size used by the S2 UART FIFO path.
	DefaultBurstSize = 64
	// DefaultWaitCycles bounds the Serial-JTAG acknowledgment poll.
	DefaultWaitCycles = 100_000
)

// USB-Serial-JTAG EP1_CONF bits
const (
	jtagWriteDone  = 1 << 0 // WR_DONE
	jtagInDataFree = 1 << 1 // SERIAL_IN_EP_DATA_FREE
	jtagReadyMask  = jtagWriteDone | jtagInDataFree
)

// UART_TX_DONE_INT bit of the S2 UART0 INT_RAW/INT_CLR registers.
const uartTxDone = 1 << 14

// RegisterMap holds the fixed hardware addresses and timing constants of one
// chip variant. A zero address means the chip lacks that peripheral.
type RegisterMap struct {
	Chip Chip

	// JTAGFIFO is the USB-Serial-JTAG EP1 data register.
	JTAGFIFO uintptr
	// JTAGConf is the USB-Serial-JTAG EP1_CONF register.
	JTAGConf uintptr

	// ROMTxOneChar is the entry point of the boot-ROM uart_tx_one_char.
	ROMTxOneChar uintptr

	// UARTFIFO, UARTIntRaw and UARTIntClr are used by chips whose ROM routine
	// is not usable (ESP32-S2).
	UARTFIFO   uintptr
	UARTIntRaw uintptr
	UARTIntClr uintptr
	// UARTTxDoneMask is the completion bit in UARTIntRaw/UARTIntClr.
	UARTTxDoneMask uint32

	// BurstSize is the maximum number of bytes pushed per handshake.
	// Defaults to DefaultBurstSize if not provided.
	BurstSize int
	// WaitCycles is the number of status polls before a chunk is abandoned.
	// Defaults to DefaultWaitCycles if not provided.
	WaitCycles int
}

var registerMaps = map[Chip]RegisterMap{
	ESP32: {
		ROMTxOneChar: 0x4000_9200,
	},
	ESP32C2: {
		ROMTxOneChar: 0x4000_0058,
	},
	ESP32C3: {
		JTAGFIFO:     0x6004_3000,
		JTAGConf:     0x6004_3004,
		ROMTxOneChar: 0x4000_0068,
	},
	ESP32C6: {
		JTAGFIFO:     0x6000_F000,
		JTAGConf:     0x6000_F004,
		ROMTxOneChar: 0x4000_0058,
	},
	ESP32H2: {
		JTAGFIFO:     0x6000_F000,
		JTAGConf:     0x6000_F004,
		ROMTxOneChar: 0x4000_0058,
	},
	ESP32S2: {
		UARTFIFO:       0x3f40_0000,
		UARTIntRaw:     0x3f40_0004,
		UARTIntClr:     0x3f40_0010,
		UARTTxDoneMask: uartTxDone,
	},
	ESP32S3: {
		JTAGFIFO:     0x6003_8000,
		JTAGConf:     0x6003_8004,
		ROMTxOneChar: 0x4000_0648,
	},
	ESP8266: {
		ROMTxOneChar: 0x4000_3b30,
	},
}

// RegisterMapFor returns the register map of chip c.
func RegisterMapFor(c Chip) (RegisterMap, error) {
	m, ok := registerMaps[c]
	if !ok {
		return RegisterMap{}, fmt.Errorf("%w: %s", ErrUnknownChip, c)
	}
	m.Chip = c
	m.BurstSize = DefaultBurstSize
	m.WaitCycles = DefaultWaitCycles
	return m, nil
}

// HasSerialJTAG reports whether the chip has a USB-Serial-JTAG peripheral.
func (m RegisterMap) HasSerialJTAG() bool {
	return m.JTAGFIFO != 0 && m.JTAGConf != 0
}

// HasROMUART reports whether the ROM uart_tx_one_char routine is used.
func (m RegisterMap) HasROMUART() bool {
	return m.ROMTxOneChar != 0
}

// HasRegisterUART reports whether the UART is driven through its registers.
func (m RegisterMap) HasRegisterUART() bool {
	return m.UARTFIFO != 0 && m.UARTIntRaw != 0 && m.UARTIntClr != 0 && m.UARTTxDoneMask != 0
}

func (m *RegisterMap) applyDefaults() {
	if m.BurstSize <= 0 {
		m.BurstSize = DefaultBurstSize
	}
	if m.WaitCycles <= 0 {
		m.WaitCycles = DefaultWaitCycles
	}
}
