//go:build esp32h2

package dbgprint

const targetChip = ESP32H2

// Serial-JTAG and UART are both wired on this chip.
const (
	targetSerialJTAG = targetChip
	targetUART       = targetChip
)
