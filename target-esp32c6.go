//go:build esp32c6

package dbgprint

const targetChip = ESP32C6

// Serial-JTAG and UART are both wired on this chip.
const (
	targetSerialJTAG = targetChip
	targetUART       = targetChip
)
