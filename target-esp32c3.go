//go:build esp32c3

package dbgprint

const targetChip = ESP32C3

// Serial-JTAG and UART are both wired on this chip.
const (
	targetSerialJTAG = targetChip
	targetUART       = targetChip
)
