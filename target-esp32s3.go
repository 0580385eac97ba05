//go:build esp32s3

package dbgprint

const targetChip = ESP32S3

// Serial-JTAG and UART are both wired on this chip.
const (
	targetSerialJTAG = targetChip
	targetUART       = targetChip
)
