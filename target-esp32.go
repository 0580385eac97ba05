//go:build esp32

package dbgprint

const targetChip = ESP32

// No Serial-JTAG peripheral: dbgprint_jtag does not build here.
const targetUART = targetChip
