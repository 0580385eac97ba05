//go:build esp32s2

package dbgprint

const targetChip = ESP32S2

// No Serial-JTAG peripheral: dbgprint_jtag does not build here.
const targetUART = targetChip
