//go:build esp32c2

package dbgprint

const targetChip = ESP32C2

// No Serial-JTAG peripheral: dbgprint_jtag does not build here.
const targetUART = targetChip
