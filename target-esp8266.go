//go:build esp8266

package dbgprint

const targetChip = ESP8266

// No Serial-JTAG peripheral: dbgprint_jtag does not build here.
const targetUART = targetChip
