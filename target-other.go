//go:build !esp32 && !esp32c2 && !esp32c3 && !esp32c6 && !esp32h2 && !esp32s2 && !esp32s3 && !esp8266

package dbgprint

// Hardware transports need a chip: neither targetSerialJTAG nor targetUART
// is declared, so dbgprint_jtag and dbgprint_uart do not build here.
const targetChip = ChipUnknown
