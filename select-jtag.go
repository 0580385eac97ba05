//go:build dbgprint_jtag

package dbgprint

// targetSerialJTAG is declared only by target files of chips with the
// peripheral, so this file does not build for any other target.
func defaultConfig() Config {
	return Config{
		Transport: TransportSerialJTAG,
		Chip:      targetSerialJTAG,
		Lock:      defaultLock(),
	}
}
