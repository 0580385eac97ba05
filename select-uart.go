//go:build dbgprint_uart

package dbgprint

// targetUART is declared only by target files of ESP chips.
func defaultConfig() Config {
	return Config{
		Transport: TransportUART,
		Chip:      targetUART,
		Lock:      defaultLock(),
	}
}
