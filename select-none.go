//go:build !dbgprint_rtt && !dbgprint_jtag && !dbgprint_uart

package dbgprint

// Without a transport tag the default sink discards output.
func defaultConfig() Config {
	return Config{Transport: TransportNone}
}
