//go:build dbgprint_rtt

package dbgprint

func defaultConfig() Config {
	return Config{
		Transport: TransportProbe,
		Lock:      defaultLock(),
	}
}
