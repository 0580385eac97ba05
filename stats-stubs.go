//go:build !dbgprintstats

package dbgprint

func dbgWrite(int, int) {}
func dbgDisconnected()  {}
func dbgChunkTimeout()  {}
func dbgProbeShort(int) {}
