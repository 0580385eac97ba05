//go:build tinygo

package dbgprint

import (
	"machine"
)

func init() {
	globalLogger = newSerialLogger(defaultConfig().Transport)
}

// serialLogger reports sink construction on machine.Serial. When the
// default sink drives the USB-Serial-JTAG peripheral, machine.Serial may be
// that same peripheral, so only errors are written.
type serialLogger struct {
	quiet bool
	line  [96]byte
}

func newSerialLogger(t Transport) *serialLogger {
	return &serialLogger{quiet: t == TransportSerialJTAG}
}

// log writes one line with a single Write so lines from other writers on
// machine.Serial cannot split it. Long messages are cut.
func (l *serialLogger) log(level, msg string) {
	n := copy(l.line[:], level)
	n += copy(l.line[n:len(l.line)-2], msg)
	n += copy(l.line[n:], "\r\n")
	machine.Serial.Write(l.line[:n])
}

func (l *serialLogger) Debug(msg string) {
	if !l.quiet {
		l.log("[DEBUG] ", msg)
	}
}

func (l *serialLogger) Info(msg string) {
	if !l.quiet {
		l.log("[INFO]  ", msg)
	}
}

func (l *serialLogger) Warn(msg string) {
	if !l.quiet {
		l.log("[WARN]  ", msg)
	}
}

func (l *serialLogger) Error(msg string) { l.log("[ERROR] ", msg) }
