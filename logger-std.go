//go:build !tinygo

package dbgprint

import (
	"github.com/golang/glog"
)

func init() {
	globalLogger = &glogLogger{}
}

// glogLogger forwards to glog. Debug messages need -v=2.
type glogLogger struct{}

func (l *glogLogger) Debug(msg string) {
	if glog.V(2) {
		glog.Info(msg)
	}
}

func (l *glogLogger) Info(msg string)  { glog.Info(msg) }
func (l *glogLogger) Warn(msg string)  { glog.Warning(msg) }
func (l *glogLogger) Error(msg string) { glog.Error(msg) }
