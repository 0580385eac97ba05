package dbgprint

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Printer adapts a Sink to io.Writer and io.StringWriter so that fmt can
// print to it. Writes always report full success. A Printer with a nil Sink
// discards everything.
type Printer struct {
	Sink Sink
}

func (p Printer) Write(b []byte) (int, error) {
	if p.Sink != nil {
		p.Sink.WriteBytes(b)
	}
	return len(b), nil
}

// WriteString passes the bytes of s to the sink without copying them.
func (p Printer) WriteString(s string) (int, error) {
	if p.Sink != nil && len(s) > 0 {
		p.Sink.WriteBytes(unsafe.Slice(unsafe.StringData(s), len(s)))
	}
	return len(s), nil
}

type sinkHolder struct {
	sink Sink
}

var (
	current     atomic.Value // sinkHolder
	defaultOnce sync.Once
	builtSink   Sink
)

// buildDefault creates the sink selected by build tags. Chip and transport
// pairings are checked at build time; a register that still fails to map
// degrades to discarding output.
func buildDefault() Sink {
	defaultOnce.Do(func() {
		s, err := New(defaultConfig())
		if err != nil {
			globalLogger.Error("debug output disabled: " + err.Error())
			s = nopSink{}
		}
		builtSink = s
	})
	return builtSink
}

// Default returns the sink used by Print, Println and Printf.
func Default() Sink {
	if h, ok := current.Load().(sinkHolder); ok {
		return h.sink
	}
	return buildDefault()
}

// SetSink replaces the sink used by Print, Println and Printf. A nil s
// restores the sink selected at build time.
func SetSink(s Sink) {
	if s == nil {
		s = buildDefault()
	}
	current.Store(sinkHolder{sink: s})
}

// Print formats like fmt.Print and writes to the default sink.
func Print(a ...any) {
	fmt.Fprint(Printer{Sink: Default()}, a...)
}

// Println formats like fmt.Println and writes to the default sink.
func Println(a ...any) {
	fmt.Fprintln(Printer{Sink: Default()}, a...)
}

// Printf formats like fmt.Printf and writes to the default sink.
func Printf(format string, a ...any) {
	fmt.Fprintf(Printer{Sink: Default()}, format, a...)
}
