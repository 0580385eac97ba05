// Package dbgprint is a small debug-output sink for ESP-family
// microcontrollers built with TinyGo.
//
// Bytes are written, best effort, to one of three transports:
//
//   - a debug-probe channel (SEGGER RTT in target RAM),
//   - the USB-Serial-JTAG peripheral (ESP32-C3, C6, H2, S3),
//   - UART0, through the boot-ROM uart_tx_one_char routine or, on the
//     ESP32-S2, through the UART registers.
//
// A write never reports an error. Output is dropped when no host is
// attached and truncated when the peripheral stops acknowledging; the
// Serial-JTAG wait is bounded by RegisterMap.WaitCycles polls.
//
// The transport used by Print, Println and Printf is chosen with build tags:
//
//	tinygo build -target=esp32c3 -tags=dbgprint_jtag,dbgprint_cs
//
// dbgprint_rtt, dbgprint_jtag and dbgprint_uart are mutually exclusive;
// dbgprint_cs wraps every write in a CriticalSection. Without a transport
// tag output is discarded. The dbgprintstats tag enables drop counters
// (see ReadStats).
//
// Sinks can also be built at run time with New, or directly on any Register
// implementation with NewSerialJTAG, NewROMUART, NewRegisterUART and
// NewProbe.
package dbgprint
