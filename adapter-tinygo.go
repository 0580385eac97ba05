//go:build tinygo

package dbgprint

import (
	"fmt"
	"runtime/volatile"
	"unsafe"
)

// mapRegister returns the register at addr. MMIO is identity mapped on the
// ESP targets, so the address is used as is.
func mapRegister(addr uintptr) (Register, error) {
	if addr == 0 || addr%4 != 0 {
		return nil, fmt.Errorf("%w: register address 0x%08X", ErrUnsupported, addr)
	}
	return (*volatile.Register32)(unsafe.Pointer(addr)), nil
}

// tinygoFunc is the layout of a TinyGo func value.
type tinygoFunc struct {
	context unsafe.Pointer
	fn      unsafe.Pointer
}

// newROMRoutine turns the entry address of a boot-ROM function with the C
// signature int (*)(uint8_t) into a callable. This is the only place an
// address is reinterpreted as code. The extra context argument TinyGo
// passes is ignored by the ROM, and the status comes back in a0.
func newROMRoutine(addr uintptr) (ROMRoutine, error) {
	if addr == 0 {
		return nil, fmt.Errorf("%w: ROM routine address 0", ErrUnsupported)
	}
	v := tinygoFunc{fn: unsafe.Pointer(addr)}
	f := *(*func(byte) int32)(unsafe.Pointer(&v))
	return ROMRoutine(f), nil
}
