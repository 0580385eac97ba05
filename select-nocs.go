//go:build !dbgprint_cs

package dbgprint

func defaultLock() MutualExclusion {
	return NoLock{}
}
