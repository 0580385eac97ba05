//go:build dbgprint_cs

package dbgprint

var defaultCriticalSection CriticalSection

func defaultLock() MutualExclusion {
	return &defaultCriticalSection
}
