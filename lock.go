package dbgprint

// NoLock runs operations without any synchronization. Concurrent writers
// sharing the same hardware may tear each other's output.
type NoLock struct{}

func (NoLock) With(f func()) { f() }

// with runs f under m and returns its result. A nil m behaves like NoLock.
func with[R any](m MutualExclusion, f func() R) R {
	var r R
	if m == nil {
		return f()
	}
	m.With(func() { r = f() })
	return r
}
