// Package fpenv controls the calling thread's flush-to-zero (FTZ) and
// denormals-are-zero (DAZ) floating-point modes, per spec.md §4.B / §5.
//
// This is process-local, per-thread state: Go does not pin goroutines to
// OS threads, so callers that need a guaranteed mode for a scope should
// use WithFlushDenormals, which saves/restores the prior mode around f –
// the same save/restore-around-a-scope discipline spec.md §5 requires,
// even though the underlying register is actually per-OS-thread and a
// goroutine can in principle migrate between calls. Real-time callers
// that care should lock the calling goroutine to its OS thread
// (runtime.LockOSThread) before entering the scope; this package does not
// do that for them since thread affinity is a caller policy, not a DSP
// concern.
package fpenv

// SetFlushDenormals enables or disables FTZ/DAZ on the calling OS thread.
// It is idempotent. On architectures without an implementation it is a
// no-op and returns false; GetFlushDenormals always reports false in
// that case, matching spec.md §5.
func SetFlushDenormals(enable bool) bool {
	return setFlushDenormals(enable)
}

// GetFlushDenormals reports whether FTZ/DAZ is currently enabled on the
// calling thread. Returns false on unsupported architectures.
func GetFlushDenormals() bool {
	return getFlushDenormals()
}

// WithFlushDenormals runs f with FTZ/DAZ set to enable for its duration,
// restoring the prior mode afterward even if f panics.
func WithFlushDenormals(enable bool, f func()) {
	prev := GetFlushDenormals()
	SetFlushDenormals(enable)
	defer SetFlushDenormals(prev)
	f()
}
