package mutex

// ScopedLock holds a Locker for the lifetime of a scope.
//
// The lock is acquired by Lock before it returns and released by Release.
// Pair every Lock with a deferred Release so the lock is freed on every
// exit path, panics included:
//
//	g := mutex.Lock(m)
//	defer g.Release()
//
// A ScopedLock does not own the Locker and must not be copied or shared
// between goroutines.
type ScopedLock struct {
	noCopy NoCopy

	l        Locker
	released bool
}

// Lock acquires l, blocking as long as necessary, and returns the guard
// that releases it.
func Lock(l Locker) *ScopedLock {
	l.Enter()
	return &ScopedLock{l: l}
}

// TryLock acquires l only if it is free. The returned guard is nil when
// the lock was not acquired.
func TryLock(l Locker) (*ScopedLock, bool) {
	if !l.TryEntering() {
		return nil, false
	}
	return &ScopedLock{l: l}, true
}

// Release leaves the guarded lock. Only the first call has an effect, so an
// early explicit Release composes with a deferred one.
func (g *ScopedLock) Release() {
	if g.released {
		return
	}
	g.released = true
	g.l.Leave()
}

// Held reports whether the guard still holds its lock.
func (g *ScopedLock) Held() bool {
	return !g.released
}

// With runs fn while holding l and returns fn's error. The lock is released
// when fn returns or panics; a panic is propagated after the release.
func With(l Locker, fn func() error) error {
	g := Lock(l)
	defer g.Release()
	return fn()
}
