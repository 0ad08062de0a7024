package mutex

import (
	"sync"
	"sync/atomic"
)

// Locker is the contract shared by every lock in this module.
type Locker interface {
	// Enter blocks until the lock is free, then acquires it.
	// Locks are not reentrant: a second Enter by the holder deadlocks.
	Enter()

	// Leave releases the lock. Calling Leave on a lock that is not held
	// is a programming error and panics.
	Leave()

	// TryEntering acquires the lock if it is free and reports whether it did.
	// It never blocks.
	TryEntering() bool
}

// Mutex is a non-reentrant mutual-exclusion lock.
//
// The zero value is an unlocked Mutex. A Mutex must not be copied after
// first use. There is no ordering or fairness guarantee among goroutines
// blocked in Enter, and Enter has no timeout; use TryEnterContext when a
// bounded wait is needed.
type Mutex struct {
	noCopy NoCopy

	mu   sync.Mutex
	held atomic.Bool
}

var _ Locker = (*Mutex)(nil)

// New returns an unlocked Mutex. Go locks need no native allocation, so
// construction cannot fail.
func New() *Mutex {
	return &Mutex{}
}

// Enter blocks until the mutex is free, then acquires it.
func (m *Mutex) Enter() {
	m.mu.Lock()
	m.held.Store(true)
}

// Leave releases the mutex. It panics if the mutex is not held.
//
// Ownership is not tracked per goroutine: as with sync.Mutex, a goroutine
// may release a mutex acquired by another one.
func (m *Mutex) Leave() {
	if !m.held.CompareAndSwap(true, false) {
		panic("mutex: leave of unlocked mutex")
	}
	m.mu.Unlock()
}

// TryEntering acquires the mutex without blocking and reports whether it succeeded.
func (m *Mutex) TryEntering() bool {
	if !m.mu.TryLock() {
		return false
	}
	m.held.Store(true)
	return true
}

// Locked reports whether the mutex is held at the instant of the call.
// The result is stale as soon as it is returned; use it for diagnostics only.
func (m *Mutex) Locked() bool {
	return m.held.Load()
}

// Kind identifies the lock implementation in metrics labels.
func (m *Mutex) Kind() string {
	return "mutex"
}
