/*
Package mutex provides a non-reentrant mutual-exclusion lock with a scoped
guard.

Every lock in this module satisfies Locker: Enter blocks until the lock is
acquired, Leave releases it, and TryEntering acquires it only if it is free
and never blocks. Mutex is the in-process implementation; the distributed
package provides one backed by Redis.

Basic usage:

	var m mutex.Mutex

	g := mutex.Lock(&m)
	defer g.Release()
	// critical section

A ScopedLock is released exactly once whichever way the enclosing function
returns, including panics. With expresses the same thing as a closure:

	err := mutex.With(&m, func() error {
		return update(state)
	})

Reentrancy:

Locks are not reentrant. A goroutine that calls Enter on a lock it already
holds deadlocks, and TryEntering returns false. Calling Leave on a lock that
is not held panics.

Bounded waits:

Enter has no timeout or cancellation. Callers that need one poll
TryEntering through TryEnterContext, which sleeps between attempts according
to a Backoff:

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	g, err := mutex.LockContext(ctx, &m, mutex.DefaultBackoff())
	if err != nil {
		return err // context deadline exceeded
	}
	defer g.Release()

Copy protection:

Mutex and ScopedLock carry a NoCopy marker so `go vet` reports copies. Types
that must not be copied can embed NoCopy the same way.

Metrics:

NewWithMetrics and NewWithConfigAndMetrics wrap a Locker and record
acquisitions, contention, wait time and hold time through the metrics
package.
*/
package mutex
