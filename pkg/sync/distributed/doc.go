/*
Package distributed provides a mutual-exclusion lock shared across processes
through Redis.

Mutex satisfies mutex.Locker, so it composes with mutex.Lock, mutex.With,
mutex.TryEnterContext and the metrics wrapper exactly like an in-process
mutex:

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	m, err := distributed.NewMutex(distributed.Config{
		Redis: rdb,
		Key:   "billing:ledger",
		TTL:   10 * time.Second,
	})
	if err != nil {
		return err // Redis unreachable or invalid config
	}

	g := mutex.Lock(m)
	defer g.Release()

The lock is a Redis key set with NX and a TTL to a token unique to the
acquisition. Release and Extend run Lua scripts that only act while the key
still carries the caller's token, so a holder whose TTL expired cannot free
a lock that another process has since acquired.

Errors:

Enter, Leave and TryEntering keep the Locker contract and do not return
errors: Redis failures are logged through zap and retried (Enter), treated
as a failed attempt (TryEntering) or left to the TTL (Leave). The Context
variants return them. Construction fails with an error wrapping
errors.ErrResourceExhausted when Redis cannot be reached.
*/
package distributed
