/*
Package lockstream provides mutual exclusion and byte stream primitives for
Go programs.

Synchronization (pkg/sync):
  - mutex: Mutex with Enter/Leave/TryEntering, scoped locks, context-aware acquisition
  - distributed: Redis-backed mutex satisfying the same Locker contract

Streaming (pkg/streaming):
  - stream: Stream, InputStream, OutputStream and IOStream capabilities,
    in-memory and Redis list streams, short-I/O helpers

Example usage:

	import (
		"github.com/vnykmshr/lockstream/pkg/streaming/stream"
		"github.com/vnykmshr/lockstream/pkg/sync/mutex"
	)

	mu := mutex.New()
	g := mutex.Lock(mu)
	defer g.Release()

	s := stream.NewMemory()
	if _, err := stream.WriteAll(s, data); err != nil {
		// handle error
	}

Every package supports Prometheus metrics through pkg/metrics. Redis-backed
components log through go.uber.org/zap and stay silent unless a logger is set.

See individual package documentation for details.
*/
package lockstream
