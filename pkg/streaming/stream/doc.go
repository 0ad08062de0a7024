/*
Package stream defines a small hierarchy of blocking byte-stream
capabilities and a few implementations of it.

Capabilities:

  - Stream: the identity every endpoint shares; it has no operations
  - InputStream: a Stream with Read
  - OutputStream: a Stream with Write
  - IOStream: one Stream with both

Read and Write take a buffer and return how many bytes moved, which may be
fewer than requested. Short transfers are not errors: callers loop, or use
ReadFull, WriteAll and Copy, which do the looping and stop on streams that
make no progress.

	s := stream.NewMemory()

	if _, err := stream.WriteAll(s, []byte("hello")); err != nil {
		return err
	}

	buf := make([]byte, 5)
	if _, err := stream.ReadFull(s, buf); err != nil {
		return err
	}

Implementations:

  - Memory: in-process FIFO, optionally bounded, safe for concurrent use
  - RedisStream: FIFO over a Redis list, shareable between processes
  - ChunkedStream: caps each call on another stream to force short transfers
  - SyncStream: serializes all calls on a stream that is not concurrency-safe
  - MetricsStream: records operations, bytes and short transfers in Prometheus

The interfaces are compatible with io.Reader and io.Writer, with one
relaxation: an OutputStream may return a short count with a nil error.
*/
package stream
