package stream

import (
	"github.com/vnykmshr/lockstream/pkg/sync/mutex"
)

// SyncStream serializes every Read and Write on an underlying IOStream
// with one mutex, so a stream that is not safe for concurrent use can be
// shared. Reads and writes exclude each other.
type SyncStream struct {
	mu mutex.Mutex
	s  IOStream
}

var _ IOStream = (*SyncStream)(nil)

// Synchronized wraps s for concurrent use.
func Synchronized(s IOStream) *SyncStream {
	return &SyncStream{s: s}
}

// Read implements InputStream.
func (ss *SyncStream) Read(p []byte) (int, error) {
	g := mutex.Lock(&ss.mu)
	defer g.Release()
	return ss.s.Read(p)
}

// Write implements OutputStream.
func (ss *SyncStream) Write(p []byte) (int, error) {
	g := mutex.Lock(&ss.mu)
	defer g.Release()
	return ss.s.Write(p)
}

// WriteAll delivers all of p while holding the lock, so concurrent callers
// never interleave within one record.
func (ss *SyncStream) WriteAll(p []byte) (int, error) {
	g := mutex.Lock(&ss.mu)
	defer g.Release()
	return WriteAll(ss.s, p)
}
