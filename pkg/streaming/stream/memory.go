package stream

import (
	"io"

	lserrors "github.com/vnykmshr/lockstream/pkg/common/errors"
	"github.com/vnykmshr/lockstream/pkg/common/validation"
	"github.com/vnykmshr/lockstream/pkg/sync/mutex"
)

// MemoryConfig holds configuration options for a Memory stream.
type MemoryConfig struct {
	// Capacity bounds the number of unread bytes. Writes beyond it are
	// short. Zero means unbounded.
	Capacity int

	// Initial is copied into the stream as readable data.
	Initial []byte
}

// Memory is an in-memory FIFO IOStream: bytes written are read back in
// order. It is safe for concurrent use.
//
// Read returns 0, io.EOF whenever no unread data is available, whether or
// not more may be written later.
type Memory struct {
	mu       mutex.Mutex
	buf      []byte
	capacity int
	closed   bool
}

var _ IOStream = (*Memory)(nil)

// NewMemory returns an empty, unbounded Memory stream.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithConfig returns a Memory stream configured by config.
func NewMemoryWithConfig(config MemoryConfig) (*Memory, error) {
	if err := validation.ValidateNonNegative("stream", "capacity", float64(config.Capacity)); err != nil {
		return nil, err
	}
	if config.Capacity > 0 && len(config.Initial) > config.Capacity {
		return nil, lserrors.NewValidationError("stream", "initial", len(config.Initial), "exceeds capacity").
			WithHint("raise Capacity or shorten Initial")
	}

	return &Memory{
		buf:      append([]byte(nil), config.Initial...),
		capacity: config.Capacity,
	}, nil
}

// Read implements InputStream.
func (s *Memory) Read(p []byte) (int, error) {
	g := mutex.Lock(&s.mu)
	defer g.Release()

	if len(p) == 0 {
		return 0, nil
	}
	if len(s.buf) == 0 {
		return 0, io.EOF
	}

	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	if len(s.buf) == 0 {
		s.buf = nil
	}
	return n, nil
}

// Write implements OutputStream. When the stream is bounded, only the bytes
// that fit are accepted and the count is short. It returns
// errors.ErrClosed after CloseWrite.
func (s *Memory) Write(p []byte) (int, error) {
	g := mutex.Lock(&s.mu)
	defer g.Release()

	if s.closed {
		return 0, lserrors.ErrClosed
	}

	n := len(p)
	if s.capacity > 0 {
		if space := s.capacity - len(s.buf); n > space {
			n = space
		}
	}
	s.buf = append(s.buf, p[:n]...)
	return n, nil
}

// CloseWrite rejects further writes. Unread data stays readable.
func (s *Memory) CloseWrite() error {
	g := mutex.Lock(&s.mu)
	defer g.Release()

	s.closed = true
	return nil
}

// Len returns the number of unread bytes.
func (s *Memory) Len() int {
	g := mutex.Lock(&s.mu)
	defer g.Release()

	return len(s.buf)
}

// Reset discards unread data and reopens the stream for writing.
func (s *Memory) Reset() {
	g := mutex.Lock(&s.mu)
	defer g.Release()

	s.buf = nil
	s.closed = false
}
