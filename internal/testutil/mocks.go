package testutil

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"
)

// MockStream is a read/write test double that can simulate short
// transfers, delays and errors. Reads drain a fixed source; writes append
// to an internal sink.
type MockStream struct {
	mu         sync.Mutex
	source     []byte
	sink       bytes.Buffer
	readChunk  int
	writeChunk int
	writeDelay time.Duration
	errorOnNth int
	writeCount int
	readCount  int
	err        error
}

// NewMockStream creates a MockStream whose reads return source.
func NewMockStream(source []byte) *MockStream {
	return &MockStream{source: append([]byte(nil), source...)}
}

// Read copies at most the configured read chunk of the remaining source.
// It returns 0, io.EOF once the source is exhausted.
func (ms *MockStream) Read(p []byte) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.readCount++
	if len(p) == 0 {
		return 0, nil
	}
	if len(ms.source) == 0 {
		return 0, io.EOF
	}

	n := len(p)
	if ms.readChunk > 0 && n > ms.readChunk {
		n = ms.readChunk
	}
	n = copy(p[:n], ms.source)
	ms.source = ms.source[n:]
	return n, nil
}

// Write accepts at most the configured write chunk of p.
func (ms *MockStream) Write(p []byte) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.writeCount++

	if ms.writeDelay > 0 {
		time.Sleep(ms.writeDelay)
	}
	if ms.err != nil {
		return 0, ms.err
	}
	if ms.errorOnNth > 0 && ms.writeCount == ms.errorOnNth {
		return 0, errors.New("simulated error")
	}

	n := len(p)
	if ms.writeChunk > 0 && n > ms.writeChunk {
		n = ms.writeChunk
	}
	return ms.sink.Write(p[:n])
}

// String returns the bytes written so far.
func (ms *MockStream) String() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.sink.String()
}

// Len returns the number of bytes written so far.
func (ms *MockStream) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.sink.Len()
}

// WriteCount returns the number of Write calls.
func (ms *MockStream) WriteCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.writeCount
}

// ReadCount returns the number of Read calls.
func (ms *MockStream) ReadCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.readCount
}

// SetReadChunk limits every Read to at most n bytes. Zero removes the limit.
func (ms *MockStream) SetReadChunk(n int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.readChunk = n
}

// SetWriteChunk limits every Write to at most n bytes. Zero removes the limit.
func (ms *MockStream) SetWriteChunk(n int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.writeChunk = n
}

// SetWriteDelay configures a delay for each write operation.
func (ms *MockStream) SetWriteDelay(delay time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.writeDelay = delay
}

// SetErrorOnNth configures the stream to fail the nth write.
func (ms *MockStream) SetErrorOnNth(n int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.errorOnNth = n
}

// SetAlwaysError configures every write to return err.
func (ms *MockStream) SetAlwaysError(err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.err = err
}
