package stream

import (
	"errors"
	"io"
)

// ErrInvalidCount is returned by the helpers in this package when a stream
// reports a transfer count outside [0, len(p)].
var ErrInvalidCount = errors.New("stream: invalid count returned")

// Stream is the identity shared by every endpoint. It has no operations of
// its own; InputStream and OutputStream both embed it, so a value that
// implements both is one Stream, not two.
type Stream interface{}

// InputStream is a Stream that can be read from.
//
// Read copies up to len(p) bytes into p and returns the number copied,
// 0 <= n <= len(p). A short read is not an error. Implementations document
// what a zero count means for them; the implementations in this package
// return io.EOF with it once no data is available.
type InputStream interface {
	Stream
	Read(p []byte) (n int, err error)
}

// OutputStream is a Stream that can be written to.
//
// Write accepts up to len(p) bytes from p and returns the number accepted,
// 0 <= n <= len(p). Unlike io.Writer, a short write with a nil error is
// allowed; callers that must deliver everything use WriteAll.
type OutputStream interface {
	Stream
	Write(p []byte) (n int, err error)
}

// IOStream is a single Stream that is both readable and writable.
//
// The interface implies no concurrency guarantee. Each implementation
// documents whether Read and Write may be called concurrently; Synchronized
// makes any IOStream safe for concurrent use.
type IOStream interface {
	InputStream
	OutputStream
}

var (
	_ io.Reader     = InputStream(nil)
	_ io.Writer     = OutputStream(nil)
	_ io.ReadWriter = IOStream(nil)
)
