package stream

import (
	"github.com/vnykmshr/lockstream/pkg/common/validation"
)

// ChunkedStream caps every Read and Write of an underlying IOStream,
// producing short transfers. It is as safe for concurrent use as the
// stream it wraps.
type ChunkedStream struct {
	s        IOStream
	readMax  int
	writeMax int
}

var _ IOStream = (*ChunkedStream)(nil)

// Chunked wraps s so that no Read moves more than readMax bytes and no
// Write more than writeMax bytes.
func Chunked(s IOStream, readMax, writeMax int) (*ChunkedStream, error) {
	if err := validation.ValidateNotNil("stream", "stream", s); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositive("stream", "read_max", readMax); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositive("stream", "write_max", writeMax); err != nil {
		return nil, err
	}
	return &ChunkedStream{s: s, readMax: readMax, writeMax: writeMax}, nil
}

// Read implements InputStream.
func (c *ChunkedStream) Read(p []byte) (int, error) {
	if len(p) > c.readMax {
		p = p[:c.readMax]
	}
	return c.s.Read(p)
}

// Write implements OutputStream.
func (c *ChunkedStream) Write(p []byte) (int, error) {
	if len(p) > c.writeMax {
		p = p[:c.writeMax]
	}
	return c.s.Write(p)
}
