package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/vnykmshr/lockstream/internal/testutil"
)

// scripted returns the queued results in order, then 0, io.EOF.
type scripted struct {
	reads  []result
	writes []result
	sink   []byte
}

type result struct {
	n   int
	err error
}

func (s *scripted) Read(p []byte) (int, error) {
	if len(s.reads) == 0 {
		return 0, io.EOF
	}
	r := s.reads[0]
	s.reads = s.reads[1:]
	for i := 0; i < r.n && i < len(p); i++ {
		p[i] = 'x'
	}
	return r.n, r.err
}

func (s *scripted) Write(p []byte) (int, error) {
	if len(s.writes) == 0 {
		s.sink = append(s.sink, p...)
		return len(p), nil
	}
	r := s.writes[0]
	s.writes = s.writes[1:]
	if r.n > 0 && r.n <= len(p) {
		s.sink = append(s.sink, p[:r.n]...)
	}
	return r.n, r.err
}

func TestReadFull(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		reads   []result
		size    int
		wantN   int
		wantErr error
	}{
		{"single read", []result{{4, nil}}, 4, 4, nil},
		{"short reads", []result{{1, nil}, {2, nil}, {1, nil}}, 4, 4, nil},
		{"eof with last chunk", []result{{2, nil}, {2, io.EOF}}, 4, 4, nil},
		{"eof before data", nil, 4, 0, io.EOF},
		{"unexpected eof", []result{{3, nil}}, 4, 3, io.ErrUnexpectedEOF},
		{"error mid-read", []result{{1, nil}, {0, errBoom}}, 4, 1, errBoom},
		{"invalid count", []result{{9, nil}}, 4, 0, ErrInvalidCount},
		{"negative count", []result{{-1, nil}}, 4, 0, ErrInvalidCount},
		{"empty buffer", nil, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scripted{reads: tt.reads}
			n, err := ReadFull(s, make([]byte, tt.size))
			testutil.AssertEqual(t, n, tt.wantN)
			testutil.AssertEqual(t, err, tt.wantErr)
		})
	}
}

func TestReadFullNoProgress(t *testing.T) {
	reads := make([]result, maxZeroProgress+1)
	s := &scripted{reads: reads}

	n, err := ReadFull(s, make([]byte, 4))
	testutil.AssertEqual(t, n, 0)
	testutil.AssertEqual(t, err, io.ErrNoProgress)
}

func TestWriteAll(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		writes  []result
		wantN   int
		wantErr error
	}{
		{"accepted at once", nil, 6, nil},
		{"short writes", []result{{1, nil}, {2, nil}}, 6, nil},
		{"zero then progress", []result{{0, nil}, {6, nil}}, 6, nil},
		{"error after partial", []result{{2, nil}, {1, errBoom}}, 3, errBoom},
		{"invalid count", []result{{7, nil}}, 0, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scripted{writes: tt.writes}
			n, err := WriteAll(s, []byte("abcdef"))
			testutil.AssertEqual(t, n, tt.wantN)
			testutil.AssertEqual(t, err, tt.wantErr)
			testutil.AssertEqual(t, string(s.sink), "abcdef"[:tt.wantN])
		})
	}
}

func TestWriteAllNoProgress(t *testing.T) {
	s := &scripted{writes: make([]result, maxZeroProgress+1)}

	n, err := WriteAll(s, []byte("abc"))
	testutil.AssertEqual(t, n, 0)
	testutil.AssertEqual(t, err, io.ErrShortWrite)
}

func TestWriteAllDeliversInOrder(t *testing.T) {
	src := sourceBytes(1000)
	m := testutil.NewMockStream(nil)
	m.SetWriteChunk(13)

	n, err := WriteAll(m, src)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, len(src))
	testutil.AssertEqual(t, m.String(), string(src))
	testutil.AssertEqual(t, m.WriteCount(), (len(src)+12)/13)
}

func TestCopy(t *testing.T) {
	src := sourceBytes(5000)

	in := testutil.NewMockStream(src)
	in.SetReadChunk(700)
	out := testutil.NewMockStream(nil)
	out.SetWriteChunk(300)

	n, err := Copy(out, in, make([]byte, 512))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(len(src)))
	testutil.AssertEqual(t, out.String(), string(src))
}

func TestCopyDefaultBufferAndErrors(t *testing.T) {
	n, err := Copy(NewMemory(), NewMemory(), nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(0))

	errBoom := errors.New("boom")
	out := testutil.NewMockStream(nil)
	out.SetAlwaysError(errBoom)

	in, err := NewMemoryWithConfig(MemoryConfig{Initial: []byte("data")})
	testutil.AssertNoError(t, err)

	_, err = Copy(out, in, nil)
	testutil.AssertEqual(t, err, errBoom)
}
