package stream

import (
	"bytes"
	"testing"

	"github.com/vnykmshr/lockstream/internal/testutil"
)

// Compile-time: the test double satisfies the whole hierarchy.
var _ IOStream = (*testutil.MockStream)(nil)

func sourceBytes(k int) []byte {
	b := make([]byte, k)
	for i := range b {
		b[i] = byte('a' + i%26)
	}
	return b
}

// checkReadProperty verifies that one Read of k bytes returns a count in
// [0, k] whose prefix matches src.
func checkReadProperty(t *testing.T, in InputStream, src []byte) {
	t.Helper()
	dst := make([]byte, len(src))
	n, _ := in.Read(dst)
	if n < 0 || n > len(src) {
		t.Fatalf("Read returned %d, want within [0, %d]", n, len(src))
	}
	if !bytes.Equal(dst[:n], src[:n]) {
		t.Fatalf("Read returned %q, want prefix of %q", dst[:n], src)
	}
}

// checkWriteProperty verifies that resubmitting the remainder delivers
// every byte of src in order.
func checkWriteProperty(t *testing.T, out OutputStream, src []byte) {
	t.Helper()
	rest := src
	for len(rest) > 0 {
		n, err := out.Write(rest)
		testutil.AssertNoError(t, err)
		if n < 0 || n > len(rest) {
			t.Fatalf("Write returned %d, want within [0, %d]", n, len(rest))
		}
		rest = rest[n:]
	}
}

func TestStreamProperties(t *testing.T) {
	const k = 100
	src := sourceBytes(k)

	t.Run("memory", func(t *testing.T) {
		var s IOStream = NewMemory()
		checkWriteProperty(t, s, src)
		checkReadProperty(t, s, src)
	})

	t.Run("chunked memory", func(t *testing.T) {
		s, err := Chunked(NewMemory(), 7, 3)
		testutil.AssertNoError(t, err)
		checkWriteProperty(t, s, src)

		got := make([]byte, k)
		n, err := ReadFull(s, got)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, k)
		testutil.AssertEqual(t, string(got), string(src))
	})

	t.Run("mock with short transfers", func(t *testing.T) {
		m := testutil.NewMockStream(src)
		m.SetReadChunk(9)
		m.SetWriteChunk(4)

		checkReadProperty(t, m, src)
		checkWriteProperty(t, m, src)
		testutil.AssertEqual(t, m.String(), string(src))
	})
}

func TestIOStreamSharesOneIdentity(t *testing.T) {
	s := NewMemory()

	var rw IOStream = s
	var in InputStream = rw
	var out OutputStream = rw

	// Both capabilities reach the same object.
	if in.(*Memory) != out.(*Memory) {
		t.Fatal("input and output capabilities should refer to one stream")
	}

	_, err := WriteAll(out, []byte("ping"))
	testutil.AssertNoError(t, err)

	buf := make([]byte, 4)
	_, err = ReadFull(in, buf)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(buf), "ping")
}
