package benchmark

import (
	"bytes"
	"io"
	"testing"

	"github.com/vnykmshr/lockstream/pkg/streaming/stream"
)

// BenchmarkCopy compares stream.Copy over a memory stream with io.Copy
// over a bytes.Buffer for several payload sizes.
func BenchmarkCopy(b *testing.B) {
	for _, size := range []int{1 << 10, 64 << 10, 1 << 20} {
		payload := bytes.Repeat([]byte("x"), size)

		b.Run("stream/"+sizeLabel(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			buf := make([]byte, 32*1024)
			for i := 0; i < b.N; i++ {
				src := stream.NewMemory()
				_, _ = src.Write(payload)
				_, _ = stream.Copy(stream.NewMemory(), src, buf)
			}
		})

		b.Run("io/"+sizeLabel(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				src := bytes.NewBuffer(payload)
				_, _ = io.Copy(&bytes.Buffer{}, src)
			}
		})
	}
}

// BenchmarkShortWrites measures WriteAll against increasingly small write caps.
func BenchmarkShortWrites(b *testing.B) {
	payload := bytes.Repeat([]byte("x"), 4096)

	for _, limit := range []int{4096, 512, 64, 8} {
		b.Run(sizeLabel(limit), func(b *testing.B) {
			mem := stream.NewMemory()
			c, err := stream.Chunked(mem, 4096, limit)
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = stream.WriteAll(c, payload)
				mem.Reset()
			}
		})
	}
}
