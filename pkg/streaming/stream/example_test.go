package stream_test

import (
	"fmt"

	"github.com/vnykmshr/lockstream/pkg/streaming/stream"
)

// Example demonstrates writing and reading back through one IOStream.
func Example() {
	s := stream.NewMemory()

	if _, err := stream.WriteAll(s, []byte("hello, stream")); err != nil {
		fmt.Println("write failed:", err)
		return
	}

	buf := make([]byte, 5)
	n, _ := stream.ReadFull(s, buf)
	fmt.Println(string(buf[:n]))
	fmt.Println(s.Len(), "bytes left")

	// Output:
	// hello
	// 8 bytes left
}

// ExampleChunked demonstrates short writes and the WriteAll loop.
func ExampleChunked() {
	s, _ := stream.Chunked(stream.NewMemory(), 64, 4)

	n, _ := s.Write([]byte("abcdefghij"))
	fmt.Println("single write accepted", n)

	n, _ = stream.WriteAll(s, []byte("efghij"))
	fmt.Println("WriteAll accepted", n)

	out := make([]byte, 10)
	n, _ = s.Read(out)
	fmt.Println(string(out[:n]))

	// Output:
	// single write accepted 4
	// WriteAll accepted 6
	// abcdefghij
}

// ExampleNewMemoryWithConfig demonstrates a bounded stream.
func ExampleNewMemoryWithConfig() {
	s, err := stream.NewMemoryWithConfig(stream.MemoryConfig{Capacity: 4})
	if err != nil {
		fmt.Println(err)
		return
	}

	n, err := s.Write([]byte("overflow"))
	fmt.Println(n, err)

	// Output: 4 <nil>
}
