package benchmark

import (
	"strconv"
	"sync"
	"testing"

	"github.com/vnykmshr/lockstream/pkg/sync/mutex"
)

// BenchmarkLockContention compares the scoped Mutex with sync.Mutex and a
// channel semaphore under increasing goroutine counts.
func BenchmarkLockContention(b *testing.B) {
	for _, goroutines := range []int{1, 4, 16} {
		b.Run("scoped/"+sizeLabel(goroutines), func(b *testing.B) {
			mu := mutex.New()
			counter := 0
			runContended(b, goroutines, func() {
				g := mutex.Lock(mu)
				counter++
				g.Release()
			})
			_ = counter
		})

		b.Run("sync/"+sizeLabel(goroutines), func(b *testing.B) {
			var mu sync.Mutex
			counter := 0
			runContended(b, goroutines, func() {
				mu.Lock()
				counter++
				mu.Unlock()
			})
			_ = counter
		})

		b.Run("channel/"+sizeLabel(goroutines), func(b *testing.B) {
			sem := make(chan struct{}, 1)
			counter := 0
			runContended(b, goroutines, func() {
				sem <- struct{}{}
				counter++
				<-sem
			})
			_ = counter
		})
	}
}

// BenchmarkTryEntering measures the non-blocking path on a free and a held lock.
func BenchmarkTryEntering(b *testing.B) {
	b.Run("free", func(b *testing.B) {
		mu := mutex.New()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if mu.TryEntering() {
				mu.Leave()
			}
		}
	})

	b.Run("held", func(b *testing.B) {
		mu := mutex.New()
		mu.Enter()
		defer mu.Leave()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = mu.TryEntering()
		}
	})
}

// BenchmarkMetricsOverhead measures the cost of the instrumented wrapper.
func BenchmarkMetricsOverhead(b *testing.B) {
	mm := mutex.NewWithMetrics("bench")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		mm.Enter()
		mm.Leave()
	}
}

func runContended(b *testing.B, goroutines int, op func()) {
	b.ReportAllocs()
	b.ResetTimer()

	var wg sync.WaitGroup
	per := b.N / goroutines
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				op()
			}
		}()
	}
	wg.Wait()
}

func sizeLabel(n int) string {
	return strconv.Itoa(n)
}
