package mutex

import (
	"sync"
	"testing"
)

func BenchmarkEnterLeave(b *testing.B) {
	m := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Enter()
		m.Leave()
	}
}

func BenchmarkScopedLock(b *testing.B) {
	m := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := Lock(m)
		g.Release()
	}
}

func BenchmarkTryEntering(b *testing.B) {
	m := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.TryEntering() {
			m.Leave()
		}
	}
}

func BenchmarkEnterLeaveParallel(b *testing.B) {
	m := New()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Enter()
			m.Leave()
		}
	})
}

func BenchmarkSyncMutexBaseline(b *testing.B) {
	var m sync.Mutex
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Unlock()
		}
	})
}

func BenchmarkMetricsMutex(b *testing.B) {
	mm := NewWithMetrics("bench")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mm.Enter()
		mm.Leave()
	}
}
