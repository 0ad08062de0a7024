package mutex

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Waiters blocked in Enter or TryEnterContext must all have returned.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
