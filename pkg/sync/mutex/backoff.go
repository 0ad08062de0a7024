package mutex

import (
	"context"
	"time"

	"github.com/vnykmshr/lockstream/pkg/common/validation"
)

// Backoff controls the polling interval of TryEnterContext.
type Backoff struct {
	// Initial is the delay after the first failed attempt.
	// Default: 1ms
	Initial time.Duration

	// Max caps the delay between attempts.
	// Default: 50ms
	Max time.Duration

	// Multiplier grows the delay after each failed attempt.
	// Default: 2
	Multiplier float64
}

// DefaultBackoff returns the default polling policy.
func DefaultBackoff() Backoff {
	return Backoff{
		Initial:    time.Millisecond,
		Max:        50 * time.Millisecond,
		Multiplier: 2,
	}
}

// Validate reports whether b, with defaults applied for zero fields, is usable.
func (b Backoff) Validate() error {
	b = b.withDefaults()
	if err := validation.ValidatePositiveDuration("mutex", "backoff.initial", b.Initial); err != nil {
		return err
	}
	if err := validation.ValidatePositiveDuration("mutex", "backoff.max", b.Max); err != nil {
		return err
	}
	return validation.ValidatePositiveFloat("mutex", "backoff.multiplier", b.Multiplier)
}

func (b Backoff) withDefaults() Backoff {
	def := DefaultBackoff()
	if b.Initial == 0 {
		b.Initial = def.Initial
	}
	if b.Max == 0 {
		b.Max = def.Max
	}
	if b.Multiplier == 0 {
		b.Multiplier = def.Multiplier
	}
	return b
}

func (b Backoff) next(d time.Duration) time.Duration {
	d = time.Duration(float64(d) * b.Multiplier)
	if d > b.Max {
		return b.Max
	}
	if d <= 0 {
		return b.Initial
	}
	return d
}

// TryEnterContext polls l.TryEntering until it succeeds or ctx is done,
// sleeping between attempts according to b. It returns nil once the lock is
// held and ctx.Err() otherwise; the lock is never held on an error return.
func TryEnterContext(ctx context.Context, l Locker, b Backoff) error {
	if err := b.Validate(); err != nil {
		return err
	}
	b = b.withDefaults()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	delay := b.Initial
	for {
		if l.TryEntering() {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = b.next(delay)
	}
}

// LockContext is the scoped form of TryEnterContext.
func LockContext(ctx context.Context, l Locker, b Backoff) (*ScopedLock, error) {
	if err := TryEnterContext(ctx, l, b); err != nil {
		return nil, err
	}
	return &ScopedLock{l: l}, nil
}
