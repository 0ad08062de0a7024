package distributed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	lserrors "github.com/vnykmshr/lockstream/pkg/common/errors"
	"github.com/vnykmshr/lockstream/pkg/sync/mutex"
)

// Mutex is a mutual-exclusion lock shared by every process that uses the
// same Redis key. It satisfies mutex.Locker.
//
// Goroutines of one process that share a *Mutex are serialized by a local
// mutex before they contend in Redis. The lock is held in Redis with a TTL;
// a holder that outlives it loses the lock, and its Leave reports
// ErrNotHeld. Like mutex.Mutex it is not reentrant.
type Mutex struct {
	noCopy mutex.NoCopy

	config Config
	logger *zap.Logger
	local  mutex.Mutex

	// token is guarded by local.
	token string
}

var _ mutex.Locker = (*Mutex)(nil)

// NewMutex validates config, checks that Redis is reachable and returns an
// unlocked Mutex. A Redis failure is reported as an error wrapping
// errors.ErrResourceExhausted.
func NewMutex(config Config) (*Mutex, error) {
	config = applyConfigDefaults(config)
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	m := &Mutex{
		config: config,
		logger: config.Logger,
	}
	if m.logger == nil {
		m.logger = Logger()
	}
	m.logger = m.logger.With(zap.String("key", config.Key), zap.String("instance", config.InstanceID))

	ctx, cancel := context.WithTimeout(context.Background(), config.RedisTimeout)
	defer cancel()
	if err := config.Redis.Ping(ctx).Err(); err != nil {
		return nil, lserrors.NewOperationError("distributed", "NewMutex",
			fmt.Errorf("%w: %w", lserrors.ErrResourceExhausted, err)).
			WithContext("redis unreachable")
	}

	return m, nil
}

// Enter blocks until the lock is acquired. Redis errors are logged and
// retried; Enter only returns holding the lock.
func (m *Mutex) Enter() {
	_ = m.EnterContext(context.Background())
}

// EnterContext blocks until the lock is acquired or ctx is done. On error
// the lock is not held.
func (m *Mutex) EnterContext(ctx context.Context) error {
	backoff := mutex.Backoff{Initial: time.Millisecond, Max: m.config.RetryInterval}
	if err := mutex.TryEnterContext(ctx, &m.local, backoff); err != nil {
		return err
	}

	ticker := time.NewTicker(m.config.RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := m.acquire(ctx)
		if err != nil {
			m.logger.Warn("lock acquisition failed, retrying", zap.Error(err))
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			m.local.Leave()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// TryEntering makes one acquisition attempt. Redis errors are logged and
// reported as a failed attempt.
func (m *Mutex) TryEntering() bool {
	ok, err := m.TryEnteringContext(context.Background())
	if err != nil {
		m.logger.Warn("lock attempt failed", zap.Error(err))
	}
	return ok
}

// TryEnteringContext makes one acquisition attempt and reports Redis errors.
func (m *Mutex) TryEnteringContext(ctx context.Context) (bool, error) {
	if !m.local.TryEntering() {
		return false, nil
	}

	ok, err := m.acquire(ctx)
	if !ok {
		m.local.Leave()
	}
	return ok, err
}

// Leave releases the lock. It panics if the lock is not held by this Mutex.
// Failures to release in Redis are logged; the key then expires on its own.
func (m *Mutex) Leave() {
	if err := m.LeaveContext(context.Background()); err != nil {
		m.logger.Warn("lock release failed", zap.Error(err))
	}
}

// LeaveContext releases the lock and reports whether Redis still held it
// for this Mutex. ErrNotHeld means the TTL expired before the release. The
// local side is released in every case.
func (m *Mutex) LeaveContext(ctx context.Context) error {
	if !m.local.Locked() {
		panic("distributed: leave of unlocked mutex")
	}

	token := m.token
	m.token = ""

	ctx, cancel := context.WithTimeout(ctx, m.config.RedisTimeout)
	defer cancel()
	res, err := releaseScript.Run(ctx, m.config.Redis, []string{m.config.Key}, token).Int64()

	m.local.Leave()

	if err != nil {
		m.countError("leave")
		return &RedisError{"leave", err}
	}
	if res == 0 {
		return lserrors.ErrNotHeld
	}
	return nil
}

// Extend resets the TTL of a held lock. It returns ErrNotHeld if the lock
// is not held, locally or in Redis.
func (m *Mutex) Extend(ctx context.Context) error {
	if !m.local.Locked() || m.token == "" {
		return lserrors.ErrNotHeld
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.RedisTimeout)
	defer cancel()
	res, err := extendScript.Run(ctx, m.config.Redis, []string{m.config.Key},
		m.token, m.config.TTL.Milliseconds()).Int64()
	if err != nil {
		m.countError("extend")
		return &RedisError{"extend", err}
	}
	if res == 0 {
		return lserrors.ErrNotHeld
	}
	return nil
}

// Kind identifies the lock implementation in metrics labels.
func (m *Mutex) Kind() string {
	return "redis"
}

// Key returns the Redis key of the lock.
func (m *Mutex) Key() string {
	return m.config.Key
}

// acquire performs one SET NX round trip. The caller holds m.local.
func (m *Mutex) acquire(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.config.RedisTimeout)
	defer cancel()

	token := m.config.InstanceID + ":" + randomHex(8)
	ok, err := m.config.Redis.SetNX(ctx, m.config.Key, token, m.config.TTL).Result()
	if err != nil {
		m.countError("enter")
		return false, &RedisError{"enter", err}
	}
	if ok {
		m.token = token
	}
	return ok, nil
}

func (m *Mutex) countError(op string) {
	if m.config.Metrics != nil {
		m.config.Metrics.LockErrors.WithLabelValues("redis", m.config.Key, op).Inc()
	}
}

// RedisError represents a Redis operation error.
type RedisError struct {
	Operation string
	Err       error
}

func (e *RedisError) Error() string {
	return "redis error in " + e.Operation + ": " + e.Err.Error()
}

func (e *RedisError) Unwrap() error {
	return e.Err
}
