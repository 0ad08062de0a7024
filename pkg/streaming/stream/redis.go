package stream

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	lserrors "github.com/vnykmshr/lockstream/pkg/common/errors"
	"github.com/vnykmshr/lockstream/pkg/common/validation"
	"github.com/vnykmshr/lockstream/pkg/sync/mutex"
)

// RedisConfig holds configuration for a Redis list stream.
type RedisConfig struct {
	// Redis client holding the list
	Redis redis.UniversalClient

	// Key is the list key
	Key string

	// MaxChunk is the largest number of bytes one Write stores; longer
	// writes are short.
	// Default: 64KB
	MaxChunk int

	// RedisTimeout is the timeout for each Redis round trip
	// Default: 500ms
	RedisTimeout time.Duration

	// Logger overrides the package logger
	Logger *zap.Logger
}

// DefaultRedisConfig returns a default Redis stream configuration.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		MaxChunk:     64 * 1024,
		RedisTimeout: 500 * time.Millisecond,
	}
}

// RedisStream is an IOStream over a Redis list. Each Write appends one
// element with RPUSH; Read pops elements with LPOP and keeps the unread
// tail of an element larger than the read buffer for the next Read.
//
// Several RedisStreams may share a key: each element goes to exactly one
// reader. A single RedisStream is safe for concurrent use.
type RedisStream struct {
	config RedisConfig
	logger *zap.Logger

	mu      mutex.Mutex
	pending []byte
}

var _ IOStream = (*RedisStream)(nil)

// NewRedis validates config and returns a stream over config.Key.
func NewRedis(config RedisConfig) (*RedisStream, error) {
	def := DefaultRedisConfig()
	if config.MaxChunk == 0 {
		config.MaxChunk = def.MaxChunk
	}
	if config.RedisTimeout == 0 {
		config.RedisTimeout = def.RedisTimeout
	}

	if err := validation.ValidateNotNil("stream", "redis", config.Redis); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("stream", "key", config.Key); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositive("stream", "max_chunk", config.MaxChunk); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveDuration("stream", "redis_timeout", config.RedisTimeout); err != nil {
		return nil, err
	}

	l := config.Logger
	if l == nil {
		l = Logger()
	}

	return &RedisStream{
		config: config,
		logger: l.With(zap.String("key", config.Key)),
	}, nil
}

// Read implements InputStream. It returns 0, io.EOF when the list is empty
// and nothing is pending.
func (rs *RedisStream) Read(p []byte) (int, error) {
	g := mutex.Lock(&rs.mu)
	defer g.Release()

	if len(p) == 0 {
		return 0, nil
	}

	if len(rs.pending) == 0 {
		ctx, cancel := context.WithTimeout(context.Background(), rs.config.RedisTimeout)
		defer cancel()

		elem, err := rs.config.Redis.LPop(ctx, rs.config.Key).Bytes()
		if errors.Is(err, redis.Nil) {
			return 0, io.EOF
		}
		if err != nil {
			rs.logger.Warn("stream read failed", zap.Error(err))
			return 0, lserrors.NewOperationError("stream", "Read", err)
		}
		rs.pending = elem
	}

	n := copy(p, rs.pending)
	rs.pending = rs.pending[n:]
	return n, nil
}

// Write implements OutputStream. At most MaxChunk bytes are stored per call.
func (rs *RedisStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > rs.config.MaxChunk {
		p = p[:rs.config.MaxChunk]
	}

	ctx, cancel := context.WithTimeout(context.Background(), rs.config.RedisTimeout)
	defer cancel()

	if err := rs.config.Redis.RPush(ctx, rs.config.Key, p).Err(); err != nil {
		rs.logger.Warn("stream write failed", zap.Error(err), zap.Int("bytes", len(p)))
		return 0, lserrors.NewOperationError("stream", "Write", err)
	}
	return len(p), nil
}

// Pending returns the number of bytes popped from Redis but not yet read.
func (rs *RedisStream) Pending() int {
	g := mutex.Lock(&rs.mu)
	defer g.Release()
	return len(rs.pending)
}
