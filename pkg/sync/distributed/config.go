package distributed

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vnykmshr/lockstream/pkg/common/validation"
	"github.com/vnykmshr/lockstream/pkg/metrics"
)

// Config holds configuration for a Redis-backed mutex.
type Config struct {
	// Redis client for coordination
	Redis redis.UniversalClient

	// Key is the Redis key that represents the lock
	Key string

	// TTL bounds how long a crashed holder can keep the lock.
	// Holders running longer must call Extend.
	// Default: 30s
	TTL time.Duration

	// RetryInterval is the delay between acquisition attempts in Enter.
	// Default: 50ms
	RetryInterval time.Duration

	// RedisTimeout is the timeout for each Redis round trip
	// Default: 500ms
	RedisTimeout time.Duration

	// InstanceID prefixes lock tokens so the holder is identifiable in Redis
	InstanceID string

	// Logger overrides the package logger
	Logger *zap.Logger

	// Metrics, when set, counts backend errors
	Metrics *metrics.Registry
}

// DefaultConfig returns a default distributed mutex configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           30 * time.Second,
		RetryInterval: 50 * time.Millisecond,
		RedisTimeout:  500 * time.Millisecond,
		InstanceID:    generateInstanceID(),
	}
}

// validateConfig validates the mutex configuration after defaults are applied.
func validateConfig(config Config) error {
	if err := validation.ValidateNotNil("distributed", "redis", config.Redis); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("distributed", "key", config.Key); err != nil {
		return err
	}
	if err := validation.ValidatePositiveDuration("distributed", "ttl", config.TTL); err != nil {
		return err
	}
	if err := validation.ValidatePositiveDuration("distributed", "retry_interval", config.RetryInterval); err != nil {
		return err
	}
	return validation.ValidatePositiveDuration("distributed", "redis_timeout", config.RedisTimeout)
}

// applyConfigDefaults sets default values for unspecified config fields.
func applyConfigDefaults(config Config) Config {
	def := DefaultConfig()
	if config.TTL == 0 {
		config.TTL = def.TTL
	}
	if config.RetryInterval == 0 {
		config.RetryInterval = def.RetryInterval
	}
	if config.RedisTimeout == 0 {
		config.RedisTimeout = def.RedisTimeout
	}
	if config.InstanceID == "" {
		config.InstanceID = def.InstanceID
	}
	return config
}

// generateInstanceID creates a unique identifier for this application instance.
func generateInstanceID() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("%s-%d-%s", hostname, os.Getpid(), randomHex(4))
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
