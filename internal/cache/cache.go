// Package cache caches rendered list responses for the public endpoints.
// Values are []byte so the memory and Redis backends are interchangeable.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cache is the interface both backends implement. All implementations are
// safe for concurrent use.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Options configures the cache factory.
type Options struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// Prefix is prepended to all keys on the Redis backend.
	Prefix string

	// DefaultTTL applies when Set is called with a zero ttl.
	DefaultTTL time.Duration
}

// New builds a cache from options. When Redis is configured but unreachable
// it falls back to the memory backend and logs; the site keeps working.
func New(opts Options) Cache {
	if opts.DefaultTTL == 0 {
		opts.DefaultTTL = time.Minute
	}

	if opts.RedisURL != "" {
		c, err := NewRedisCache(opts)
		if err == nil {
			slog.Info("response cache initialized", "backend", "redis")
			return c
		}
		slog.Warn("redis unavailable, using memory cache", "error", err)
	}

	slog.Info("response cache initialized", "backend", "memory")
	return NewMemoryCache(opts.DefaultTTL)
}
