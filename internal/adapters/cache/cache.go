// Package cache provides the byte-value cache behind the daily horoscope
// fast path. Only sign-level daily readings are ever stored; user readings
// are never persisted.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel kinds for cache lookups.
var (
	ErrMiss = errors.New("cache miss")
)

// Store is the minimal cache surface the service needs.
type Store interface {
	// Get returns the cached value or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Noop is the Store used when no cache backend is configured. Every lookup
// misses and every write is discarded.
type Noop struct{}

func (Noop) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, ErrMiss
}

func (Noop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
