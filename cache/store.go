// Package cache provides the read-through cache layer in front of the
// relational store: a prefixed Redis store adapter, the cache key scheme,
// and the read-through/invalidation service used by the domain services.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store cache storage backend
// Cache entries are derived, disposable state: any key may be absent without
// correctness loss, so implementations perform no retries
type Store interface {
	// Get returns the cached bytes, or ErrCacheMiss when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key (idempotent; deleting an absent key is not an error)
	Delete(ctx context.Context, key string) error

	// Ping round-trips to the live store
	Ping(ctx context.Context) error

	// Close releases store resources
	Close() error
}

// RedisStore Redis-backed store
// Every key passes through a fixed prefix so the cache can share a Redis
// instance with unrelated subsystems without key collision
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis store with the given key prefix
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// buildKey applies the namespace prefix
func (s *RedisStore) buildKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + ":" + key
}

// Get retrieves a cached value
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, ErrStoreGet.Wrap(err)
	}
	return result, nil
}

// Set stores a cached value with TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.buildKey(key), value, ttl).Err(); err != nil {
		return ErrStoreSet.Wrap(err)
	}
	return nil
}

// Delete removes a cached value
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.buildKey(key)).Err(); err != nil {
		return ErrStoreDelete.Wrap(err)
	}
	return nil
}

// Ping round-trips to the Redis server
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return ErrStorePing.Wrap(err)
	}
	return nil
}

// Close is a no-op; the client lifecycle belongs to the redis manager
func (s *RedisStore) Close() error {
	return nil
}
