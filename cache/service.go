package cache

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/KOMKZ/go-pubsite-service/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service read-through cache service shared by the domain services
// The store is an explicit collaborator so tests can supply a fake
type Service struct {
	store      Store
	serializer Serializer
	defaultTTL time.Duration
	logger     *logger.CtxZapLogger
}

// NewService creates a cache service
// defaultTTL applies to every write without an explicit TTL
func NewService(store Store, defaultTTL time.Duration, log *logger.CtxZapLogger) *Service {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &Service{
		store:      store,
		serializer: NewJSONSerializer(),
		defaultTTL: defaultTTL,
		logger:     log,
	}
}

// DefaultTTL returns the configured default TTL
func (s *Service) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Ping round-trips to the underlying store
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Invalidate deletes every key concurrently and waits for all deletions.
// A per-key failure is logged and swallowed: the relational write already
// committed and remains the source of truth; the TTL is the backstop.
func (s *Service) Invalidate(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := s.store.Delete(gctx, key); err != nil {
				s.logger.WarnCtx(ctx, "cache invalidation delete failed",
					zap.String("key", key),
					zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.DebugCtx(ctx, "cache invalidated", zap.Int("keys", len(keys)))
}

// ReadThrough returns the cached value for key, or computes it via loader and
// stores it with ttl (0 means the service default).
//
// Failure modes:
//   - store get failure (not a miss): logged, degrades to the loader; the
//     cache is a performance optimization, never a correctness dependency
//   - loader failure: propagated, nothing cached (not-found conditions are
//     modeled as loader errors precisely so they are never cached)
//   - nil loader result: returned as-is, nothing cached, so a later call
//     recomputes
//   - store set failure: logged, the computed value is still returned
//
// No locking is performed: concurrent misses on one key each run the loader
// and the last Set wins, which is acceptable because every computed value
// derives from the same source of truth.
func ReadThrough[T any](ctx context.Context, s *Service, key string, ttl time.Duration, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	data, err := s.store.Get(ctx, key)
	if err == nil {
		var cached T
		if derr := s.serializer.Deserialize(data, &cached); derr == nil {
			s.logger.DebugCtx(ctx, "cache hit", zap.String("key", key))
			return cached, nil
		}
		// corrupt entry: treat as miss and let the loader overwrite it
		s.logger.WarnCtx(ctx, "cache deserialize failed, treating as miss",
			zap.String("key", key))
	} else if !errors.Is(err, ErrCacheMiss) {
		s.logger.WarnCtx(ctx, "cache get failed, falling back to loader",
			zap.String("key", key),
			zap.Error(err))
	}

	result, err := loader(ctx)
	if err != nil {
		return zero, err
	}

	if isAbsent(result) {
		// never store empty results: a cached "nothing" would mask a
		// subsequent successful write until TTL expiry
		s.logger.DebugCtx(ctx, "skip caching empty result", zap.String("key", key))
		return result, nil
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if data, serr := s.serializer.Serialize(result); serr != nil {
		s.logger.WarnCtx(ctx, "cache serialize failed",
			zap.String("key", key),
			zap.Error(serr))
	} else if serr := s.store.Set(ctx, key, data, ttl); serr != nil {
		s.logger.WarnCtx(ctx, "cache set failed",
			zap.String("key", key),
			zap.Error(serr))
	}

	return result, nil
}

// isAbsent reports whether a loader result carries no value
// (nil interface, or a nil pointer/slice/map underneath)
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
