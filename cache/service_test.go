package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KOMKZ/go-pubsite-service/logger"
)

type testEntity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func testCacheLogger() *logger.CtxZapLogger {
	return logger.NewTestManager().GetLogger("cache")
}

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, "pubsite")
	return NewService(store, time.Minute, testCacheLogger()), mr
}

// failingStore fails every operation, modeling an unreachable cache backend.
type failingStore struct{}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrStoreGet.Wrap(errors.New("connection refused"))
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return ErrStoreSet.Wrap(errors.New("connection refused"))
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	return ErrStoreDelete.Wrap(errors.New("connection refused"))
}

func (f *failingStore) Ping(ctx context.Context) error {
	return ErrStorePing.Wrap(errors.New("connection refused"))
}

func (f *failingStore) Close() error { return nil }

func TestReadThroughCachesLoaderResult(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var calls atomic.Int32
	loader := func(ctx context.Context) (*testEntity, error) {
		calls.Add(1)
		return &testEntity{ID: 1, Name: "acme"}, nil
	}

	first, err := ReadThrough(ctx, svc, "publisher:id:1:basic", 0, loader)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "acme", first.Name)

	second, err := ReadThrough(ctx, svc, "publisher:id:1:basic", 0, loader)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// the second call was served from cache
	assert.Equal(t, int32(1), calls.Load())
}

func TestReadThroughHonorsTTL(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	var calls atomic.Int32
	loader := func(ctx context.Context) ([]testEntity, error) {
		calls.Add(1)
		return []testEntity{{ID: 1}}, nil
	}

	_, err := ReadThrough(ctx, svc, "publisher:all:basic", 30*time.Second, loader)
	require.NoError(t, err)

	mr.FastForward(time.Minute)

	_, err = ReadThrough(ctx, svc, "publisher:all:basic", 30*time.Second, loader)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestReadThroughDoesNotCacheNilResult(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	var calls atomic.Int32
	loader := func(ctx context.Context) (*testEntity, error) {
		calls.Add(1)
		return nil, nil
	}

	result, err := ReadThrough(ctx, svc, "publisher:id:9:basic", 0, loader)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, mr.Exists("pubsite:publisher:id:9:basic"))

	// nothing was cached, so the loader runs again
	_, err = ReadThrough(ctx, svc, "publisher:id:9:basic", 0, loader)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestReadThroughDoesNotCacheNilSlice(t *testing.T) {
	svc, mr := newTestService(t)

	result, err := ReadThrough(context.Background(), svc, "website:all:basic", 0,
		func(ctx context.Context) ([]testEntity, error) {
			return nil, nil
		})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, mr.Exists("pubsite:website:all:basic"))
}

func TestReadThroughCachesEmptySlice(t *testing.T) {
	svc, mr := newTestService(t)

	result, err := ReadThrough(context.Background(), svc, "website:all:basic", 0,
		func(ctx context.Context) ([]testEntity, error) {
			return []testEntity{}, nil
		})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, mr.Exists("pubsite:website:all:basic"))
}

func TestReadThroughPropagatesLoaderError(t *testing.T) {
	svc, mr := newTestService(t)

	wantErr := errors.New("record not found")
	_, err := ReadThrough(context.Background(), svc, "publisher:id:9:basic", 0,
		func(ctx context.Context) (*testEntity, error) {
			return nil, wantErr
		})
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, mr.Exists("pubsite:publisher:id:9:basic"))
}

func TestReadThroughDegradesWhenStoreUnavailable(t *testing.T) {
	svc := NewService(&failingStore{}, time.Minute, testCacheLogger())

	result, err := ReadThrough(context.Background(), svc, "publisher:id:1:basic", 0,
		func(ctx context.Context) (*testEntity, error) {
			return &testEntity{ID: 1, Name: "acme"}, nil
		})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "acme", result.Name)
}

func TestReadThroughOverwritesCorruptEntry(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("pubsite:publisher:id:1:basic", "not json"))

	result, err := ReadThrough(ctx, svc, "publisher:id:1:basic", 0,
		func(ctx context.Context) (*testEntity, error) {
			return &testEntity{ID: 1, Name: "acme"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "acme", result.Name)

	raw, err := mr.Get("pubsite:publisher:id:1:basic")
	require.NoError(t, err)
	assert.Contains(t, raw, `"acme"`)
}

func TestInvalidateDeletesAllKeys(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	keys := InvalidationSet(NamespaceWebsite, 42, []int64{3})
	for _, k := range keys {
		require.NoError(t, mr.Set("pubsite:"+k, "v"))
	}
	require.NoError(t, mr.Set("pubsite:publisher:id:8:basic", "untouched"))

	svc.Invalidate(ctx, keys)

	for _, k := range keys {
		assert.False(t, mr.Exists("pubsite:"+k), "key %s should be gone", k)
	}
	assert.True(t, mr.Exists("pubsite:publisher:id:8:basic"))
}

func TestInvalidateSwallowsStoreFailures(t *testing.T) {
	svc := NewService(&failingStore{}, time.Minute, testCacheLogger())

	// must not panic or block
	svc.Invalidate(context.Background(), []string{"a", "b", "c"})
}

func TestInvalidateEmptyKeySet(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Invalidate(context.Background(), nil)
}

func TestServicePing(t *testing.T) {
	svc, mr := newTestService(t)
	assert.NoError(t, svc.Ping(context.Background()))

	mr.Close()
	assert.Error(t, svc.Ping(context.Background()))
}

func TestHealthChecker(t *testing.T) {
	svc, _ := newTestService(t)
	hc := NewHealthChecker(svc)

	assert.Equal(t, "cache", hc.Name())
	assert.NoError(t, hc.Check(context.Background()))

	var nilChecker = NewHealthChecker(nil)
	assert.Error(t, nilChecker.Check(context.Background()))
}
