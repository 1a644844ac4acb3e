package cache

import (
	"net/http"

	"github.com/KOMKZ/go-pubsite-service/errcode"
)

// Business codes within the cache module (70xxxx)
const (
	errCodeCacheMiss   = 1
	errCodeStoreGet    = 2
	errCodeStoreSet    = 3
	errCodeStoreDelete = 4
	errCodeStorePing   = 5
	errCodeSerialize   = 6
	errCodeDeserialize = 7
)

var (
	// ErrCacheMiss requested key is absent (not a failure)
	ErrCacheMiss = errcode.New(
		errcode.ModuleCache, errCodeCacheMiss,
		"cache", "error.cache.miss", "cache miss",
		http.StatusOK,
	)

	// ErrStoreGet the underlying store failed on read
	ErrStoreGet = errcode.New(
		errcode.ModuleCache, errCodeStoreGet,
		"cache", "error.cache.store_get", "cache store get failed",
		http.StatusInternalServerError,
	)

	// ErrStoreSet the underlying store failed on write
	ErrStoreSet = errcode.New(
		errcode.ModuleCache, errCodeStoreSet,
		"cache", "error.cache.store_set", "cache store set failed",
		http.StatusInternalServerError,
	)

	// ErrStoreDelete the underlying store failed on delete
	ErrStoreDelete = errcode.New(
		errcode.ModuleCache, errCodeStoreDelete,
		"cache", "error.cache.store_delete", "cache store delete failed",
		http.StatusInternalServerError,
	)

	// ErrStorePing the underlying store did not answer a ping
	ErrStorePing = errcode.New(
		errcode.ModuleCache, errCodeStorePing,
		"cache", "error.cache.store_ping", "cache store ping failed",
		http.StatusInternalServerError,
	)

	// ErrSerialize value could not be serialized for storage
	ErrSerialize = errcode.New(
		errcode.ModuleCache, errCodeSerialize,
		"cache", "error.cache.serialize", "cache serialize failed",
		http.StatusInternalServerError,
	)

	// ErrDeserialize stored bytes could not be deserialized
	ErrDeserialize = errcode.New(
		errcode.ModuleCache, errCodeDeserialize,
		"cache", "error.cache.deserialize", "cache deserialize failed",
		http.StatusInternalServerError,
	)
)
