package errcode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ModulePublisher, 1, "publisher", "error.publisher.not_found", "publisher not found", http.StatusNotFound)

	assert.Equal(t, 200001, err.Code())
	assert.Equal(t, "publisher", err.Module())
	assert.Equal(t, "error.publisher.not_found", err.MsgKey())
	assert.Equal(t, "publisher not found", err.Message())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestNew_DefaultHTTPStatus(t *testing.T) {
	err := New(ModuleCache, 1, "cache", "error.cache.miss", "cache miss")
	assert.Equal(t, http.StatusOK, err.HTTPStatus())
}

func TestWrap(t *testing.T) {
	base := New(ModuleCache, 6, "cache", "error.cache.store_get", "store get failed", http.StatusInternalServerError)
	cause := errors.New("connection refused")

	wrapped := base.Wrap(cause)

	// Original instance untouched
	assert.Nil(t, base.Cause())
	assert.Equal(t, cause, wrapped.Cause())
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}

func TestIs_MatchesByCode(t *testing.T) {
	base := New(ModuleWebsite, 1, "website", "error.website.not_found", "website not found", http.StatusNotFound)
	reworded := base.WithMsgf("website %d not found", 7)
	wrapped := base.Wrap(errors.New("row missing"))

	assert.True(t, errors.Is(reworded, base))
	assert.True(t, errors.Is(wrapped, base))

	other := New(ModuleWebsite, 2, "website", "error.website.invalid", "invalid website", http.StatusBadRequest)
	assert.False(t, errors.Is(other, base))
	assert.False(t, errors.Is(base, errors.New("plain")))
}

func TestIs_ThroughFmtWrap(t *testing.T) {
	base := New(ModulePublisher, 1, "publisher", "error.publisher.not_found", "publisher not found", http.StatusNotFound)
	chained := fmt.Errorf("list publishers: %w", base.WithMsgf("publisher %d not found", 42))

	assert.True(t, errors.Is(chained, base))
}

func TestWithData(t *testing.T) {
	base := New(ModuleCommon, 1010, "common", "error.common.validation_failed", "validation failed", http.StatusBadRequest)
	withData := base.WithData("fields", map[string]string{"name": "cannot be blank"})

	require.NotNil(t, withData.Data())
	assert.Contains(t, withData.Data(), "fields")
	// base data map untouched
	assert.NotContains(t, base.Data(), "fields")
}

func TestWithMsg(t *testing.T) {
	base := New(ModuleCommon, 1, "common", "error.common.internal", "internal error", http.StatusInternalServerError)
	changed := base.WithMsg("boom")

	assert.Equal(t, "boom", changed.Message())
	assert.Equal(t, "internal error", base.Message())
	assert.Equal(t, base.Code(), changed.Code())
}
