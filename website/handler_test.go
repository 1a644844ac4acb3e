package website

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KOMKZ/go-pubsite-service/testutil"
)

func TestWebsiteEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, db, _ := newTestService(t)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), svc)

	acme := seedPublisher(t, db, "acme")
	globex := seedPublisher(t, db, "globex")
	seedWebsite(t, db, "acme-news", acme.ID)
	seedWebsite(t, db, "globex-news", globex.ID)

	// full list
	w := testutil.NewRequest(http.MethodGet, "/api/v1/websites").Do(engine)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 2)

	// scoped by publisherId query
	w = testutil.NewRequest(http.MethodGet, "/api/v1/websites").
		WithQuery("publisherId", fmt.Sprintf("%d", acme.ID)).
		Do(engine)
	require.Equal(t, http.StatusOK, w.Code)

	listResp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, "acme-news", listResp.Data[0].Name)

	// upsert referencing a missing publisher answers 404
	w = testutil.NewRequest(http.MethodPut, "/api/v1/websites").
		WithJSON(UpsertInput{Name: "orphan", PublisherID: 999}).
		Do(engine)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebsiteDeleteMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _, _ := newTestService(t)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), svc)

	w := testutil.NewRequest(http.MethodDelete, "/api/v1/websites/42").Do(engine)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
