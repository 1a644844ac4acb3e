package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KOMKZ/go-pubsite-service/validator"
)

type createReq struct {
	ID   int64  `uri:"id" json:"-"`
	Name string `json:"name"`
}

func (r *createReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

type createResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newWrapRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items/:id", Wrap(func(c *gin.Context, req *createReq) (*createResp, error) {
		return &createResp{ID: req.ID, Name: req.Name}, nil
	}))
	return router
}

func TestWrapBindsUriAndBody(t *testing.T) {
	router := newWrapRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/7", strings.NewReader(`{"name":"acme"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "acme", data["name"])
}

func TestWrapRunsValidation(t *testing.T) {
	router := newWrapRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/7", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, validator.ErrValidation.Code(), resp.Code)
}

func TestWrapRejectsMalformedBody(t *testing.T) {
	router := newWrapRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items/7", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type listReq struct {
		IncludeWebsites bool `form:"includeWebsites"`
	}

	router := gin.New()
	router.GET("/items", Wrap(func(c *gin.Context, req *listReq) (bool, error) {
		return req.IncludeWebsites, nil
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?includeWebsites=true", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Data)
}
