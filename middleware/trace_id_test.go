package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTraceIDGeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TraceID(DefaultTraceConfig()))

	var captured string
	router.GET("/", func(c *gin.Context) {
		captured = GetTraceID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, w.Header().Get(TraceIDHeaderDefault))
}

func TestTraceIDReusesInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TraceID(DefaultTraceConfig()))

	var captured string
	router.GET("/", func(c *gin.Context) {
		captured = GetTraceID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeaderDefault, "upstream-trace-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "upstream-trace-id", captured)
	assert.Equal(t, "upstream-trace-id", w.Header().Get(TraceIDHeaderDefault))
}

func TestTraceIDCustomGenerator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := DefaultTraceConfig()
	cfg.Generator = func() string { return "fixed-id" }

	router := gin.New()
	router.Use(TraceID(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "fixed-id", w.Header().Get(TraceIDHeaderDefault))
}

func TestGetTraceIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
