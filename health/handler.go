package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the health check endpoints
// GET /health           full dependency check
// GET /health/liveness  liveness probe, no dependency checks
// GET /health/readiness readiness probe, 200 only when fully healthy
type Handler struct {
	aggregator *Aggregator
}

// NewHandler creates a health check handler
func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{aggregator: aggregator}
}

// Handle serves the full health check
func (h *Handler) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := h.aggregator.Check(c.Request.Context())

		statusCode := http.StatusOK
		if response.Status == StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		// degraded still answers 200, the body carries the detail

		c.JSON(statusCode, response)
	}
}

// HandleLiveness answers the liveness probe
// Only proves the process is alive, dependencies are not checked
func (h *Handler) HandleLiveness() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "alive",
		})
	}
}

// HandleReadiness answers the readiness probe
// Returns 200 only when every dependency check passes
func (h *Handler) HandleReadiness() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := h.aggregator.Check(c.Request.Context())

		statusCode := http.StatusOK
		if response.Status != StatusHealthy {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status": response.Status,
		})
	}
}

// RegisterRoutes registers all health endpoints on the router
func RegisterRoutes(router gin.IRouter, aggregator *Aggregator) {
	if aggregator == nil {
		return
	}

	handler := NewHandler(aggregator)

	router.GET("/health", handler.Handle())
	router.GET("/health/liveness", handler.HandleLiveness())
	router.GET("/health/readiness", handler.HandleReadiness())
}
