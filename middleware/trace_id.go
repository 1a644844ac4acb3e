// Package middleware provides the gin middleware stack: trace id
// propagation, panic recovery, request logging and CORS.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KOMKZ/go-pubsite-service/logger"
)

const (
	// TraceIDKeyDefault context key for the trace id
	TraceIDKeyDefault = "trace_id"

	// TraceIDHeaderDefault HTTP header carrying the trace id
	TraceIDHeaderDefault = "X-Trace-ID"
)

// TraceConfig trace id middleware configuration
type TraceConfig struct {
	// TraceIDKey context key (default "trace_id")
	TraceIDKey string

	// TraceIDHeader HTTP header name (default "X-Trace-ID")
	TraceIDHeader string

	// EnableResponseHeader echoes the trace id in the response header
	EnableResponseHeader bool

	// Generator custom trace id generator (default UUID v4)
	Generator func() string
}

// DefaultTraceConfig returns the default configuration
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		TraceIDKey:           TraceIDKeyDefault,
		TraceIDHeader:        TraceIDHeaderDefault,
		EnableResponseHeader: true,
		Generator:            func() string { return uuid.New().String() },
	}
}

// TraceID propagates a trace id through every request.
// An inbound header value is reused so ids survive across services,
// otherwise a fresh one is generated. The id is injected into the
// request context (picked up by the ctx-aware loggers) and into
// gin.Context for direct handler access.
func TraceID(cfg TraceConfig) gin.HandlerFunc {
	if cfg.TraceIDKey == "" {
		cfg.TraceIDKey = TraceIDKeyDefault
	}
	if cfg.TraceIDHeader == "" {
		cfg.TraceIDHeader = TraceIDHeaderDefault
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string { return uuid.New().String() }
	}

	return func(c *gin.Context) {
		traceID := c.GetHeader(cfg.TraceIDHeader)
		if traceID == "" {
			traceID = cfg.Generator()
		}

		ctx := logger.ContextWithTraceID(c.Request.Context(), cfg.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(cfg.TraceIDKey, traceID)

		if cfg.EnableResponseHeader {
			c.Writer.Header().Set(cfg.TraceIDHeader, traceID)
		}

		c.Next()
	}
}

// GetTraceID reads the trace id from gin.Context using the default key
func GetTraceID(c *gin.Context) string {
	return GetTraceIDWithKey(c, TraceIDKeyDefault)
}

// GetTraceIDWithKey reads the trace id from gin.Context
func GetTraceIDWithKey(c *gin.Context, key string) string {
	traceID, exists := c.Get(key)
	if !exists {
		return ""
	}
	if id, ok := traceID.(string); ok {
		return id
	}
	return ""
}
