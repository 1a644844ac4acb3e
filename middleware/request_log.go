package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KOMKZ/go-pubsite-service/logger"
)

// RequestLogConfig HTTP request log configuration
type RequestLogConfig struct {
	// SkipPaths paths that are never logged, e.g. probe endpoints
	SkipPaths []string
}

// DefaultRequestLogConfig returns the default configuration
func DefaultRequestLogConfig() RequestLogConfig {
	return RequestLogConfig{
		SkipPaths: []string{},
	}
}

// RequestLog structured request logging middleware with default config
func RequestLog(log *logger.CtxZapLogger) gin.HandlerFunc {
	return RequestLogWithConfig(DefaultRequestLogConfig(), log)
}

// RequestLogWithConfig structured request logging middleware.
// The level follows the status code: 5xx error, 4xx warn, otherwise info.
// Trace ids attach automatically through the ctx-aware logger.
func RequestLogWithConfig(cfg RequestLogConfig, log *logger.CtxZapLogger) gin.HandlerFunc {
	skipPathsMap := make(map[string]bool)
	for _, path := range cfg.SkipPaths {
		skipPathsMap[path] = true
	}

	return func(c *gin.Context) {
		if skipPathsMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", statusCode),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("body_size", c.Writer.Size()),
		}

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			fields = append(fields, zap.String("error", errorMessage))
		}

		ctx := c.Request.Context()
		switch {
		case statusCode >= 500:
			log.ErrorCtx(ctx, "http request", fields...)
		case statusCode >= 400:
			log.WarnCtx(ctx, "http request", fields...)
		default:
			log.InfoCtx(ctx, "http request", fields...)
		}
	}
}
