package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/KOMKZ/go-pubsite-service/logger"
)

const errorLoggingConfigKey = "httpx:error_logging_config"

// errorLoggingState preprocessed config plus the logger to use
type errorLoggingState struct {
	Enable          bool
	IgnoreStatusMap map[int]bool
	LogLevel        string
	Logger          *logger.CtxZapLogger
}

// ErrorLoggingMiddleware injects the error logging configuration and logger
// into the request context so HandleError can log without global state
func ErrorLoggingMiddleware(cfg ErrorLoggingConfig, log *logger.CtxZapLogger) gin.HandlerFunc {
	ignoreStatusMap := make(map[int]bool, len(cfg.IgnoreHTTPStatus))
	for _, status := range cfg.IgnoreHTTPStatus {
		ignoreStatusMap[status] = true
	}

	state := errorLoggingState{
		Enable:          cfg.Enable && log != nil,
		IgnoreStatusMap: ignoreStatusMap,
		LogLevel:        cfg.LogLevel,
		Logger:          log,
	}

	return func(c *gin.Context) {
		c.Set(errorLoggingConfigKey, state)
		c.Next()
	}
}

// getErrorLoggingState reads the injected state, logging disabled by default
func getErrorLoggingState(c *gin.Context) errorLoggingState {
	if val, exists := c.Get(errorLoggingConfigKey); exists {
		if state, ok := val.(errorLoggingState); ok {
			return state
		}
	}

	return errorLoggingState{
		IgnoreStatusMap: make(map[int]bool),
		LogLevel:        "error",
	}
}
