// Package logger provides zap-based module loggers with context-aware fields.
package logger

import (
	"go.uber.org/zap/zapcore"
)

// Config logger configuration (shared by all module loggers)
type Config struct {
	Level         string `mapstructure:"level"`          // debug, info, warn, error
	Encoding      string `mapstructure:"encoding"`       // json or console
	AppName       string `mapstructure:"app_name"`       // injected into every entry
	EnableConsole bool   `mapstructure:"enable_console"` // write to stdout
	EnableFile    bool   `mapstructure:"enable_file"`    // write rotated files
	BaseLogDir    string `mapstructure:"base_log_dir"`   // log root directory

	// File rotation (lumberjack)
	MaxSize    int  `mapstructure:"max_size"`    // max size per file (MB)
	MaxBackups int  `mapstructure:"max_backups"` // old files to keep
	MaxAge     int  `mapstructure:"max_age"`     // days to keep
	Compress   bool `mapstructure:"compress"`

	EnableCaller bool `mapstructure:"enable_caller"`

	// TraceID extraction
	EnableTraceID bool   `mapstructure:"enable_trace_id"`
	TraceIDKey    string `mapstructure:"trace_id_key"` // context key (default "trace_id")
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Encoding:      "json",
		EnableConsole: true,
		EnableFile:    false,
		BaseLogDir:    "logs",
		MaxSize:       100,
		MaxBackups:    3,
		MaxAge:        28,
		Compress:      true,
		EnableCaller:  true,
		EnableTraceID: true,
		TraceIDKey:    "trace_id",
	}
}

// ApplyDefaults fills zero-valued fields in place
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Level == "" {
		c.Level = defaults.Level
	}
	if c.Encoding == "" {
		c.Encoding = defaults.Encoding
	}
	if c.BaseLogDir == "" {
		c.BaseLogDir = defaults.BaseLogDir
	}
	if c.MaxSize == 0 {
		c.MaxSize = defaults.MaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = defaults.MaxBackups
	}
	if c.MaxAge == 0 {
		c.MaxAge = defaults.MaxAge
	}
	if c.TraceIDKey == "" {
		c.TraceIDKey = defaults.TraceIDKey
	}
}

// ParseLevel converts a level string into a zapcore level (unknown -> info)
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
