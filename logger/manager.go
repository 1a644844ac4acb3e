package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Manager creates and caches per-module loggers
type Manager struct {
	config  Config
	loggers map[string]*CtxZapLogger
	writers []*lumberjack.Logger
	mu      sync.RWMutex
}

// NewManager creates a logger manager
// Zero-valued config fields are filled with defaults
func NewManager(cfg Config) *Manager {
	cfg.ApplyDefaults()
	return &Manager{
		config:  cfg,
		loggers: make(map[string]*CtxZapLogger),
	}
}

// GetLogger returns the CtxZapLogger for a module (created on first use)
// The returned logger already carries the module field
func (m *Manager) GetLogger(moduleName string) *CtxZapLogger {
	m.mu.RLock()
	if l, ok := m.loggers[moduleName]; ok {
		m.mu.RUnlock()
		return l
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// double-check under write lock
	if l, ok := m.loggers[moduleName]; ok {
		return l
	}

	base := m.createLogger(moduleName).
		With(zap.String("module", moduleName)).
		WithOptions(zap.AddCallerSkip(1))

	l := &CtxZapLogger{
		base:   base,
		module: moduleName,
		config: &m.config,
	}
	m.loggers[moduleName] = l
	return l
}

// createLogger builds the underlying zap.Logger for a module
func (m *Manager) createLogger(moduleName string) *zap.Logger {
	encoder := m.createEncoder()
	level := ParseLevel(m.config.Level)

	var cores []zapcore.Core

	if m.config.EnableConsole {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	if m.config.EnableFile {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(m.config.BaseLogDir, moduleName+".log"),
			MaxSize:    m.config.MaxSize,
			MaxBackups: m.config.MaxBackups,
			MaxAge:     m.config.MaxAge,
			Compress:   m.config.Compress,
		}
		m.writers = append(m.writers, writer)
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), level))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}

	opts := []zap.Option{}
	if m.config.EnableCaller {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(zapcore.NewTee(cores...), opts...)
}

// createEncoder builds the encoder per config
func (m *Manager) createEncoder() zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	if m.config.Encoding == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// Close flushes and closes all file writers
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.writers {
		_ = w.Close()
	}
	return nil
}

// Shutdown implements the samber/do Shutdownable interface
func (m *Manager) Shutdown() error {
	return m.Close()
}

// NewTestManager returns a manager suitable for tests (console only, debug level)
func NewTestManager() *Manager {
	return NewManager(Config{
		Level:         "debug",
		Encoding:      "console",
		EnableConsole: false,
		EnableFile:    false,
	})
}
