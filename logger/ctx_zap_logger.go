package logger

import (
	"context"

	"go.uber.org/zap"
)

// CtxZapLogger context-aware zap logger wrapper
// The module is bound at creation time; callers only pass ctx
type CtxZapLogger struct {
	base   *zap.Logger
	module string
	config *Config
}

// InfoCtx logs at info level, enriching fields from ctx
func (l *CtxZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Info(msg, l.enrichFields(ctx, fields)...)
}

// Info logs at info level without a context
func (l *CtxZapLogger) Info(msg string, fields ...zap.Field) {
	l.InfoCtx(context.Background(), msg, fields...)
}

// DebugCtx logs at debug level, enriching fields from ctx
func (l *CtxZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Debug(msg, l.enrichFields(ctx, fields)...)
}

// Debug logs at debug level without a context
func (l *CtxZapLogger) Debug(msg string, fields ...zap.Field) {
	l.DebugCtx(context.Background(), msg, fields...)
}

// WarnCtx logs at warn level, enriching fields from ctx
func (l *CtxZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Warn(msg, l.enrichFields(ctx, fields)...)
}

// Warn logs at warn level without a context
func (l *CtxZapLogger) Warn(msg string, fields ...zap.Field) {
	l.WarnCtx(context.Background(), msg, fields...)
}

// ErrorCtx logs at error level, enriching fields from ctx
func (l *CtxZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.base.Error(msg, l.enrichFields(ctx, fields)...)
}

// Error logs at error level without a context
func (l *CtxZapLogger) Error(msg string, fields ...zap.Field) {
	l.ErrorCtx(context.Background(), msg, fields...)
}

// With returns a logger carrying preset fields
func (l *CtxZapLogger) With(fields ...zap.Field) *CtxZapLogger {
	return &CtxZapLogger{
		base:   l.base.With(fields...),
		module: l.module,
		config: l.config,
	}
}

// GetZapLogger exposes the underlying *zap.Logger for third-party integrations
func (l *CtxZapLogger) GetZapLogger() *zap.Logger {
	return l.base
}

// enrichFields adds app_name and trace_id extracted from ctx
func (l *CtxZapLogger) enrichFields(ctx context.Context, fields []zap.Field) []zap.Field {
	enriched := make([]zap.Field, 0, len(fields)+2)

	if l.config != nil && l.config.AppName != "" {
		enriched = append(enriched, zap.String("app_name", l.config.AppName))
	}

	if l.config != nil && l.config.EnableTraceID {
		if traceID := traceIDFromContext(ctx, l.config.TraceIDKey); traceID != "" {
			enriched = append(enriched, zap.String("trace_id", traceID))
		}
	}

	return append(enriched, fields...)
}

type traceIDContextKey string

// ContextWithTraceID stores a trace id under the configured key
func ContextWithTraceID(ctx context.Context, key, traceID string) context.Context {
	return context.WithValue(ctx, traceIDContextKey(key), traceID)
}

func traceIDFromContext(ctx context.Context, key string) string {
	if key == "" {
		key = "trace_id"
	}
	if val, ok := ctx.Value(traceIDContextKey(key)).(string); ok {
		return val
	}
	return ""
}
