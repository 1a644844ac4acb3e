package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormZapLogger adapts CtxZapLogger to gorm's logger.Interface
type GormZapLogger struct {
	logger        *CtxZapLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormZapLogger creates a gorm logger backed by the module logger
// slowThreshold <= 0 disables slow query detection
func NewGormZapLogger(l *CtxZapLogger, slowThreshold time.Duration) *GormZapLogger {
	return &GormZapLogger{
		logger:        l,
		level:         gormlogger.Warn,
		slowThreshold: slowThreshold,
	}
}

// LogMode sets the log level (returns a copy per gorm contract)
func (g *GormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormZapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.InfoCtx(ctx, msg, zap.Any("data", data))
	}
}

func (g *GormZapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.WarnCtx(ctx, msg, zap.Any("data", data))
	}
}

func (g *GormZapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.ErrorCtx(ctx, msg, zap.Any("data", data))
	}
}

// Trace logs SQL execution (errors, slow queries, or everything at Info level)
func (g *GormZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		g.logger.ErrorCtx(ctx, "sql failed", append(fields, zap.Error(err))...)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		g.logger.WarnCtx(ctx, "slow sql", fields...)
	case g.level >= gormlogger.Info:
		g.logger.DebugCtx(ctx, "sql", fields...)
	}
}
