package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// GormAdapter routes gorm's SQL tracing through Logger. Statements are traced
// at debug, slow statements at warn and failures at error. Record-not-found is
// not treated as a failure.
type GormAdapter struct {
	log           Logger
	slowThreshold time.Duration
}

func NewGormAdapter(log Logger, slowThreshold time.Duration) *GormAdapter {
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowQueryThreshold
	}
	return &GormAdapter{log: log.With("component", "gorm"), slowThreshold: slowThreshold}
}

func (g *GormAdapter) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return g
}

func (g *GormAdapter) Info(_ context.Context, message string, args ...interface{}) {
	g.log.Info(fmt.Sprintf(message, args...))
}

func (g *GormAdapter) Warn(_ context.Context, message string, args ...interface{}) {
	g.log.Warn(fmt.Sprintf(message, args...))
}

func (g *GormAdapter) Error(_ context.Context, message string, args ...interface{}) {
	g.log.Error(fmt.Sprintf(message, args...))
}

func (g *GormAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.InternalError("db: query failed", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case elapsed > g.slowThreshold:
		sql, rows := fc()
		g.log.Warn("db: slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	case g.log.Enabled(slog.LevelDebug):
		sql, rows := fc()
		g.log.Debug("db: query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
