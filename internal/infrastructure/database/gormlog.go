package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	applog "github.com/nexus-desk/nexus/internal/shared/logger"
)

const slowQuery = 200 * time.Millisecond

// queryLog routes gorm's output into the application logger. Every statement
// is logged at debug, slow ones at warn and failures at error.
type queryLog struct {
	level gormlogger.LogLevel
}

var _ gormlogger.Interface = queryLog{}

func (q queryLog) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	q.level = level
	return q
}

func (q queryLog) Info(_ context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Info {
		applog.Info("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (q queryLog) Warn(_ context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Warn {
		applog.Warn("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (q queryLog) Error(_ context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Error {
		applog.Error("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (q queryLog) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.level <= gormlogger.Silent {
		return
	}
	took := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && q.level >= gormlogger.Error:
		applog.Error("query failed", "sql", sql, "rows", rows, "took", took, "error", err)
	case took > slowQuery && q.level >= gormlogger.Warn:
		applog.Warn("slow query", "sql", sql, "rows", rows, "took", took)
	case q.level >= gormlogger.Info:
		applog.Debug("query", "sql", sql, "rows", rows, "took", took)
	}
}
