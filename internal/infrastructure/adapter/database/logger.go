package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold marks statements worth a warning on their own
const slowQueryThreshold = 200 * time.Millisecond

// GormLogBridge routes GORM's logger.Interface into the core logging port,
// so SQL traces land in the same structured stream as everything else
type GormLogBridge struct {
	core         coreport.Logger
	level        logger.LogLevel
	timeProvider coreport.TimeProvider
}

// NewDatabaseLoggerWithTimeProvider builds the bridge at the given level
func NewDatabaseLoggerWithTimeProvider(core coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &GormLogBridge{
		core:         core,
		level:        parseGormLogLevel(level),
		timeProvider: timeProvider,
	}
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode returns a copy at the requested level, per the gorm contract
func (b *GormLogBridge) LogMode(level logger.LogLevel) logger.Interface {
	clone := *b
	clone.level = level
	return &clone
}

func (b *GormLogBridge) Info(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= logger.Info {
		b.core.Info(msg, map[string]any{"source": "database"})
	}
}

func (b *GormLogBridge) Warn(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= logger.Warn {
		b.core.Warn(msg, map[string]any{"source": "database"})
	}
}

func (b *GormLogBridge) Error(_ context.Context, msg string, _ ...interface{}) {
	if b.level >= logger.Error {
		b.core.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs each executed statement: errors at error level, slow
// statements at warn, the rest at debug to keep the stream quiet
func (b *GormLogBridge) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if b.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	if b.timeProvider != nil {
		elapsed = b.timeProvider.Since(begin).Std()
	}

	sql, rows := fc()
	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
		"source":  "database",
	}
	if kind := statementKind(sql); kind != "" {
		fields["type"] = kind
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && b.level >= logger.Error:
		b.core.Error("SQL Error", fields)
	case elapsed > slowQueryThreshold:
		b.core.Warn("Slow SQL Query", fields)
	case b.level >= logger.Info:
		b.core.Debug("SQL Query", fields)
	}
}

// statementKind classifies a statement by its leading keyword
func statementKind(sql string) string {
	head := strings.ToUpper(strings.TrimSpace(sql))
	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "PRAGMA", "CREATE"} {
		if strings.HasPrefix(head, kind) {
			return kind
		}
	}
	return ""
}
