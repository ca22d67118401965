package logger

import (
	"github.com/zakinadhif/cashierku/internal/domain/port/core"
)

// NoopLogger discards everything. Tests that don't assert on log output
// use it to keep the harness quiet.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a discarding logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *NoopLogger) GetLevel() core.LogLevel      { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
