package logger

import (
	"github.com/zakinadhif/cashierku/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts zap to the core.Logger port. The level gate lives
// here rather than in zap so SetLevel works without rebuilding the core.
type ZapLogger struct {
	zl    *zap.Logger
	level core.LogLevel
}

// NewZapLogger builds a logger: JSON output in production, colored
// console output in development
func NewZapLogger(production bool) core.Logger {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zl, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{zl: zl, level: core.LogLevelInfo}
}

// NewDefaultLogger returns a development-mode logger
func NewDefaultLogger() core.Logger {
	return NewZapLogger(false)
}

func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if l.level <= core.LogLevelDebug {
		l.zl.Debug(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Info(message string, fields map[string]any) {
	if l.level <= core.LogLevelInfo {
		l.zl.Info(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if l.level <= core.LogLevelWarn {
		l.zl.Warn(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Error(message string, fields map[string]any) {
	if l.level <= core.LogLevelError {
		l.zl.Error(message, toZapFields(fields)...)
	}
}

// Flush drains zap's buffer; called on shutdown
func (l *ZapLogger) Flush() error {
	return l.zl.Sync()
}

func toZapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
