package core

// LogLevel is a logging severity threshold
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logging port. Fields are free-form key/value
// pairs; nil is accepted wherever no fields apply.
type Logger interface {
	// SetLevel raises or lowers the minimum level that gets emitted
	SetLevel(level LogLevel)
	// GetLevel reports the current minimum level
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush drains any buffered entries before shutdown
	Flush() error
}
