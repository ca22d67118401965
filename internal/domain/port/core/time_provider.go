package core

import (
	"context"
	"time"
)

// Duration wraps time.Duration so domain code does not import time directly
type Duration time.Duration

const (
	Nanosecond  Duration = Duration(time.Nanosecond)
	Microsecond          = Duration(time.Microsecond)
	Millisecond          = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// Std unwraps back to time.Duration for stdlib interop
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock port, injectable so tests control time
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Sleep(d Duration)
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
