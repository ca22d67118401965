package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
)

// RetryConfig controls backoff behavior for transient store errors
type RetryConfig struct {
	MaxRetries   int
	BaseInterval time.Duration
	MaxInterval  time.Duration
	// JitterFactor (0.0-1.0) spreads concurrent retries apart
	JitterFactor float64
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   5,
		BaseInterval: 100 * time.Millisecond,
		MaxInterval:  2 * time.Second,
		JitterFactor: 0.2,
	}
}

// backoff computes the wait before retry number attempt (0-based),
// doubling from BaseInterval and capped at MaxInterval, plus jitter
func (c RetryConfig) backoff(attempt int) time.Duration {
	wait := c.BaseInterval << uint(attempt)
	if wait > c.MaxInterval {
		wait = c.MaxInterval
	}
	if c.JitterFactor > 0 {
		frac := float64(time.Now().UnixNano()%100) / 100.0
		wait += time.Duration(float64(wait) * c.JitterFactor * frac)
	}
	return wait
}

// RetryOnTransientError runs operation until it succeeds, fails with a
// permanent error, exhausts MaxRetries, or the context is canceled
func RetryOnTransientError(ctx context.Context, config RetryConfig, operation func() error, logger coreport.Logger) error {
	var err error

	for attempt := 0; attempt < config.MaxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !isTransientError(err) {
			return err
		}

		wait := config.backoff(attempt)
		logger.Warn("Transient store error, backing off", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"backoff":     wait.String(),
		})

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			logger.Warn("Retry abandoned, context canceled", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("Retries exhausted", map[string]any{
		"max_retries": config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// isTransientError reports whether an error is worth retrying. Covers
// sqlite write contention as well as network failures against a
// postgres server.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"database is locked",
		"database table is locked",
		"deadlock",
		"serialization",
		"connection reset",
		"connection refused",
		"timeout",
		"too many connections",
		"server closed",
		"broken pipe",
		"eof",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
