package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
)

// MockTimeProvider is a mock implementation of the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

// Now mocks returning the current time
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// Since mocks returning the time elapsed since t
func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

// Sleep mocks pausing the current goroutine
func (m *MockTimeProvider) Sleep(d coreport.Duration) {
	m.Called(d)
}

// WithTimeout mocks deriving a context with a timeout
func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}
