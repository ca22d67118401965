package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
)

// MockLogger is a mock implementation of the Logger port
type MockLogger struct {
	mock.Mock
}

// SetLevel mocks setting the minimum log level
func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

// GetLevel mocks getting the current log level
func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

// Debug mocks logging a debug message
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info mocks logging an info message
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn mocks logging a warning message
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error mocks logging an error message
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush mocks flushing buffered logs
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
