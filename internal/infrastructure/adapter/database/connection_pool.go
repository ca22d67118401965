package database

import (
	"fmt"
	"sync"
	"time"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
)

// PoolMetrics is a point-in-time snapshot of sql.DB pool statistics. For the
// sqlite driver the pool is capped at a single connection, so InUse > 0 simply
// means a statement is running.
type PoolMetrics struct {
	Open              int
	Idle              int
	InUse             int
	MaxOpen           int
	WaitCount         int64
	WaitDuration      time.Duration
	MaxIdleClosed     int64
	MaxLifetimeClosed int64
}

// ConnectionPoolMonitor samples pool statistics on a fixed interval and keeps
// the latest snapshot for the health endpoint
type ConnectionPoolMonitor struct {
	manager *Manager
	logger  coreport.Logger

	mu       sync.RWMutex
	snapshot PoolMetrics
	sampled  bool

	stop chan struct{}
}

// NewConnectionPoolMonitor creates a monitor over the manager's pool
func NewConnectionPoolMonitor(manager *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		manager: manager,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start takes an initial sample, then keeps sampling every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	go m.run(interval)
	return nil
}

func (m *ConnectionPoolMonitor) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.sample(); err != nil {
				m.logger.Error("Connection pool sample failed", map[string]any{
					"error": err.Error(),
				})
			}
		case <-m.stop:
			return
		}
	}
}

// Stop terminates the sampling goroutine
func (m *ConnectionPoolMonitor) Stop() {
	close(m.stop)
}

// GetMetrics returns the most recent snapshot, zero-valued before the first sample
func (m *ConnectionPoolMonitor) GetMetrics() PoolMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.sampled {
		return PoolMetrics{}
	}
	return m.snapshot
}

func (m *ConnectionPoolMonitor) sample() error {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to reach underlying sql.DB: %w", err)
	}

	stats := sqlDB.Stats()

	m.mu.Lock()
	m.snapshot = PoolMetrics{
		Open:              stats.OpenConnections,
		Idle:              stats.Idle,
		InUse:             stats.InUse,
		MaxOpen:           stats.MaxOpenConnections,
		WaitCount:         stats.WaitCount,
		WaitDuration:      stats.WaitDuration,
		MaxIdleClosed:     stats.MaxIdleClosed,
		MaxLifetimeClosed: stats.MaxLifetimeClosed,
	}
	m.sampled = true
	m.mu.Unlock()

	// 80% utilization is the warn threshold
	if stats.MaxOpenConnections > 1 && float64(stats.InUse) > 0.8*float64(stats.MaxOpenConnections) {
		m.logger.Warn("Connection pool nearly exhausted", map[string]any{
			"in_use":        stats.InUse,
			"max_open":      stats.MaxOpenConnections,
			"idle":          stats.Idle,
			"wait_count":    stats.WaitCount,
			"wait_duration": stats.WaitDuration.String(),
		})
	}

	return nil
}
