package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/robfig/cron/v3"
)

// PoolObserver receives connection pool statistics
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

// ConnectionPoolMonitor samples the connection pool on a schedule
type ConnectionPoolMonitor struct {
	db        *sql.DB
	observer  PoolObserver
	logger    coreport.Logger
	scheduler *cron.Cron
	mutex     sync.RWMutex
	last      sql.DBStats
}

// NewConnectionPoolMonitor creates a monitor for db; observer may be nil
func NewConnectionPoolMonitor(db *sql.DB, observer PoolObserver, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		observer: observer,
		logger:   logger,
	}
}

// Start samples once and then every interval
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid monitor interval: %s", interval)
	}

	m.collect()

	m.scheduler = cron.New()
	if _, err := m.scheduler.AddFunc(fmt.Sprintf("@every %s", interval), m.collect); err != nil {
		return fmt.Errorf("failed to schedule pool monitor: %w", err)
	}
	m.scheduler.Start()

	m.logger.Info("Database pool monitoring started", map[string]any{"interval": interval.String()})
	return nil
}

// Stop stops the schedule and waits for a running sample to finish
func (m *ConnectionPoolMonitor) Stop() {
	if m.scheduler == nil {
		return
	}
	<-m.scheduler.Stop().Done()
	m.scheduler = nil
}

// Stats returns the most recent sample
func (m *ConnectionPoolMonitor) Stats() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect() {
	stats := m.db.Stats()

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if m.observer != nil {
		m.observer.ObservePool(stats)
	}

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.8 {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
