package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
)

// poolSaturation is the in-use share of MaxOpenConnections above which the monitor warns
const poolSaturation = 0.8

// ConnectionPoolMonitor periodically samples pool statistics and warns when the pool runs dry
type ConnectionPoolMonitor struct {
	db       *sql.DB
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.check(m.db.Stats())

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check(m.db.Stats())
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) check(stats sql.DBStats) {
	if stats.MaxOpenConnections <= 0 {
		return
	}
	if float64(stats.InUse) <= float64(stats.MaxOpenConnections)*poolSaturation {
		return
	}
	m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
		"in_use":     stats.InUse,
		"max_open":   stats.MaxOpenConnections,
		"idle":       stats.Idle,
		"wait_count": stats.WaitCount,
		"wait_time":  stats.WaitDuration.String(),
	})
}
