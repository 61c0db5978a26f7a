package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/database/migration"
	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the connection pool, retrying with backoff until the database answers
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	attempt := 0
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = m.config.RetryDelay
	policy.MaxElapsedTime = 0
	retries := uint64(0)
	if m.config.RetryAttempts > 1 {
		retries = uint64(m.config.RetryAttempts - 1)
	}

	var gormDB *gorm.DB
	err := backoff.RetryNotify(func() error {
		attempt++
		db, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger:      NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc:     func() time.Time { return m.timeProvider.Now().UTC() },
			PrepareStmt: true,
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		gormDB = db
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx), func(err error, wait time.Duration) {
		m.logger.Warn("Retrying database connection", map[string]any{
			"attempt": attempt,
			"of":      m.config.RetryAttempts,
			"delay":   wait.String(),
			"error":   err.Error(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"port":           m.config.Port,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.connectionMonitor.Start(30 * time.Second)

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// RegisterMetrics exposes connection pool statistics to prometheus
func (m *Manager) RegisterMetrics(registerer prometheus.Registerer) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return registerer.Register(collectors.NewDBStatsCollector(sqlDB, m.config.Database))
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	retry := DefaultRetryConfig()
	retry.MaxRetries = m.config.TxRetries
	return NewUnitOfWork(m.db, m.logger, TxSettings{
		LockTimeout: m.config.LockTimeout,
		Retry:       retry,
	})
}

// MigrationManager returns a migration manager bound to the connection
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider)
}
