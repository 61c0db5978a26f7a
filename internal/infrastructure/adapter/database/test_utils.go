package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager, skipping the test when TEST_DB_HOST is unset
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv("TEST_DB_HOST")
	if !ok || host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Host:            host,
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "marketplace_payments_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
		LockTimeout:     2 * time.Second,
		TxRetries:       3,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every table and runs the full migration
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := dropAllTables(m.Manager.DB()); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// dropAllTables drops all tables in the test database
func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// TruncateAllTables truncates all tables except the migration history
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema() AND tablename <> 'migration_versions') LOOP
				EXECUTE 'TRUNCATE TABLE ' || quote_ident(r.tablename) || ' RESTART IDENTITY CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestListing stores a published listing owned by sellerUserID
func (m *TestDBManager) CreateTestListing(t *testing.T, id, sellerUserID uint64, price int64) {
	t.Helper()

	listing := model.Listing{
		ID:           id,
		Kind:         "product",
		Title:        fmt.Sprintf("Listing %d", id),
		Price:        price,
		SellerUserID: sellerUserID,
		Status:       "PUBLISHED",
	}
	if err := m.Manager.DB().Create(&listing).Error; err != nil {
		t.Fatalf("Failed to create test listing: %v", err)
	}
}

// CreateTestSeller stores a seller profile linked to a connected account
func (m *TestDBManager) CreateTestSeller(t *testing.T, userID uint64, accountID string) {
	t.Helper()

	now := m.TimeProvider.Now()
	seller := model.SellerProfile{
		UserID:            userID,
		ExternalAccountID: &accountID,
		AccountStatus:     "onboarding",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := m.Manager.DB().Create(&seller).Error; err != nil {
		t.Fatalf("Failed to create test seller: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
