package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager creates PostgreSQL indexes that GORM tags cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDefinition struct {
	name string
	sql  string
}

var indexDefinitions = []indexDefinition{
	{
		// At most one completed purchase per listing and buyer.
		name: "idx_transactions_completed_purchase",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_completed_purchase
			ON transactions (listing_id, buyer_user_id)
			WHERE transaction_status = 'COMPLETED'`,
	},
	{
		name: "idx_transactions_buyer_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_buyer_status
			ON transactions (buyer_user_id, transaction_status, updated_at DESC)`,
	},
	{
		name: "idx_take_rates_seller_window",
		sql: `CREATE INDEX IF NOT EXISTS idx_take_rates_seller_window
			ON take_rates (user_id, date_from DESC, date_to)
			WHERE is_default = false`,
	},
	{
		name: "idx_take_rates_default_window",
		sql: `CREATE INDEX IF NOT EXISTS idx_take_rates_default_window
			ON take_rates (date_from DESC, date_to)
			WHERE is_default = true`,
	},
	{
		name: "idx_audit_logs_transaction_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_audit_logs_transaction_created
			ON transaction_audit_logs (transaction_id, created_at)`,
	},
	{
		name: "idx_webhook_events_unprocessed",
		sql: `CREATE INDEX IF NOT EXISTS idx_webhook_events_unprocessed
			ON webhook_events (created_at)
			WHERE processed_at IS NULL`,
	},
}

// CreateIndexes creates every index in indexDefinitions
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range indexDefinitions {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("PostgreSQL indexes created successfully", map[string]any{
		"count": len(indexDefinitions),
	})
	return nil
}
