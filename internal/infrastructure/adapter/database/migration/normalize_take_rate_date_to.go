package migration

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"gorm.io/gorm"
)

// NormalizeTakeRateDateTo replaces open-ended take rate windows stored as NULL
// with the far-future sentinel, so window lookups need a single predicate.
type NormalizeTakeRateDateTo struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeTakeRateDateTo creates a new migration instance
func NewNormalizeTakeRateDateTo(db *gorm.DB, logger coreport.Logger) *NormalizeTakeRateDateTo {
	return &NormalizeTakeRateDateTo{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *NormalizeTakeRateDateTo) Run(ctx context.Context) error {
	m.logger.Info("Normalizing open-ended take rate windows", nil)

	db := m.db.WithContext(ctx)

	var nullable bool
	err := db.Raw(`
		SELECT is_nullable = 'YES'
		FROM information_schema.columns
		WHERE table_name = 'take_rates' AND column_name = 'date_to'
	`).Scan(&nullable).Error
	if err != nil {
		m.logger.Error("Failed to inspect take_rates.date_to", map[string]any{"error": err.Error()})
		return err
	}

	result := db.Exec(`UPDATE take_rates SET date_to = ? WHERE date_to IS NULL`, entity.OpenEndedDate)
	if result.Error != nil {
		m.logger.Error("Failed to backfill take_rates.date_to", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	if nullable {
		if err := db.Exec(`ALTER TABLE take_rates ALTER COLUMN date_to SET NOT NULL`).Error; err != nil {
			m.logger.Error("Failed to make take_rates.date_to NOT NULL", map[string]any{"error": err.Error()})
			return err
		}
	}

	m.logger.Info("Normalized open-ended take rate windows", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}
