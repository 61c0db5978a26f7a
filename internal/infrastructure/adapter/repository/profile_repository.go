package repository

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository manages buyer and seller profiles using GORM
type ProfileRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func buyerToEntity(m *model.BuyerProfile) *entity.BuyerProfile {
	return &entity.BuyerProfile{
		ID:                 m.ID,
		UserID:             m.UserID,
		ExternalCustomerID: m.ExternalCustomerID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func sellerToEntity(m *model.SellerProfile) *entity.SellerProfile {
	return &entity.SellerProfile{
		ID:                  m.ID,
		UserID:              m.UserID,
		ExternalAccountID:   deref(m.ExternalAccountID),
		OnboardingCompleted: m.OnboardingCompleted,
		ChargesEnabled:      m.ChargesEnabled,
		PayoutsEnabled:      m.PayoutsEnabled,
		AccountStatus:       m.AccountStatus,
		Capabilities:        m.Capabilities.Data(),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GetBuyer retrieves the buyer profile of a user
func (r *ProfileRepository) GetBuyer(ctx context.Context, userID uint64) (*entity.BuyerProfile, error) {
	var row model.BuyerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrProfileNotFound)
	}
	return buyerToEntity(&row), nil
}

// SaveBuyer upserts a buyer profile. A stored customer id wins over the new one,
// so concurrent checkouts converge on a single processor customer.
func (r *ProfileRepository) SaveBuyer(ctx context.Context, profile *entity.BuyerProfile) (*entity.BuyerProfile, error) {
	row := model.BuyerProfile{
		UserID:             profile.UserID,
		ExternalCustomerID: profile.ExternalCustomerID,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "external_customer_id"},
				Value:  gorm.Expr("COALESCE(NULLIF(buyer_profiles.external_customer_id, ''), EXCLUDED.external_customer_id)"),
			},
			{
				Column: clause.Column{Name: "updated_at"},
				Value:  gorm.Expr("EXCLUDED.updated_at"),
			},
		},
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Failed to save buyer profile", map[string]any{
			"user_id": profile.UserID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrProfileNotFound)
	}

	return r.GetBuyer(ctx, profile.UserID)
}

// GetSeller retrieves the seller profile of a user
func (r *ProfileRepository) GetSeller(ctx context.Context, userID uint64) (*entity.SellerProfile, error) {
	var row model.SellerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrProfileNotFound)
	}
	return sellerToEntity(&row), nil
}

// GetSellerByAccountID retrieves a seller profile by its connected account id
func (r *ProfileRepository) GetSellerByAccountID(ctx context.Context, accountID string) (*entity.SellerProfile, error) {
	var row model.SellerProfile
	if err := r.db.WithContext(ctx).Where("external_account_id = ?", accountID).First(&row).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrProfileNotFound)
	}
	return sellerToEntity(&row), nil
}

// UpdateSeller writes the onboarding mirror of a seller profile
func (r *ProfileRepository) UpdateSeller(ctx context.Context, profile *entity.SellerProfile) error {
	result := r.db.WithContext(ctx).Model(&model.SellerProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"onboarding_completed": profile.OnboardingCompleted,
			"charges_enabled":      profile.ChargesEnabled,
			"payouts_enabled":      profile.PayoutsEnabled,
			"account_status":       profile.AccountStatus,
			"capabilities":         datatypes.NewJSONType(profile.Capabilities),
			"updated_at":           profile.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update seller profile", map[string]any{
			"user_id": profile.UserID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrProfileNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProfileNotFound
	}
	return nil
}

// WebhookEventRepository is the ledger of verified deliveries using GORM
type WebhookEventRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

var _ persistence.WebhookEventRepository = (*WebhookEventRepository)(nil)

// NewWebhookEventRepository creates a new WebhookEventRepository instance
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:              db,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByEventID retrieves a ledger row by the processor's event id
func (r *WebhookEventRepository) GetByEventID(ctx context.Context, eventID string) (*entity.WebhookEvent, error) {
	var row model.WebhookEvent
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&row).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound)
	}
	return &entity.WebhookEvent{
		ID:              row.ID,
		EventID:         row.EventID,
		Type:            entity.EventType(row.Type),
		Channel:         entity.Channel(row.Channel),
		Payload:         []byte(row.Payload),
		ProcessedAt:     row.ProcessedAt,
		ProcessingError: row.ProcessingError,
		CreatedAt:       row.CreatedAt,
	}, nil
}

// Save inserts or updates a ledger row keyed by event id
func (r *WebhookEventRepository) Save(ctx context.Context, event *entity.WebhookEvent) error {
	row := model.WebhookEvent{
		EventID:         event.EventID,
		Type:            string(event.Type),
		Channel:         string(event.Channel),
		Payload:         datatypes.JSON(event.Payload),
		ProcessedAt:     event.ProcessedAt,
		ProcessingError: event.ProcessingError,
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.CreatedAt,
	}
	if event.ProcessedAt != nil {
		row.UpdatedAt = *event.ProcessedAt
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"processed_at", "processing_error", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return r.errorClassifier.ToDomain(err, errs.ErrNotFound)
	}
	event.ID = row.ID
	return nil
}
