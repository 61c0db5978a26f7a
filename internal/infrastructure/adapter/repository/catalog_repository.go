package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ListingRepository reads catalog listings using GORM
type ListingRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

var _ persistence.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository instance
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{
		db:              db,
		errorClassifier: NewErrorClassifier(),
	}
}

func listingToEntity(m *model.Listing) *entity.Listing {
	return &entity.Listing{
		ID:           m.ID,
		Kind:         entity.ListingKind(m.Kind),
		Title:        m.Title,
		Description:  m.Description,
		Price:        m.Price,
		SellerUserID: m.SellerUserID,
		Status:       entity.PublicationStatus(m.Status),
		PropertyName: m.PropertyName,
		ThumbnailURL: m.ThumbnailURL,
	}
}

// GetByID retrieves a listing
func (r *ListingRepository) GetByID(ctx context.Context, id uint64) (*entity.Listing, error) {
	var row model.Listing
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrListingNotFound)
	}
	return listingToEntity(&row), nil
}

// GetByIDs retrieves several listings keyed by id
func (r *ListingRepository) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*entity.Listing, error) {
	out := make(map[uint64]*entity.Listing, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []model.Listing
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrListingNotFound)
	}
	for i := range rows {
		out[rows[i].ID] = listingToEntity(&rows[i])
	}
	return out, nil
}

// TakeRateRepository stores fee policies using GORM
type TakeRateRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TakeRateRepository = (*TakeRateRepository)(nil)

// NewTakeRateRepository creates a new TakeRateRepository instance
func NewTakeRateRepository(db *gorm.DB, logger coreport.Logger) *TakeRateRepository {
	return &TakeRateRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func takeRateToEntity(m *model.TakeRate) *entity.TakeRate {
	return &entity.TakeRate{
		ID:        m.ID,
		UserID:    m.UserID,
		Rate:      m.TakeRate,
		DateFrom:  m.DateFrom,
		DateTo:    m.DateTo,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

// FindForSeller returns the seller-scoped policy covering at, latest date_from first
func (r *TakeRateRepository) FindForSeller(ctx context.Context, sellerUserID uint64, at time.Time) (*entity.TakeRate, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", sellerUserID, false)
	return r.covering(query, at)
}

// FindDefault returns the default policy covering at, latest date_from first
func (r *TakeRateRepository) FindDefault(ctx context.Context, at time.Time) (*entity.TakeRate, error) {
	query := r.db.WithContext(ctx).
		Where("user_id IS NULL AND is_default = ?", true)
	return r.covering(query, at)
}

func (r *TakeRateRepository) covering(query *gorm.DB, at time.Time) (*entity.TakeRate, error) {
	var row model.TakeRate
	err := query.
		Where("date_from <= ? AND date_to >= ?", at, at).
		Order("date_from DESC, id DESC").
		First(&row).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound)
	}
	return takeRateToEntity(&row), nil
}

// Create stores a new policy
func (r *TakeRateRepository) Create(ctx context.Context, rate *entity.TakeRate) error {
	row := model.TakeRate{
		UserID:    rate.UserID,
		TakeRate:  rate.Rate,
		DateFrom:  rate.DateFrom,
		DateTo:    rate.DateTo,
		IsDefault: rate.IsDefault,
		CreatedAt: rate.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to create take rate", map[string]any{
			"rate":  rate.Rate.String(),
			"error": err.Error(),
		})
		return r.errorClassifier.ToDomain(err, errs.ErrNotFound)
	}
	rate.ID = row.ID
	return nil
}
