package fee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// Resolver picks the take rate applying to a seller at an instant
type Resolver struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewResolver creates a new Resolver
func NewResolver(uow persistence.UnitOfWork, logger coreport.Logger) *Resolver {
	return &Resolver{
		uow:    uow,
		logger: logger,
	}
}

// Resolve returns the seller-scoped policy covering at, falling back to the default policy.
// Among overlapping policies the one with the latest date_from wins.
func (r *Resolver) Resolve(ctx context.Context, sellerUserID uint64, at time.Time) (*entity.TakeRate, error) {
	repo := r.uow.GetTakeRateRepository(ctx)

	rate, err := repo.FindForSeller(ctx, sellerUserID, at)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to load seller take rate: %w", err)
	}

	rate, err = repo.FindDefault(ctx, at)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to load default take rate: %w", err)
	}

	r.logger.Error("No take rate configured", map[string]any{
		"seller_user_id": sellerUserID,
		"at":             at,
	})
	return nil, errs.NewConfigurationError(sellerUserID, at)
}

// Split resolves the policy for the seller and divides total accordingly
func (r *Resolver) Split(ctx context.Context, sellerUserID uint64, total int64, at time.Time) (entity.FeeSplit, error) {
	rate, err := r.Resolve(ctx, sellerUserID, at)
	if err != nil {
		return entity.FeeSplit{}, err
	}

	split, err := entity.SplitFee(total, rate.Rate)
	if err != nil {
		return entity.FeeSplit{}, err
	}

	r.logger.Debug("Fee split computed", map[string]any{
		"seller_user_id": sellerUserID,
		"take_rate":      rate.Rate.String(),
		"total_amount":   split.Total,
		"platform_fee":   split.PlatformFee,
		"seller_amount":  split.SellerAmount,
	})
	return split, nil
}

// AddRate stores a new policy. A nil seller creates a default policy and a zero dateTo is open-ended.
func (r *Resolver) AddRate(
	ctx context.Context,
	sellerUserID *uint64,
	rate decimal.Decimal,
	dateFrom, dateTo time.Time,
) (*entity.TakeRate, error) {
	takeRate, err := entity.NewTakeRate(sellerUserID, rate, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	if err := r.uow.GetTakeRateRepository(ctx).Create(ctx, takeRate); err != nil {
		return nil, fmt.Errorf("failed to store take rate: %w", err)
	}

	r.logger.Info("Take rate added", map[string]any{
		"take_rate_id": takeRate.ID,
		"is_default":   takeRate.IsDefault,
		"take_rate":    takeRate.Rate.String(),
		"date_from":    takeRate.DateFrom,
		"date_to":      takeRate.DateTo,
	})
	return takeRate, nil
}
