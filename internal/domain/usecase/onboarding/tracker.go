package onboarding

import (
	"context"
	"fmt"
	"maps"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
)

// Tracker mirrors connected-account onboarding state onto seller profiles.
// The mirror is last-write-wins and is not audited.
type Tracker struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTracker creates a new Tracker
func NewTracker(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Tracker {
	return &Tracker{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SyncAccount locates the seller linked to the account and mirrors the state onto it
//
// Possible errors:
// - ErrProfileNotFound: If no seller is linked to the account
func (t *Tracker) SyncAccount(ctx context.Context, state entity.AccountState) (*entity.SellerProfile, error) {
	profile, err := t.uow.GetProfileRepository(ctx).GetSellerByAccountID(ctx, state.AccountID)
	if err != nil {
		return nil, err
	}
	return t.Sync(ctx, profile, state)
}

// Sync overwrites the onboarding mirror of profile with state and persists it
func (t *Tracker) Sync(ctx context.Context, profile *entity.SellerProfile, state entity.AccountState) (*entity.SellerProfile, error) {
	previous := profile.AccountStatus

	profile.OnboardingCompleted = state.DetailsSubmitted
	profile.ChargesEnabled = state.ChargesEnabled
	profile.PayoutsEnabled = state.PayoutsEnabled
	profile.AccountStatus = state.Status()
	profile.Capabilities = maps.Clone(state.Capabilities)
	profile.UpdatedAt = t.timeProvider.Now()

	if err := t.uow.GetProfileRepository(ctx).UpdateSeller(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update seller profile: %w", err)
	}

	t.logger.Info("Seller onboarding status synced", map[string]any{
		"seller_user_id":  profile.UserID,
		"account_id":      profile.ExternalAccountID,
		"previous_status": previous,
		"account_status":  profile.AccountStatus,
		"charges_enabled": profile.ChargesEnabled,
		"payouts_enabled": profile.PayoutsEnabled,
	})
	return profile, nil
}
