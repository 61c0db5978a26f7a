package persistence

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// ProfileRepository manages buyer and seller processor anchors
type ProfileRepository interface {
	// GetBuyer retrieves the buyer profile of a user
	//
	// Possible errors:
	// - ErrProfileNotFound: If the user has no buyer profile
	GetBuyer(ctx context.Context, userID uint64) (*entity.BuyerProfile, error)

	// SaveBuyer creates or updates a buyer profile keyed by user id.
	// An existing non-empty customer id is never replaced; the stored profile is returned.
	SaveBuyer(ctx context.Context, profile *entity.BuyerProfile) (*entity.BuyerProfile, error)

	// GetSeller retrieves the seller profile of a user
	//
	// Possible errors:
	// - ErrProfileNotFound: If the user has no seller profile
	GetSeller(ctx context.Context, userID uint64) (*entity.SellerProfile, error)

	// GetSellerByAccountID retrieves a seller profile by its connected account id
	//
	// Possible errors:
	// - ErrProfileNotFound: If no seller is linked to the account
	GetSellerByAccountID(ctx context.Context, accountID string) (*entity.SellerProfile, error)

	// UpdateSeller writes the onboarding mirror of a seller profile
	UpdateSeller(ctx context.Context, profile *entity.SellerProfile) error
}

// WebhookEventRepository is the ledger of verified webhook deliveries
type WebhookEventRepository interface {
	// GetByEventID retrieves a ledger row by the processor's event id
	//
	// Possible errors:
	// - ErrNotFound: If the event was never recorded
	GetByEventID(ctx context.Context, eventID string) (*entity.WebhookEvent, error)

	// Save inserts or updates a ledger row keyed by event id
	Save(ctx context.Context, event *entity.WebhookEvent) error
}
