package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// ListingRepository is read-only access to the catalog
type ListingRepository interface {
	// GetByID retrieves a listing
	//
	// Possible errors:
	// - ErrListingNotFound: If listing with the given ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Listing, error)

	// GetByIDs retrieves several listings keyed by id. Missing ids are absent from the map.
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*entity.Listing, error)
}

// TakeRateRepository stores fee policies
type TakeRateRepository interface {
	// FindForSeller returns the seller-scoped policy covering at with the latest date_from
	//
	// Possible errors:
	// - ErrNotFound: If no seller-scoped policy covers at
	FindForSeller(ctx context.Context, sellerUserID uint64, at time.Time) (*entity.TakeRate, error)

	// FindDefault returns the default policy covering at with the latest date_from
	//
	// Possible errors:
	// - ErrNotFound: If no default policy covers at
	FindDefault(ctx context.Context, at time.Time) (*entity.TakeRate, error)

	// Create stores a new policy
	Create(ctx context.Context, rate *entity.TakeRate) error
}
