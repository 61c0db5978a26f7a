package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// CheckoutResult is returned to the buyer to continue on the hosted payment page
type CheckoutResult struct {
	TransactionID uint64
	SessionID     string
	RedirectURL   string
}

// PurchaseInfo summarizes a completed purchase
type PurchaseInfo struct {
	TransactionID uint64
	TotalAmount   int64
	PurchasedAt   time.Time
}

// PurchaseCheck answers whether a buyer owns a listing
type PurchaseCheck struct {
	IsPurchased bool
	Info        *PurchaseInfo
}

// PurchasedListing is a completed purchase joined with its listing summary
type PurchasedListing struct {
	PurchaseInfo
	ListingID    uint64
	Kind         entity.ListingKind
	Title        string
	PropertyName string
	ThumbnailURL string
}

// CheckoutUseCase defines buyer-facing purchase operations
type CheckoutUseCase interface {
	// StartCheckout validates the purchase, records a PENDING transaction and opens a hosted session
	StartCheckout(ctx context.Context, listingID, buyerUserID uint64) (*CheckoutResult, error)

	// CheckPurchase reports whether the buyer has a COMPLETED transaction for the listing
	CheckPurchase(ctx context.Context, listingID, buyerUserID uint64) (*PurchaseCheck, error)

	// ListPurchased returns the buyer's completed purchases, newest first
	ListPurchased(ctx context.Context, buyerUserID uint64) ([]PurchasedListing, error)
}
