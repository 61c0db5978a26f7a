package dto

import (
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
)

// PurchaseInfo summarizes a completed purchase
type PurchaseInfo struct {
	TransactionID uint64    `json:"transactionId"`
	TotalAmount   int64     `json:"totalAmount"`
	PurchasedAt   time.Time `json:"purchasedAt"`
}

// PurchaseCheckResponse is returned by GET /transactions/check
type PurchaseCheckResponse struct {
	IsPurchased  bool          `json:"isPurchased"`
	PurchaseInfo *PurchaseInfo `json:"purchaseInfo,omitempty"`
}

// PurchasedListing is one entry of GET /transactions/purchased
type PurchasedListing struct {
	PurchaseInfo
	ListingID    uint64 `json:"listingId"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	PropertyName string `json:"propertyName,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// PurchasedListingsResponse wraps the buyer's purchases
type PurchasedListingsResponse struct {
	Purchases []PurchasedListing `json:"purchases"`
}

// NewPurchaseCheckResponse maps a use case result to its response body
func NewPurchaseCheckResponse(check *usecase.PurchaseCheck) PurchaseCheckResponse {
	resp := PurchaseCheckResponse{IsPurchased: check.IsPurchased}
	if check.Info != nil {
		info := newPurchaseInfo(*check.Info)
		resp.PurchaseInfo = &info
	}
	return resp
}

// NewPurchasedListingsResponse maps purchased listings to their response body
func NewPurchasedListingsResponse(listings []usecase.PurchasedListing) PurchasedListingsResponse {
	purchases := make([]PurchasedListing, 0, len(listings))
	for _, l := range listings {
		purchases = append(purchases, PurchasedListing{
			PurchaseInfo: newPurchaseInfo(l.PurchaseInfo),
			ListingID:    l.ListingID,
			Kind:         string(l.Kind),
			Title:        l.Title,
			PropertyName: l.PropertyName,
			ThumbnailURL: l.ThumbnailURL,
		})
	}
	return PurchasedListingsResponse{Purchases: purchases}
}

func newPurchaseInfo(info usecase.PurchaseInfo) PurchaseInfo {
	return PurchaseInfo{
		TransactionID: info.TransactionID,
		TotalAmount:   info.TotalAmount,
		PurchasedAt:   info.PurchasedAt,
	}
}
