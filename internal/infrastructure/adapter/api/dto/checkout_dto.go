package dto

// CheckoutRequest is the body of POST /checkout
type CheckoutRequest struct {
	ListingID uint64 `json:"listing_id" binding:"required,gt=0"`
}

// CheckoutResponse points the buyer at the hosted payment page
type CheckoutResponse struct {
	TransactionID uint64 `json:"transaction_id"`
	SessionID     string `json:"session_id"`
	RedirectURL   string `json:"redirect_url"`
}
