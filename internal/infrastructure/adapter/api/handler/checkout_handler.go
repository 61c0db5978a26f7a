package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/middleware"
)

// CheckoutHandler handles purchase-related HTTP requests
type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
	logger   coreport.Logger
}

// NewCheckoutHandler creates a new checkout handler instance
func NewCheckoutHandler(checkout usecase.CheckoutUseCase, logger coreport.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// StartCheckout handles the POST /checkout endpoint
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, h.logger, domainerr.ErrUnauthorized, nil)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(c.Request.Context(), domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error()))
		return
	}

	result, err := h.checkout.StartCheckout(c.Request.Context(), req.ListingID, buyerID)
	if err != nil {
		writeError(c, h.logger, err, map[string]any{
			"listing_id":    req.ListingID,
			"buyer_user_id": buyerID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		TransactionID: result.TransactionID,
		SessionID:     result.SessionID,
		RedirectURL:   result.RedirectURL,
	})
}

// CheckPurchase handles the GET /transactions/check endpoint.
// Anonymous callers always get isPurchased=false.
func (h *CheckoutHandler) CheckPurchase(c *gin.Context) {
	listingID, err := parseID(c.Query("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(c.Request.Context(), domainerr.ErrInvalidRequest, "Invalid listing_id"))
		return
	}

	buyerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, dto.PurchaseCheckResponse{IsPurchased: false})
		return
	}

	check, err := h.checkout.CheckPurchase(c.Request.Context(), listingID, buyerID)
	if err != nil {
		writeError(c, h.logger, err, map[string]any{
			"listing_id":    listingID,
			"buyer_user_id": buyerID,
		})
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchaseCheckResponse(check))
}

// ListPurchased handles the GET /transactions/purchased endpoint
func (h *CheckoutHandler) ListPurchased(c *gin.Context) {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, h.logger, domainerr.ErrUnauthorized, nil)
		return
	}

	listings, err := h.checkout.ListPurchased(c.Request.Context(), buyerID)
	if err != nil {
		writeError(c, h.logger, err, map[string]any{"buyer_user_id": buyerID})
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchasedListingsResponse(listings))
}
