package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/dto"
)

const (
	// SignatureHeader carries the processor signature
	SignatureHeader = "Stripe-Signature"
	// legacySignatureHeader is accepted from older relays
	legacySignatureHeader = "signature"

	maxWebhookBodyBytes = 1 << 20
)

// WebhookHandler receives processor deliveries for one channel per route
type WebhookHandler struct {
	webhooks usecase.WebhookUseCase
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(webhooks usecase.WebhookUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhooks: webhooks,
		logger:   logger,
	}
}

// Payment handles POST /webhook
func (h *WebhookHandler) Payment(c *gin.Context) {
	h.handle(c, entity.ChannelPayment)
}

// Connect handles POST /webhook/connect
func (h *WebhookHandler) Connect(c *gin.Context) {
	h.handle(c, entity.ChannelConnect)
}

// Transfer handles POST /webhook/transfer
func (h *WebhookHandler) Transfer(c *gin.Context) {
	h.handle(c, entity.ChannelTransfer)
}

// handle answers 400 only for signature or payload integrity failures and 413 for oversized bodies; everything else is 200
func (h *WebhookHandler) handle(c *gin.Context, channel entity.Channel) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Webhook body too large", map[string]any{
				"channel": string(channel),
				"limit":   tooLarge.Limit,
			})
			c.JSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(c.Request.Context(), domainerr.ErrInvalidPayload, "Request body too large"))
			return
		}
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(c.Request.Context(), domainerr.ErrInvalidPayload, "Unable to read request body"))
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if signature == "" {
		signature = c.GetHeader(legacySignatureHeader)
	}

	outcome, err := h.webhooks.Handle(c.Request.Context(), payload, signature, channel)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(c.Request.Context(), err, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Status:  string(outcome.Status),
		Message: outcome.Message,
	})
}
