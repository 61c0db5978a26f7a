package handler

import (
	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/requestid"
)

// writeError maps a domain error to its HTTP status. Server-side failures hide their message.
func writeError(c *gin.Context, logger coreport.Logger, err error, fields map[string]any) {
	status := domainerr.HTTPStatus(err)
	message := err.Error()

	logFields := map[string]any{
		"error":      err.Error(),
		"status":     status,
		"request_id": requestid.From(c.Request.Context()),
	}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= 500 {
		logger.Error("Request failed", logFields)
		message = "Internal server error"
		if domainerr.IsProcessorError(err) {
			message = "Payment processor unavailable"
		}
	} else {
		logger.Warn("Request rejected", logFields)
	}

	c.JSON(status, dto.NewErrorResponse(c.Request.Context(), err, message))
}
