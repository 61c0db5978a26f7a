package dto

import (
	"context"

	domainerr "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/requestid"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse builds the body for err, tagged with the request id carried by ctx
func NewErrorResponse(ctx context.Context, err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: requestid.From(ctx),
	}
}
